package vehicle

import "strings"

// Aspiration classifies how the engine breathes.
type Aspiration int

// Known aspiration types.
const (
	NaturallyAspirated Aspiration = iota
	Turbocharged
	Supercharged
)

// String returns the canonical name for the aspiration.
func (a Aspiration) String() string {
	switch a {
	case Turbocharged:
		return "turbo"
	case Supercharged:
		return "supercharged"
	default:
		return "naturally-aspirated"
	}
}

// CapTable holds the maximum cumulative hp gain per capped category for
// one archetype.
type CapTable struct {
	Exhaust float64
	Intake  float64
	Tune    float64
}

// Cap returns the cap for a capped category name; ok is false for
// uncapped categories.
func (t CapTable) Cap(category string) (float64, bool) {
	switch category {
	case "exhaust":
		return t.Exhaust, true
	case "intake":
		return t.Intake, true
	case "tune":
		return t.Tune, true
	default:
		return 0, false
	}
}

// Archetype bundles the resolved aspiration with the matching cap table
// and platform power multiplier.
type Archetype struct {
	Aspiration Aspiration
	Caps       CapTable

	// PowerMultiplier amplifies positive power and forced-induction base
	// gains. The catalog stores generic unmultiplied values, so the
	// multiplier is always applied for those categories; mixing
	// pre-calibrated entries into the catalog would double-count.
	PowerMultiplier float64
}

var archetypes = map[Aspiration]Archetype{
	NaturallyAspirated: {
		Aspiration:      NaturallyAspirated,
		Caps:            CapTable{Exhaust: 15, Intake: 10, Tune: 40},
		PowerMultiplier: 1.0,
	},
	Turbocharged: {
		Aspiration:      Turbocharged,
		Caps:            CapTable{Exhaust: 35, Intake: 20, Tune: 120},
		PowerMultiplier: 1.3,
	},
	Supercharged: {
		Aspiration:      Supercharged,
		Caps:            CapTable{Exhaust: 30, Intake: 18, Tune: 100},
		PowerMultiplier: 1.2,
	},
}

// turboKeywords and superchargedKeywords are matched case-insensitively
// against the free-text engine descriptor. Turbo keywords win over
// supercharged ones only because twincharged setups are rare enough that
// we model them as turbo.
var (
	turboKeywords        = []string{"twin-turbo", "twinturbo", "biturbo", "bi-turbo", "turbocharged", "turbo", "tt "}
	superchargedKeywords = []string{"supercharged", "supercharger", "blower"}
)

// Resolve classifies an engine descriptor into its archetype. Unmatched
// descriptors default to naturally-aspirated, the conservative choice:
// smaller caps and no multiplier.
func Resolve(engine string) Archetype {
	desc := strings.ToLower(engine)
	for _, kw := range turboKeywords {
		if strings.Contains(desc, kw) {
			return archetypes[Turbocharged]
		}
	}
	for _, kw := range superchargedKeywords {
		if strings.Contains(desc, kw) {
			return archetypes[Supercharged]
		}
	}
	return archetypes[NaturallyAspirated]
}
