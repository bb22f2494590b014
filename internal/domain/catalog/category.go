package catalog

import "fmt"

// Category routes a modification through the gain accumulators. It is a
// closed set assigned once at catalog load; downstream switches are
// exhaustive so a new category cannot be silently misrouted.
type Category int

// Known modification categories.
const (
	CategoryUnknown Category = iota
	CategoryPower
	CategoryIntake
	CategoryExhaust
	CategoryTune
	CategoryForcedInduction
	CategoryHandling
	CategoryBrakes
	CategoryWheels
	CategoryCooling
	CategoryAero
	CategoryDrivetrain
	CategorySupport
)

var categoryNames = map[Category]string{
	CategoryPower:           "power",
	CategoryIntake:          "intake",
	CategoryExhaust:         "exhaust",
	CategoryTune:            "tune",
	CategoryForcedInduction: "forced-induction",
	CategoryHandling:        "handling",
	CategoryBrakes:          "brakes",
	CategoryWheels:          "wheels",
	CategoryCooling:         "cooling",
	CategoryAero:            "aero",
	CategoryDrivetrain:      "drivetrain",
	CategorySupport:         "support",
}

// String returns the canonical lowercase name for the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory converts a catalog-file category string to its enum value.
// Unknown strings are load-time errors, never a silent default.
func ParseCategory(s string) (Category, error) {
	for cat, name := range categoryNames {
		if name == s {
			return cat, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Capped reports whether cumulative gains in this category are clamped by
// the archetype cap table.
func (c Category) Capped() bool {
	switch c {
	case CategoryExhaust, CategoryIntake, CategoryTune:
		return true
	default:
		return false
	}
}

// Multiplied reports whether positive base gains in this category receive
// the platform multiplier.
func (c Category) Multiplied() bool {
	return c == CategoryPower || c == CategoryForcedInduction
}

// PhysicsKind selects the gain rule the physics model applies to a mod.
type PhysicsKind int

// Physics gain rules.
const (
	// PhysicsNone marks non-power mods (handling, aero, cooling,
	// drivetrain, brakes, wheels): zero gain, optional weight change.
	PhysicsNone PhysicsKind = iota
	// PhysicsEfficiency models fixed-percentage airflow gains.
	PhysicsEfficiency
	// PhysicsFlow models flow-capacity upgrades that also raise boost
	// headroom.
	PhysicsFlow
	// PhysicsBoost models mods that raise manifold pressure; gain follows
	// the pressure-ratio formula.
	PhysicsBoost
	// PhysicsSupport marks reliability/support hardware that enables
	// higher output but never contributes an hp number itself.
	PhysicsSupport
)

var physicsKindNames = map[PhysicsKind]string{
	PhysicsNone:       "nonpower",
	PhysicsEfficiency: "efficiency",
	PhysicsFlow:       "flow",
	PhysicsBoost:      "boost",
	PhysicsSupport:    "support",
}

// String returns the canonical name for the physics kind.
func (k PhysicsKind) String() string {
	if name, ok := physicsKindNames[k]; ok {
		return name
	}
	return "nonpower"
}

// ParsePhysicsKind converts a catalog-file kind string to its enum value.
func ParsePhysicsKind(s string) (PhysicsKind, error) {
	for kind, name := range physicsKindNames {
		if name == s {
			return kind, nil
		}
	}
	return PhysicsNone, fmt.Errorf("%w: %q", ErrUnknownPhysicsKind, s)
}
