// Package catalog holds the read-only registry of modification definitions
// shared by both projection models. The registry is built once at startup
// and never mutated afterwards; concurrent readers need no locking.
package catalog

import (
	"fmt"
	"sort"
)

// PhysicsSpec carries the parameters the physics model needs for one mod.
// Exactly one rule applies per mod, selected by Kind.
type PhysicsSpec struct {
	Kind PhysicsKind

	// Percent is the fraction of running hp gained by efficiency and flow
	// mods, e.g. 0.012 for a 1.2% catback gain.
	Percent float64

	// BoostPSI is the manifold-pressure delta for boost mods, or the
	// headroom raise for flow mods.
	BoostPSI float64

	// Confidence in [0,1] reflects how well this rule is supported by
	// calibration data for the mod.
	Confidence float64
}

// Definition is one catalog entry. Base gains are generic, unmultiplied
// values; platform calibration happens in the accumulators, never here.
type Definition struct {
	Key      string
	Name     string
	Category Category

	// Stage orders tune-category mods for supersession; zero for
	// everything else.
	Stage int

	// Base metric deltas.
	HPGain          float64
	TorqueGain      float64
	ZeroToSixtyGain float64 // seconds shaved off 0-60
	BrakingGain     float64 // feet shaved off 60-0
	LateralGGain    float64
	WeightChange    float64 // pounds; negative means lighter

	Physics PhysicsSpec
}

// Catalog is an immutable keyed registry of definitions.
type Catalog struct {
	defs map[string]Definition
	keys []string
}

// New builds a Catalog from definitions, rejecting empty or duplicate keys
// and tune entries without a stage.
func New(defs []Definition) (*Catalog, error) {
	c := &Catalog{
		defs: make(map[string]Definition, len(defs)),
		keys: make([]string, 0, len(defs)),
	}
	for _, d := range defs {
		if d.Key == "" {
			return nil, ErrEmptyKey
		}
		if _, exists := c.defs[d.Key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, d.Key)
		}
		if d.Category == CategoryTune && d.Stage <= 0 {
			return nil, fmt.Errorf("%w: tune %q has no stage", ErrInvalidDefinition, d.Key)
		}
		if d.Physics.Confidence < 0 || d.Physics.Confidence > 1 {
			return nil, fmt.Errorf("%w: %q confidence out of range", ErrInvalidDefinition, d.Key)
		}
		c.defs[d.Key] = d
		c.keys = append(c.keys, d.Key)
	}
	sort.Strings(c.keys)
	return c, nil
}

// Lookup returns the definition for key, if present.
func (c *Catalog) Lookup(key string) (Definition, bool) {
	d, ok := c.defs[key]
	return d, ok
}

// Keys returns the sorted modification keys. The slice is a copy.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Definitions returns all entries in key order.
func (c *Catalog) Definitions() []Definition {
	out := make([]Definition, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.defs[k])
	}
	return out
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.defs)
}
