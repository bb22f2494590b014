package projection

import (
	"github.com/okian/dyno/internal/domain/derive"
	"github.com/okian/dyno/internal/domain/vehicle"
)

// WheelFitment carries an optional wheel/tire selection attached to a
// request. Its grip bonus feeds lateral-grip estimation directly.
type WheelFitment struct {
	GripBonus    float64 `json:"grip_bonus"`
	WeightChange float64 `json:"weight_change"`
}

// Request is one projection input: the vehicle baseline plus the ordered
// list of selected modification keys.
type Request struct {
	Vehicle      vehicle.Baseline `json:"vehicle"`
	Mods         []string         `json:"mods"`
	WheelFitment *WheelFitment    `json:"wheel_fitment,omitempty"`
}

// GainRecord is the per-mod slice of a result: raw gain, applied gain, and
// the reason for any adjustment. BoostPSI is populated by the physics
// model only.
type GainRecord struct {
	Key         string  `json:"key"`
	Category    string  `json:"category"`
	RawGain     float64 `json:"raw_gain"`
	AppliedGain float64 `json:"applied_gain"`
	Reason      string  `json:"reason,omitempty"`
	Confidence  float64 `json:"confidence"`
	BoostPSI    float64 `json:"boost_psi,omitempty"`
}

// Result is a self-contained projection outcome: pure data with no
// behavior. Identical requests produce bit-identical results, so results
// may be cached or persisted freely.
type Result struct {
	Model     string `json:"model"`
	Archetype string `json:"archetype"`

	TotalGain    float64 `json:"total_gain"`
	TotalRawGain float64 `json:"total_raw_gain"`
	Adjustment   float64 `json:"adjustment"`

	ProjectedHP     float64 `json:"projected_hp"`
	ProjectedTorque float64 `json:"projected_torque"`
	FinalBoostPSI   float64 `json:"final_boost_psi,omitempty"`

	CategoryGains map[string]float64 `json:"category_gains"`
	Breakdown     []GainRecord       `json:"breakdown"`
	Derived       derive.Metrics     `json:"derived"`

	Confidence  string   `json:"confidence"`
	SkippedKeys []string `json:"skipped_keys,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`

	// Adjustment counters surfaced for observability.
	CapClamps     int `json:"-"`
	Supersessions int `json:"-"`
}
