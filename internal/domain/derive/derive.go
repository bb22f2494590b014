// Package derive converts total hp and weight deltas into acceleration,
// quarter-mile, power-to-weight, braking, and lateral-grip estimates using
// empirical formulas. Outputs are clamped to hard physical floors no
// matter how large the input gains are.
package derive

import "math"

// Empirical defaults. The 0-60 floor and damping factor can be overridden
// per deployment; the rest are fixed calibration constants.
const (
	DefaultZeroToSixtyFloor = 2.8
	DefaultDampingFactor    = 0.35

	quarterMileCoeff = 5.825

	defaultBrakingBaseline = 125.0 // 60-0 ft for an average stock vehicle
	brakingFloor           = 80.0
	defaultLateralBaseline = 0.85
	lateralCeiling         = 1.60

	poundsPerTon = 2000.0
)

// Option applies a configuration option to the Projector.
type Option func(*Projector)

// WithZeroToSixtyFloor overrides the 0-60 physical floor in seconds.
func WithZeroToSixtyFloor(floor float64) Option {
	return func(p *Projector) {
		if floor > 0 {
			p.zeroToSixtyFloor = floor
		}
	}
}

// WithDampingFactor overrides the 0-60 damping factor.
func WithDampingFactor(factor float64) Option {
	return func(p *Projector) {
		if factor > 0 && factor <= 1 {
			p.dampingFactor = factor
		}
	}
}

// Inputs carries the totals a model run produced.
type Inputs struct {
	StockHP     float64
	ProjectedHP float64

	StockWeight  float64
	WeightChange float64

	StockZeroToSixty float64

	// Secondary deltas accumulated across the mod set.
	ZeroToSixtyGain float64
	BrakingGain     float64
	LateralGGain    float64

	// GripBonus comes from an optional wheel-fitment selection.
	GripBonus float64
}

// Metrics is the derived performance estimate.
type Metrics struct {
	ZeroToSixty     float64 `json:"zero_to_sixty_s"`
	QuarterMile     float64 `json:"quarter_mile_s"`
	PowerToWeight   float64 `json:"power_to_weight_hp_per_ton"`
	BrakingDistance float64 `json:"braking_60_to_0_ft"`
	LateralG        float64 `json:"lateral_g"`
}

// Projector computes derived metrics with configurable floors.
type Projector struct {
	zeroToSixtyFloor float64
	dampingFactor    float64
}

// NewProjector creates a Projector with empirical defaults.
func NewProjector(opts ...Option) *Projector {
	p := &Projector{
		zeroToSixtyFloor: DefaultZeroToSixtyFloor,
		dampingFactor:    DefaultDampingFactor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project derives the performance estimate. Weight-dependent formulas
// always use post-modification weight, which may be below stock.
func (p *Projector) Project(in Inputs) Metrics {
	weight := in.StockWeight + in.WeightChange
	if weight <= 0 {
		weight = in.StockWeight
	}

	m := Metrics{
		ZeroToSixty:     in.StockZeroToSixty,
		BrakingDistance: math.Max(brakingFloor, defaultBrakingBaseline-in.BrakingGain),
		LateralG:        math.Min(lateralCeiling, defaultLateralBaseline+in.LateralGGain+in.GripBonus),
	}

	if in.ProjectedHP > 0 && weight > 0 {
		m.QuarterMile = quarterMileCoeff * math.Cbrt(weight/in.ProjectedHP)
		m.PowerToWeight = in.ProjectedHP / (weight / poundsPerTon)
	}

	if in.StockZeroToSixty > 0 {
		m.ZeroToSixty = math.Max(p.zeroToSixtyFloor,
			in.StockZeroToSixty*(1-p.ptwGain(in, weight)*p.dampingFactor)-in.ZeroToSixtyGain)
	}

	return m
}

// ptwGain is the fractional power-to-weight improvement over stock. Using
// power-to-weight rather than hp alone lets weight-only builds move the
// acceleration estimate.
func (p *Projector) ptwGain(in Inputs, weight float64) float64 {
	if in.StockHP <= 0 || in.StockWeight <= 0 || in.ProjectedHP <= 0 || weight <= 0 {
		return 0
	}
	stock := in.StockHP / in.StockWeight
	modded := in.ProjectedHP / weight
	if stock <= 0 {
		return 0
	}
	gain := modded/stock - 1
	if gain < 0 {
		return 0
	}
	return gain
}
