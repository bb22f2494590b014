// Package physics implements the pressure-ratio gain model. Boost-adding
// mods raise manifold pressure; their gain follows the pressure-ratio
// formula against the stock state. Because that formula is linear in the
// boost delta, each mod's gain is attributed independently, making the
// totals order-independent while the emitted trace still walks the input
// sequence with non-decreasing boost.
package physics

import (
	"fmt"
	"math"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/resolve"
	"github.com/okian/dyno/internal/domain/vehicle"
)

// Model constants.
const (
	// atmosphericPSI converts gauge boost to absolute manifold pressure.
	atmosphericPSI = 14.7

	// efficiencyFactor derates the ideal pressure-ratio gain for real
	// volumetric efficiency and fueling losses.
	efficiencyFactor = 0.7

	// degradedConfidence marks gains we could not model because the
	// baseline was missing hp or boost figures.
	degradedConfidence = 0.25
)

// Step is one entry in the sequential trace: the mod's attributed gain and
// the running hp/boost state after applying it.
type Step struct {
	Key          string
	Gain         float64
	HP           float64
	Boost        float64
	Rationale    string
	Confidence   float64
	WeightChange float64
}

// Trace is the full simulation output.
type Trace struct {
	Steps []Step

	TotalGain     float64
	ProjectedHP   float64
	FinalBoost    float64
	TorqueGain    float64
	MinConfidence float64

	// Secondary metric deltas feed the derived-metrics projector.
	WeightChange    float64
	ZeroToSixtyGain float64
	BrakingGain     float64
	LateralGGain    float64

	Warnings []string
}

// Simulate runs the annotated mod set against the baseline. Degraded
// baselines (missing hp, or missing boost for boost-dependent mods) yield
// zero gains with warning rationales, never an error.
func Simulate(b vehicle.Baseline, mods []resolve.Annotated) Trace {
	t := Trace{
		Steps:         make([]Step, 0, len(mods)),
		MinConfidence: 1,
	}

	hasHP := b.HP > 0
	hasBoost := b.BoostPSI > 0

	// Boost gains are attributed per mod against the stock state, then
	// summed; efficiency and flow percentages scale off the post-boost hp
	// so the result cannot depend on selection order.
	boostBase := b.HP + totalBoostGain(b, mods, hasHP && hasBoost)

	hp := b.HP
	boost := b.BoostPSI

	for _, m := range mods {
		s := step(b, m, boostBase, boost, hasHP, hasBoost)
		boost = s.Boost
		if s.Gain > 0 {
			hp += s.Gain
		}
		s.HP = hp
		t.Steps = append(t.Steps, s)

		t.TotalGain += s.Gain
		if s.Confidence < t.MinConfidence {
			t.MinConfidence = s.Confidence
		}
		if s.Confidence == degradedConfidence {
			t.Warnings = append(t.Warnings, s.Key+": "+s.Rationale)
		}

		t.WeightChange += m.Def.WeightChange
		t.ZeroToSixtyGain += m.Def.ZeroToSixtyGain
		t.BrakingGain += m.Def.BrakingGain
		t.LateralGGain += m.Def.LateralGGain
	}

	t.ProjectedHP = hp
	t.FinalBoost = boost
	if b.HP > 0 {
		t.TorqueGain = t.TotalGain * (b.Torque / b.HP)
	}
	return t
}

// totalBoostGain sums the attributed gains of every boost-adding mod that
// actually contributes boost.
func totalBoostGain(b vehicle.Baseline, mods []resolve.Annotated, valid bool) float64 {
	if !valid {
		return 0
	}
	var sum float64
	for _, m := range mods {
		if m.Def.Physics.Kind != catalog.PhysicsBoost || m.SupersededBy != "" || m.IncludedBy != "" {
			continue
		}
		sum += boostGain(b, m.Def.Physics.BoostPSI)
	}
	return sum
}

// boostGain computes the hp attributed to one boost delta:
// round(stockHp × efficiencyFactor × (pressureRatio − 1)), where
// pressureRatio = (14.7 + stockBoost + delta) / (14.7 + stockBoost).
// The expression is linear in delta, so per-mod attribution sums exactly
// to the gain of the combined final boost state.
func boostGain(b vehicle.Baseline, deltaPSI float64) float64 {
	gainPercent := efficiencyFactor * deltaPSI / (atmosphericPSI + b.BoostPSI)
	return math.Round(b.HP * gainPercent)
}

func step(b vehicle.Baseline, m resolve.Annotated, boostBase, boost float64, hasHP, hasBoost bool) Step {
	d := m.Def
	s := Step{Key: d.Key, Boost: boost, Confidence: d.Physics.Confidence, WeightChange: d.WeightChange}

	switch d.Physics.Kind {
	case catalog.PhysicsBoost:
		switch {
		case m.SupersededBy != "":
			s.Rationale = fmt.Sprintf("superseded by %s", m.SupersededBy)
			s.Confidence = 1
		case m.IncludedBy != "":
			s.Rationale = fmt.Sprintf("boost already accounted for by %s", m.IncludedBy)
			s.Confidence = 1
		case !hasHP || !hasBoost:
			s.Rationale = "baseline hp or boost missing; pressure-ratio gain not modeled"
			s.Confidence = degradedConfidence
		default:
			s.Boost = boost + d.Physics.BoostPSI
			s.Gain = boostGain(b, d.Physics.BoostPSI)
			ratio := (atmosphericPSI + b.BoostPSI + d.Physics.BoostPSI) / (atmosphericPSI + b.BoostPSI)
			s.Rationale = fmt.Sprintf("+%.1f psi raises pressure ratio to %.3f", d.Physics.BoostPSI, ratio)
		}

	case catalog.PhysicsEfficiency:
		if !hasHP {
			s.Rationale = "baseline hp missing; efficiency gain not modeled"
			s.Confidence = degradedConfidence
			break
		}
		s.Gain = math.Round(boostBase * d.Physics.Percent)
		s.Rationale = fmt.Sprintf("%.1f%% airflow efficiency gain", d.Physics.Percent*100)
		if m.IncludedBy != "" {
			s.Gain = math.Round(s.Gain * 0.5)
			s.Rationale = fmt.Sprintf("partially included in %s; gain halved", m.IncludedBy)
		}

	case catalog.PhysicsFlow:
		if !hasHP {
			s.Rationale = "baseline hp missing; flow gain not modeled"
			s.Confidence = degradedConfidence
			break
		}
		s.Gain = math.Round(boostBase * d.Physics.Percent)
		s.Boost = boost + d.Physics.BoostPSI
		s.Rationale = fmt.Sprintf("%.0f%% flow capacity, +%.1f psi headroom", d.Physics.Percent*100, d.Physics.BoostPSI)
		if m.IncludedBy != "" {
			s.Gain = math.Round(s.Gain * 0.5)
			s.Rationale = fmt.Sprintf("partially included in %s; gain halved", m.IncludedBy)
		}

	case catalog.PhysicsSupport:
		s.Rationale = "supports higher output reliably; no direct power gain"

	case catalog.PhysicsNone:
		s.Rationale = "no power contribution"
		s.Confidence = 1
	}

	return s
}
