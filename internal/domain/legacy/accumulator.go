// Package legacy implements the categorical gain model: hardcoded per-mod
// base gains, platform multiplier on power categories, and per-archetype
// category caps with remaining-headroom clamping. Every adjustment is
// recorded with a human-readable reason for audit display.
package legacy

import (
	"fmt"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/resolve"
	"github.com/okian/dyno/internal/domain/vehicle"
)

const inclusionFactor = 0.5

// Record is the per-mod outcome: the raw (pre-adjustment) gain, the gain
// actually applied, and the reason for any difference.
type Record struct {
	Key         string
	Category    catalog.Category
	RawGain     float64
	AppliedGain float64
	TorqueGain  float64
	Reason      string
}

// Totals aggregates one accumulator run.
type Totals struct {
	Records       []Record
	CategoryGains map[string]float64

	TotalGain    float64
	TotalRawGain float64
	// Adjustment is raw minus applied: how much capping, supersession,
	// and overlap scaling shaved off.
	Adjustment float64

	TorqueGain float64

	// Secondary metric deltas feed the derived-metrics projector.
	WeightChange    float64
	ZeroToSixtyGain float64
	BrakingGain     float64
	LateralGGain    float64

	// CapClamps and Supersessions are surfaced for observability.
	CapClamps     int
	Supersessions int
}

// Accumulate applies every annotated mod against the archetype's cap
// table. Pure: identical inputs always produce identical totals.
func Accumulate(arch vehicle.Archetype, mods []resolve.Annotated) Totals {
	t := Totals{
		Records:       make([]Record, 0, len(mods)),
		CategoryGains: make(map[string]float64),
	}

	for _, m := range mods {
		rec := apply(arch, m, &t)
		t.Records = append(t.Records, rec)

		t.TotalRawGain += rec.RawGain
		t.TotalGain += rec.AppliedGain
		t.TorqueGain += rec.TorqueGain
		if rec.AppliedGain != 0 {
			t.CategoryGains[rec.Category.String()] += rec.AppliedGain
		}

		t.WeightChange += m.Def.WeightChange
		t.ZeroToSixtyGain += m.Def.ZeroToSixtyGain
		t.BrakingGain += m.Def.BrakingGain
		t.LateralGGain += m.Def.LateralGGain
	}

	t.Adjustment = t.TotalRawGain - t.TotalGain
	return t
}

func apply(arch vehicle.Archetype, m resolve.Annotated, t *Totals) Record {
	d := m.Def

	raw := d.HPGain
	if raw > 0 && d.Category.Multiplied() {
		raw *= arch.PowerMultiplier
	}

	rec := Record{Key: d.Key, Category: d.Category, RawGain: raw}

	if m.SupersededBy != "" {
		rec.Reason = fmt.Sprintf("superseded by %s", m.SupersededBy)
		t.Supersessions++
		return rec
	}

	applied := raw

	if m.IncludedBy != "" && applied > 0 {
		applied *= inclusionFactor
		rec.Reason = fmt.Sprintf("partially included in %s", m.IncludedBy)
	}

	if d.Category == catalog.CategoryExhaust && m.OverlapIndex > 0 && applied > 0 {
		applied *= resolve.ExhaustOverlapFactor
		rec.Reason = joinReasons(rec.Reason, "overlapping exhaust gains scaled")
	}

	if limit, capped := arch.Caps.Cap(d.Category.String()); capped && applied > 0 {
		headroom := limit - t.CategoryGains[d.Category.String()]
		if headroom < 0 {
			headroom = 0
		}
		if applied > headroom {
			applied = headroom
			rec.Reason = joinReasons(rec.Reason,
				fmt.Sprintf("%s cap reached for %s platform", d.Category, arch.Aspiration))
			t.CapClamps++
		}
	}

	rec.AppliedGain = applied
	rec.TorqueGain = scaledTorque(d, raw, applied, arch)
	return rec
}

// scaledTorque derates the base torque gain by the same factor applied to
// the hp gain, so a capped or halved mod does not claim full torque.
func scaledTorque(d catalog.Definition, raw, applied float64, arch vehicle.Archetype) float64 {
	tq := d.TorqueGain
	if tq > 0 && d.Category.Multiplied() {
		tq *= arch.PowerMultiplier
	}
	if raw <= 0 {
		return tq
	}
	return tq * (applied / raw)
}

func joinReasons(existing, added string) string {
	if existing == "" {
		return added
	}
	return existing + "; " + added
}
