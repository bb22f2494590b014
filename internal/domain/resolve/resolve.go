// Package resolve annotates a selected modification set with tune
// supersession, stage-inclusion, and exhaust-overlap markers before either
// gain model runs. Annotation is pure and order-independent: shuffling the
// input never changes which mod carries which marker.
package resolve

import (
	"sort"

	"github.com/okian/dyno/internal/domain/catalog"
)

// stageIncludes maps a tune stage to the discrete component keys that
// calibration already covers. A separately selected covered component has
// its gain halved downstream. Inclusion is cumulative with stage.
var stageIncludes = map[int][]string{
	2: {"downpipe"},
	3: {"downpipe", "cold-air-intake", "turbo-upgrade", "intercooler"},
}

// ExhaustOverlapFactor scales each exhaust-category mod beyond the first;
// bolt-on exhaust parts chase the same airflow restriction.
const ExhaustOverlapFactor = 0.85

// Annotated pairs a definition with its conflict markers.
type Annotated struct {
	Def catalog.Definition

	// ActiveTune marks the single highest-stage tune in the set.
	ActiveTune bool

	// SupersededBy names the active tune when this mod is a lower-stage
	// tune whose gain is forced to zero.
	SupersededBy string

	// IncludedBy names the active tune when its calibration partially
	// covers this component; downstream gain is halved.
	IncludedBy string

	// OverlapIndex is this mod's ordinal within the exhaust overlap
	// group; zero means it counts at full value.
	OverlapIndex int
}

// Annotate resolves conflicts across the selected definitions. The tune
// pre-pass runs before any per-mod annotation so correctness cannot depend
// on iteration order.
func Annotate(defs []catalog.Definition) []Annotated {
	activeTune := pickActiveTune(defs)

	included := map[string]bool{}
	if activeTune != nil {
		for _, key := range stageIncludes[activeTune.Stage] {
			included[key] = true
		}
	}

	overlap := exhaustOverlapIndexes(defs)

	out := make([]Annotated, 0, len(defs))
	for _, d := range defs {
		a := Annotated{Def: d}
		switch {
		case d.Category == catalog.CategoryTune && activeTune != nil && d.Key == activeTune.Key:
			a.ActiveTune = true
		case d.Category == catalog.CategoryTune && activeTune != nil:
			a.SupersededBy = activeTune.Key
		}
		if activeTune != nil && included[d.Key] {
			a.IncludedBy = activeTune.Key
		}
		if d.Category == catalog.CategoryExhaust {
			a.OverlapIndex = overlap[d.Key]
		}
		out = append(out, a)
	}
	return out
}

// pickActiveTune returns the highest-stage tune in the set, breaking stage
// ties by key so the choice is deterministic regardless of input order.
func pickActiveTune(defs []catalog.Definition) *catalog.Definition {
	var active *catalog.Definition
	for i := range defs {
		d := &defs[i]
		if d.Category != catalog.CategoryTune {
			continue
		}
		if active == nil || d.Stage > active.Stage ||
			(d.Stage == active.Stage && d.Key < active.Key) {
			active = d
		}
	}
	if active == nil {
		return nil
	}
	cp := *active
	return &cp
}

// exhaustOverlapIndexes assigns overlap ordinals to exhaust-category mods.
// The largest base gain counts at full value; the ranking is by gain then
// key, so the assignment does not depend on selection order.
func exhaustOverlapIndexes(defs []catalog.Definition) map[string]int {
	var exhaust []catalog.Definition
	for _, d := range defs {
		if d.Category == catalog.CategoryExhaust {
			exhaust = append(exhaust, d)
		}
	}
	sort.Slice(exhaust, func(i, j int) bool {
		if exhaust[i].HPGain != exhaust[j].HPGain {
			return exhaust[i].HPGain > exhaust[j].HPGain
		}
		return exhaust[i].Key < exhaust[j].Key
	})
	idx := make(map[string]int, len(exhaust))
	for i, d := range exhaust {
		idx[d.Key] = i
	}
	return idx
}

// StageIncludes returns the component keys covered by a tune stage. The
// slice is a copy.
func StageIncludes(stage int) []string {
	src := stageIncludes[stage]
	out := make([]string, len(src))
	copy(out, src)
	return out
}
