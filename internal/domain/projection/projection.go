// Package projection exposes the engine's single entry point: a Service
// interface with two interchangeable implementations, the categorical
// legacy model and the pressure-ratio physics model. Callers select one by
// configuration; the comparison tooling runs both side by side.
package projection

import (
	"context"
	"fmt"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/derive"
	"github.com/okian/dyno/internal/domain/legacy"
	"github.com/okian/dyno/internal/domain/physics"
	"github.com/okian/dyno/internal/domain/resolve"
	"github.com/okian/dyno/internal/domain/vehicle"
	"github.com/okian/dyno/pkg/logger"
)

// Model names for configuration and reporting.
const (
	ModelLegacy  = "legacy"
	ModelPhysics = "physics"
)

// Confidence labels derived from the minimum per-mod confidence.
const (
	ConfidenceHigh     = "high"
	ConfidenceModerate = "moderate"
	ConfidenceLow      = "low"
)

// legacyRecordConfidence is the flat confidence assigned to categorical
// gains; hardcoded per-item figures are neither well- nor poorly-supported.
const legacyRecordConfidence = 0.5

// Service computes a projection for one request. Implementations are pure
// and safe for concurrent use; identical inputs always produce identical
// results.
type Service interface {
	// Project evaluates the selected mod set against the vehicle baseline.
	Project(ctx context.Context, req Request) (Result, error)

	// Model returns the implementation's model name.
	Model() string
}

// Option applies a configuration option to a Service implementation.
type Option func(*base)

// WithLogger sets the logger used for non-fatal skip annotations.
func WithLogger(log logger.Logger) Option {
	return func(b *base) {
		if log != nil {
			b.log = log
		}
	}
}

// WithProjector overrides the derived-metrics projector.
func WithProjector(p *derive.Projector) Option {
	return func(b *base) {
		if p != nil {
			b.projector = p
		}
	}
}

// base carries what both implementations share: the immutable catalog, the
// derived-metrics projector, and selection resolution.
type base struct {
	cat       *catalog.Catalog
	projector *derive.Projector
	log       logger.Logger
}

func newBase(cat *catalog.Catalog, opts ...Option) (base, error) {
	if cat == nil {
		return base{}, ErrNilCatalog
	}
	b := base{
		cat:       cat,
		projector: derive.NewProjector(),
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b, nil
}

// resolveSelection looks up every selected key and annotates the known
// ones. Unknown keys are skipped and logged; a partial projection is still
// useful.
func (b *base) resolveSelection(ctx context.Context, keys []string) ([]resolve.Annotated, []string) {
	defs := make([]catalog.Definition, 0, len(keys))
	var skipped []string
	for _, key := range keys {
		d, ok := b.cat.Lookup(key)
		if !ok {
			skipped = append(skipped, key)
			if b.log != nil {
				b.log.Warn(ctx, "unknown modification key skipped", logger.String("key", key))
			}
			continue
		}
		defs = append(defs, d)
	}
	return resolve.Annotate(defs), skipped
}

// NewLegacy creates the categorical-model service.
func NewLegacy(cat *catalog.Catalog, opts ...Option) (Service, error) {
	b, err := newBase(cat, opts...)
	if err != nil {
		return nil, err
	}
	return &legacyService{base: b}, nil
}

// NewPhysics creates the pressure-ratio-model service.
func NewPhysics(cat *catalog.Catalog, opts ...Option) (Service, error) {
	b, err := newBase(cat, opts...)
	if err != nil {
		return nil, err
	}
	return &physicsService{base: b}, nil
}

type legacyService struct {
	base
}

func (s *legacyService) Model() string { return ModelLegacy }

func (s *legacyService) Project(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("projection cancelled: %w", err)
	}

	mods, skipped := s.resolveSelection(ctx, req.Mods)
	arch := vehicle.Resolve(req.Vehicle.Engine)
	totals := legacy.Accumulate(arch, mods)

	breakdown := make([]GainRecord, 0, len(totals.Records))
	for _, r := range totals.Records {
		breakdown = append(breakdown, GainRecord{
			Key:         r.Key,
			Category:    r.Category.String(),
			RawGain:     r.RawGain,
			AppliedGain: r.AppliedGain,
			Reason:      r.Reason,
			Confidence:  legacyRecordConfidence,
		})
	}

	res := Result{
		Model:           ModelLegacy,
		Archetype:       arch.Aspiration.String(),
		TotalGain:       totals.TotalGain,
		TotalRawGain:    totals.TotalRawGain,
		Adjustment:      totals.Adjustment,
		ProjectedHP:     req.Vehicle.HP + totals.TotalGain,
		ProjectedTorque: req.Vehicle.Torque + totals.TorqueGain,
		CategoryGains:   totals.CategoryGains,
		Breakdown:       breakdown,
		Confidence:      ConfidenceModerate,
		SkippedKeys:     skipped,
		CapClamps:       totals.CapClamps,
		Supersessions:   totals.Supersessions,
	}
	res.Derived = s.derived(req, res.ProjectedHP, secondary{
		weight:      totals.WeightChange,
		zeroToSixty: totals.ZeroToSixtyGain,
		braking:     totals.BrakingGain,
		lateralG:    totals.LateralGGain,
	})
	return res, nil
}

type physicsService struct {
	base
}

func (s *physicsService) Model() string { return ModelPhysics }

func (s *physicsService) Project(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("projection cancelled: %w", err)
	}

	mods, skipped := s.resolveSelection(ctx, req.Mods)
	arch := vehicle.Resolve(req.Vehicle.Engine)
	trace := physics.Simulate(req.Vehicle, mods)

	breakdown := make([]GainRecord, 0, len(trace.Steps))
	categoryGains := make(map[string]float64)
	for i, st := range trace.Steps {
		breakdown = append(breakdown, GainRecord{
			Key:         st.Key,
			Category:    mods[i].Def.Category.String(),
			RawGain:     st.Gain,
			AppliedGain: st.Gain,
			Reason:      st.Rationale,
			Confidence:  st.Confidence,
			BoostPSI:    st.Boost,
		})
		if st.Gain != 0 {
			categoryGains[mods[i].Def.Category.String()] += st.Gain
		}
	}

	res := Result{
		Model:           ModelPhysics,
		Archetype:       arch.Aspiration.String(),
		TotalGain:       trace.TotalGain,
		TotalRawGain:    trace.TotalGain,
		ProjectedHP:     trace.ProjectedHP,
		ProjectedTorque: req.Vehicle.Torque + trace.TorqueGain,
		FinalBoostPSI:   trace.FinalBoost,
		CategoryGains:   categoryGains,
		Breakdown:       breakdown,
		Confidence:      confidenceLabel(trace.MinConfidence),
		SkippedKeys:     skipped,
		Warnings:        trace.Warnings,
	}
	res.Derived = s.derived(req, res.ProjectedHP, secondary{
		weight:      trace.WeightChange,
		zeroToSixty: trace.ZeroToSixtyGain,
		braking:     trace.BrakingGain,
		lateralG:    trace.LateralGGain,
	})
	return res, nil
}

type secondary struct {
	weight      float64
	zeroToSixty float64
	braking     float64
	lateralG    float64
}

func (b *base) derived(req Request, projectedHP float64, sec secondary) derive.Metrics {
	in := derive.Inputs{
		StockHP:          req.Vehicle.HP,
		ProjectedHP:      projectedHP,
		StockWeight:      req.Vehicle.CurbWeight,
		WeightChange:     sec.weight,
		StockZeroToSixty: req.Vehicle.ZeroToSixty,
		ZeroToSixtyGain:  sec.zeroToSixty,
		BrakingGain:      sec.braking,
		LateralGGain:     sec.lateralG,
	}
	if req.WheelFitment != nil {
		in.GripBonus = req.WheelFitment.GripBonus
		in.WeightChange += req.WheelFitment.WeightChange
	}
	return b.projector.Project(in)
}

// confidenceLabel maps the minimum per-mod confidence of a physics trace
// to a qualitative label.
func confidenceLabel(minConfidence float64) string {
	switch {
	case minConfidence >= 0.85:
		return ConfidenceHigh
	case minConfidence >= 0.6:
		return ConfidenceModerate
	default:
		return ConfidenceLow
	}
}
