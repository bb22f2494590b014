// Package compare runs both projection models against identical input and
// reports their divergence. It exists for offline validation and backfill
// tooling; the production path selects a single model by configuration.
package compare

import (
	"context"
	"fmt"

	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/projection"
)

// Report captures one side-by-side run.
type Report struct {
	Legacy  projection.Result `json:"legacy"`
	Physics projection.Result `json:"physics"`

	// HPDelta is physics projected hp minus legacy projected hp.
	HPDelta float64 `json:"hp_delta"`

	// ConfidenceLabel is the physics run's label, derived from its
	// minimum per-mod confidence.
	ConfidenceLabel string `json:"confidence_label"`
}

// Runner holds one instance of each model implementation.
type Runner struct {
	legacy  projection.Service
	physics projection.Service
}

// NewRunner builds both implementations over the shared catalog.
func NewRunner(cat *catalog.Catalog, opts ...projection.Option) (*Runner, error) {
	leg, err := projection.NewLegacy(cat, opts...)
	if err != nil {
		return nil, fmt.Errorf("legacy model: %w", err)
	}
	phy, err := projection.NewPhysics(cat, opts...)
	if err != nil {
		return nil, fmt.Errorf("physics model: %w", err)
	}
	return &Runner{legacy: leg, physics: phy}, nil
}

// Run evaluates the request under both models.
func (r *Runner) Run(ctx context.Context, req projection.Request) (Report, error) {
	leg, err := r.legacy.Project(ctx, req)
	if err != nil {
		return Report{}, fmt.Errorf("legacy projection: %w", err)
	}
	phy, err := r.physics.Project(ctx, req)
	if err != nil {
		return Report{}, fmt.Errorf("physics projection: %w", err)
	}
	return Report{
		Legacy:          leg,
		Physics:         phy,
		HPDelta:         phy.ProjectedHP - leg.ProjectedHP,
		ConfidenceLabel: phy.Confidence,
	}, nil
}
