// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/dyno/internal/adapters/cache"
	"github.com/okian/dyno/internal/domain/catalog"
	"github.com/okian/dyno/internal/domain/compare"
	"github.com/okian/dyno/internal/domain/derive"
	"github.com/okian/dyno/internal/domain/projection"
	"github.com/okian/dyno/pkg/logger"
	"github.com/okian/dyno/pkg/metrics"
)

// Service wires the catalog, both projection models, the configured
// default model, and the result cache behind one facade.
type Service struct {
	mu sync.RWMutex

	catalog   *catalog.Catalog
	legacy    projection.Service
	physics   projection.Service
	runner    *compare.Runner
	results   *cache.Store
	projector *derive.Projector

	model     string
	maxMods   int
	cacheSize int

	started bool

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog replaces the built-in modification catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(s *Service) {
		if cat != nil {
			s.catalog = cat
		}
	}
}

// WithModel selects the default projection implementation.
func WithModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.model = model
		}
	}
}

// WithMaxMods bounds the selected mod set for one projection.
func WithMaxMods(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxMods = n
		}
	}
}

// WithResultCacheSize bounds the memoization cache; zero disables it.
func WithResultCacheSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.cacheSize = n
		}
	}
}

// WithProjector overrides the derived-metrics projector.
func WithProjector(p *derive.Projector) Option {
	return func(s *Service) {
		if p != nil {
			s.projector = p
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		catalog:   catalog.Default(),
		model:     projection.ModelLegacy,
		maxMods:   32,
		cacheSize: 10_000,
		projector: derive.NewProjector(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start builds the model implementations. Safe to call once.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	popts := []projection.Option{projection.WithProjector(s.projector)}
	if s.log != nil {
		popts = append(popts, projection.WithLogger(s.log))
	}

	var err error
	if s.legacy, err = projection.NewLegacy(s.catalog, popts...); err != nil {
		return fmt.Errorf("legacy model: %w", err)
	}
	if s.physics, err = projection.NewPhysics(s.catalog, popts...); err != nil {
		return fmt.Errorf("physics model: %w", err)
	}
	if s.runner, err = compare.NewRunner(s.catalog, popts...); err != nil {
		return fmt.Errorf("comparison runner: %w", err)
	}
	s.results = cache.New(cache.WithMaxSize(s.cacheSize))

	metrics.UpdateCatalogSize(s.catalog.Size())

	if s.log != nil {
		s.log.Info(ctx, "projection service started",
			logger.String("model", s.model),
			logger.Int("catalog_size", s.catalog.Size()))
	}
	s.started = true
	return nil
}

// Stop releases the service. The engine holds no external resources; this
// only flips the started flag so a restart is explicit.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Model returns the configured default model name.
func (s *Service) Model() string {
	return s.model
}

// Project evaluates a request under the configured model, serving
// identical repeat requests from the memoization cache.
func (s *Service) Project(ctx context.Context, req projection.Request) (projection.Result, error) {
	svc, err := s.service(s.model)
	if err != nil {
		return projection.Result{}, err
	}
	if len(req.Mods) > s.maxMods {
		return projection.Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyMods, len(req.Mods), s.maxMods)
	}

	key, cacheable := cache.Fingerprint(s.model, req)
	if cacheable {
		if res, ok := s.results.Get(key); ok {
			metrics.RecordResultCacheHit()
			return res, nil
		}
	}

	start := time.Now()
	res, err := svc.Project(ctx, req)
	if err != nil {
		return projection.Result{}, err
	}
	metrics.RecordProjection(s.model, float64(time.Since(start).Microseconds())/1e3)
	metrics.RecordCapClamps(res.CapClamps)
	metrics.RecordTuneSupersessions(res.Supersessions)
	for range res.SkippedKeys {
		metrics.RecordUnknownModKey()
	}

	if cacheable {
		s.results.Put(key, res)
	}
	return res, nil
}

// Compare runs both models side by side for validation tooling.
func (s *Service) Compare(ctx context.Context, req projection.Request) (compare.Report, error) {
	s.mu.RLock()
	runner := s.runner
	s.mu.RUnlock()
	if runner == nil {
		return compare.Report{}, ErrNotStarted
	}
	if len(req.Mods) > s.maxMods {
		return compare.Report{}, fmt.Errorf("%w: %d > %d", ErrTooManyMods, len(req.Mods), s.maxMods)
	}
	report, err := runner.Run(ctx, req)
	if err != nil {
		return compare.Report{}, err
	}
	metrics.RecordComparisonRun()
	return report, nil
}

// CatalogDefinitions exposes the loaded registry in key order.
func (s *Service) CatalogDefinitions() []catalog.Definition {
	return s.catalog.Definitions()
}

func (s *Service) service(model string) (projection.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	switch model {
	case projection.ModelLegacy:
		return s.legacy, nil
	case projection.ModelPhysics:
		return s.physics, nil
	default:
		return nil, fmt.Errorf("%w: %q", projection.ErrUnknownModel, model)
	}
}
