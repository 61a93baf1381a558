package fleet

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"ship-registry/core/metrics"
	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/cost"
	"ship-registry/feature/fleet/decode"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/snapshot"

	"go.uber.org/zap"
)

// ErrShipNotFound is returned when no ship matches a base or display name.
var ErrShipNotFound = errors.New("ship not found")

// Build is one assembled snapshot.
type Build struct {
	Snapshot   string
	BuiltAt    time.Time
	Collection *assemble.Collection
	Report     *assemble.Report
}

// Service builds collections from snapshots and answers queries on them.
// Builds are cached per snapshot for the configured TTL.
type Service struct {
	loader  *snapshot.Loader
	builder *assemble.Builder
	cache   *reconcile.Cache[*Build]
	ttl     time.Duration
	policy  cost.Policy
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new fleet service.
// m may be nil when metrics are not exported.
func NewService(loader *snapshot.Loader, c *classifier.Classifier, cfg snapshot.Config, m *metrics.Metrics, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	policy := cost.PreferAffordable
	if cfg.UpgradePolicy != "" {
		p, err := cost.ParsePolicy(cfg.UpgradePolicy)
		if err != nil {
			return nil, err
		}
		policy = p
	}

	opts := []assemble.Option{assemble.WithLogger(logger)}
	if cfg.SkipInvalid {
		opts = append(opts, assemble.WithSkipInvalid())
	}

	return &Service{
		loader:  loader,
		builder: assemble.NewBuilder(c, opts...),
		cache:   reconcile.NewCache[*Build](),
		ttl:     cfg.CacheTTL(),
		policy:  policy,
		metrics: m,
		logger:  logger,
	}, nil
}

// Policy returns the upgrade policy the service recommends.
func (s *Service) Policy() cost.Policy {
	return s.policy
}

// Build returns the collection of the current snapshot, building it when the
// cached one is missing or stale.
func (s *Service) Build(ctx context.Context) (*Build, error) {
	return s.cache.GetOrBuild(ctx, s.loader.Key(), s.ttl, s.build)
}

// Refresh drops the cached collection and builds it again.
func (s *Service) Refresh(ctx context.Context) (*Build, error) {
	s.cache.Invalidate(s.loader.Key())
	return s.Build(ctx)
}

func (s *Service) build(ctx context.Context) (*Build, error) {
	start := time.Now()

	src, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.ObserveBuild(metrics.OutcomeFailure, time.Since(start))
		return nil, fmt.Errorf("failed to load snapshot %s: %w", s.loader.Key(), err)
	}

	c, report, err := s.builder.Build(src)
	if err != nil {
		s.metrics.ObserveBuild(metrics.OutcomeFailure, time.Since(start))
		return nil, fmt.Errorf("failed to build snapshot %s: %w", s.loader.Key(), err)
	}

	took := time.Since(start)
	s.metrics.ObserveBuild(metrics.OutcomeSuccess, took)
	s.metrics.SetCollection(report.Ships, report.Mods, len(report.Issues))

	s.logger.Info("Collection rebuilt",
		zap.String("snapshot", s.loader.Key()),
		zap.Int("ships", report.Ships),
		zap.Int("mods", report.Mods),
		zap.Int("issues", len(report.Issues)),
		zap.Duration("took", took),
	)

	return &Build{
		Snapshot:   s.loader.Key(),
		BuiltAt:    start,
		Collection: c,
		Report:     report,
	}, nil
}

// ListShips returns a summary of every ship, sorted by name.
func (s *Service) ListShips(ctx context.Context) ([]ShipSummary, error) {
	b, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ShipSummary, 0, b.Collection.Len())
	for ship := range b.Collection.Ships() {
		out = append(out, summarize(ship))
	}
	return out, nil
}

// GetShip returns the detail of the ship with the given base name, or of the
// ship owning the given display name.
func (s *Service) GetShip(ctx context.Context, name string) (*ShipDetail, error) {
	b, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}

	// Collection keys are normalized by the decoders.
	name = decode.Name(name)
	if ship, ok := b.Collection.Get(name); ok {
		return detail(ship, s.policy), nil
	}
	ship, mod, ok := b.Collection.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrShipNotFound, name)
	}
	d := detail(ship, s.policy)
	d.Matched = mod.Name
	return d, nil
}

// ListMods returns every stage record of every ship, ordered by ship and stage.
func (s *Service) ListMods(ctx context.Context) ([]*models.ShipMod, error) {
	b, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Collect(b.Collection.Mods()), nil
}

// Coverage reports which sources contributed to each stage record.
func (s *Service) Coverage(ctx context.Context) (*CoverageReport, error) {
	b, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	return &CoverageReport{
		Snapshot: b.Snapshot,
		BuiltAt:  b.BuiltAt,
		Results:  b.Report.Coverage,
		Summary:  b.Report.Summary,
		Issues:   b.Report.Issues,
	}, nil
}
