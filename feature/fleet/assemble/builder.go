package assemble

import (
	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/models"

	"go.uber.org/zap"
)

// Record sources merged per display name.
const (
	SourceBook     reconcile.Source = "picturebook"
	SourceRoster   reconcile.Source = "roster"
	SourceMarriage reconcile.Source = "marriage"
	// SourceWiki is shared by both wiki tables.
	SourceWiki reconcile.Source = "wiki"
	// SourceBlueprint is keyed by base name rather than display name.
	SourceBlueprint reconcile.Source = "blueprint"
)

// StageSources lists the sources merged into stage records, in report order.
var StageSources = []reconcile.Source{SourceBook, SourceRoster, SourceMarriage, SourceWiki}

// Sources holds the decoded records of one snapshot.
type Sources struct {
	Book           []models.BookEntry
	Roster         []models.RosterEntry
	Marriage       []models.MarriageEntry
	WikiUnmodified []models.WikiEntry
	WikiModified   []models.WikiEntry
	Blueprints     []models.Blueprint
}

// Report describes one build.
type Report struct {
	Ships int `json:"ships"`
	Mods  int `json:"mods"`
	// Coverage lists, per display name, which sources contributed.
	Coverage []reconcile.Result `json:"coverage"`
	Summary  reconcile.Summary  `json:"summary"`
	// Issues lists the records skipped WithSkipInvalid.
	Issues []Issue `json:"issues"`
}

// Builder assembles collections. It holds no state between builds and may be
// used for several snapshots, also concurrently.
type Builder struct {
	classifier  *classifier.Classifier
	logger      *zap.Logger
	skipInvalid bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build summaries and skipped records.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithSkipInvalid makes the build skip offending records, listing them in
// the report, instead of failing on the first one.
func WithSkipInvalid() Option {
	return func(b *Builder) {
		b.skipInvalid = true
	}
}

// NewBuilder creates a builder splitting picture-book entries with c.
func NewBuilder(c *classifier.Classifier, opts ...Option) *Builder {
	b := &Builder{
		classifier: c,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build reconciles src into a collection.
// Any duplicate, unrecognized stage suffix or invariant violation aborts the
// build unless the builder skips invalid records.
func (b *Builder) Build(src Sources) (*Collection, *Report, error) {
	run := &build{Builder: b, report: &Report{Issues: []Issue{}}}

	mods, err := run.stages(src)
	if err != nil {
		return nil, nil, err
	}

	ships, err := run.ships(src.Blueprints, mods)
	if err != nil {
		return nil, nil, err
	}

	c := newCollection(ships)
	run.report.Ships = c.Len()
	for range c.Mods() {
		run.report.Mods++
	}

	b.logger.Debug("Collection built",
		zap.Int("ships", run.report.Ships),
		zap.Int("mods", run.report.Mods),
		zap.Int("issues", len(run.report.Issues)),
	)
	return c, run.report, nil
}

// build carries the state of one Build call.
type build struct {
	*Builder
	report *Report
}

// fail aborts with err, or records it and carries on when skipping.
func (r *build) fail(name string, err error) error {
	if !r.skipInvalid {
		return err
	}
	r.logger.Warn("Skipping invalid record", zap.String("name", name), zap.Error(err))
	r.report.Issues = append(r.report.Issues, newIssue(name, err))
	return nil
}
