package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/decode"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loader fetches and decodes every object of one snapshot.
type Loader struct {
	source Source
	layout Layout
	logger *zap.Logger
}

// NewLoader creates a loader reading layout from source.
func NewLoader(source Source, layout Layout, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, layout: layout, logger: logger}
}

// Key identifies the snapshot the loader reads.
func (l *Loader) Key() string {
	return l.source.Name() + "/" + l.layout.Prefix
}

// Layout returns the layout the loader reads.
func (l *Loader) Layout() Layout {
	return l.layout
}

// Load fetches all objects concurrently and decodes them.
// Missing optional objects decode as empty.
func (l *Loader) Load(ctx context.Context) (assemble.Sources, error) {
	var src assemble.Sources
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.PictureBook, true, func(r io.Reader) error {
			src.Book, err = decode.Book(r)
			return err
		})
	})
	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.Roster, true, func(r io.Reader) error {
			src.Roster, err = decode.Roster(r)
			return err
		})
	})
	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.Marriage, false, func(r io.Reader) error {
			src.Marriage, err = decode.Marriage(r)
			return err
		})
	})
	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.WikiUnmodified, false, func(r io.Reader) error {
			src.WikiUnmodified, err = decode.Wiki(r, false)
			return err
		})
	})
	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.WikiModified, false, func(r io.Reader) error {
			src.WikiModified, err = decode.Wiki(r, true)
			return err
		})
	})
	g.Go(func() (err error) {
		return l.fetch(ctx, l.layout.Blueprints, false, func(r io.Reader) error {
			src.Blueprints, err = decode.Blueprints(r)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		return assemble.Sources{}, err
	}

	l.logger.Debug("Snapshot loaded",
		zap.String("snapshot", l.Key()),
		zap.Int("picturebook", len(src.Book)),
		zap.Int("roster", len(src.Roster)),
		zap.Int("marriage", len(src.Marriage)),
		zap.Int("wiki", len(src.WikiUnmodified)+len(src.WikiModified)),
		zap.Int("blueprints", len(src.Blueprints)),
	)
	return src, nil
}

// fetch opens one object and hands it to decode.
func (l *Loader) fetch(ctx context.Context, name string, required bool, decodeFn func(io.Reader) error) error {
	objectPath := l.layout.Path(name)

	rc, err := l.source.Open(ctx, objectPath)
	if errors.Is(err, ErrNotFound) && !required {
		l.logger.Debug("Optional snapshot object missing", zap.String("object", objectPath))
		return nil
	}
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := decodeFn(rc); err != nil {
		return fmt.Errorf("%s: %w", objectPath, err)
	}
	return nil
}
