package integrity

import (
	"context"
	"errors"

	"ship-registry/core/storage"
	"ship-registry/feature/fleet/snapshot"
	"ship-registry/feature/fleet/store"
	"ship-registry/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrNoBucket is returned by bucket checks when the snapshot is read from a local directory.
var ErrNoBucket = errors.New("no storage bucket configured")

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	source snapshot.Source
	layout snapshot.Layout
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
// client may be nil when source is not a bucket; db may be nil when no export database is configured.
func NewService(client storage.Client, bucket string, source snapshot.Source, layout snapshot.Layout, db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: bucket,
		source: source,
		layout: layout,
		db:     db,
		logger: logger,
	}
}

// Folders returns the folders a snapshot needs in the bucket.
func (s *Service) Folders() []string {
	return checks.Folders(s.layout.Objects())
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoBucket
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.Folders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return ErrNoBucket
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSnapshot reports the snapshot objects that are missing.
func (s *Service) CheckSnapshot(ctx context.Context) (*checks.SnapshotReport, error) {
	return checks.CheckSnapshot(ctx, s.source, s.layout.Objects())
}

// CheckServer compares the export database schema with the store models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db, store.Models())
}

// SectionError replaces a report section whose check could not run.
type SectionError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// StructureSection is the structure part of a combined report.
type StructureSection struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing"`
}

// Report combines every integrity check. Each section holds either the
// check's own report or a SectionError.
type Report struct {
	Structure any `json:"structure"`
	Snapshot  any `json:"snapshot"`
	Server    any `json:"server"`
}

// CheckAll runs every check concurrently. A failing check never fails the
// others; it is reported in its section.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{}
	section := func(v any, err error) any {
		if err != nil {
			s.logger.Warn("Integrity check failed", zap.Error(err))
			return SectionError{Status: "error", Error: err.Error()}
		}
		return v
	}

	var g errgroup.Group
	g.Go(func() error {
		missing, err := s.CheckStructure(ctx)
		report.Structure = section(StructureSection{Status: "ok", Missing: missing}, err)
		return nil
	})
	g.Go(func() error {
		snap, err := s.CheckSnapshot(ctx)
		report.Snapshot = section(snap, err)
		return nil
	})
	g.Go(func() error {
		srv, err := s.CheckServer()
		report.Server = section(srv, err)
		return nil
	})
	_ = g.Wait()

	return report
}
