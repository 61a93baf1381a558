package cmd

import (
	"fmt"

	"ship-registry/core/config"
	"ship-registry/core/storage"
	"ship-registry/feature/fleet/classifier"
	"ship-registry/feature/fleet/snapshot"
)

// snapshotDir overrides snapshot.dir for the commands that read a snapshot.
var snapshotDir string

// newSource returns a directory source when a snapshot directory is configured,
// and a bucket source otherwise. The storage client is nil for directory sources.
func newSource(cfg *config.Config) (snapshot.Source, storage.Client, error) {
	dir := cfg.Snapshot.Dir
	if snapshotDir != "" {
		dir = snapshotDir
	}
	if dir != "" {
		return snapshot.NewDirSource(dir), nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return snapshot.NewBucketSource(client, cfg.Storage.Bucket), client, nil
}

// newClassifier returns the built-in classifier, merged with the configured override table.
func newClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	c, err := classifier.FromConfig(cfg.Snapshot.ClassifierTable)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier table: %w", err)
	}
	return c, nil
}
