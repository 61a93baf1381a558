package checks

import (
	"context"
	"errors"

	"ship-registry/feature/fleet/snapshot"
)

// SnapshotReport lists the snapshot objects that could not be found.
type SnapshotReport struct {
	Source string `json:"source"`
	// Complete is false when a required object is missing.
	Complete        bool     `json:"complete"`
	Missing         []string `json:"missing"`
	MissingOptional []string `json:"missing_optional"`
}

// CheckSnapshot opens every object of the snapshot through source.
// Errors other than a missing object abort the check.
func CheckSnapshot(ctx context.Context, source snapshot.Source, objects []snapshot.Object) (*SnapshotReport, error) {
	report := &SnapshotReport{
		Source:          source.Name(),
		Complete:        true,
		Missing:         []string{},
		MissingOptional: []string{},
	}

	for _, o := range objects {
		rc, err := source.Open(ctx, o.Path)
		if errors.Is(err, snapshot.ErrNotFound) {
			if o.Required {
				report.Missing = append(report.Missing, o.Path)
				report.Complete = false
			} else {
				report.MissingOptional = append(report.MissingOptional, o.Path)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}

	return report, nil
}
