package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"ship-registry/core/config"
	"ship-registry/core/database"
	"ship-registry/core/logger"
	"ship-registry/feature/fleet"
	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/snapshot"
	"ship-registry/feature/fleet/store"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	exportCollection bool
	skipInvalid      bool
	jsonReport       bool
	yesConfirm       bool
)

// reconcileCmd builds the collection of the current snapshot.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the snapshot sources into one ship collection",
	Long: `Merge the picture book, roster, marriage list, wiki tables and blueprints
of the current snapshot into ships and their upgrade stages.

Reports source coverage and, with --skip-invalid, the records that were skipped.
Optionally export the collection to the configured database, replacing what is stored.

Examples:
  # Report only
  reconcile

  # Read a local snapshot and keep going past invalid records
  reconcile --dir ./exports --skip-invalid

  # Export with auto-confirm (non-interactive)
  reconcile --export --yes

  # Save the full report as JSON
  reconcile --json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&snapshotDir, "dir", "", "Read the snapshot from a local directory instead of the bucket")
	reconcileCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip invalid records instead of aborting")
	reconcileCmd.Flags().BoolVar(&exportCollection, "export", false, "Export the collection to the database")
	reconcileCmd.Flags().BoolVar(&jsonReport, "json", false, "Save the build report as JSON")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if skipInvalid {
		cfg.Snapshot.SkipInvalid = true
	}
	// A one-shot build never reuses a cached collection.
	cfg.Snapshot.CacheTTLSeconds = 0

	svc, err := newFleetService(cfg, l)
	if err != nil {
		return err
	}

	l.Info("Starting reconciliation")
	b, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	printReconcileReport(l, b.Report)

	if jsonReport {
		filename := fmt.Sprintf("reconcile_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(b.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save JSON file: %w", err)
		}
		l.Info("Detailed JSON report saved", zap.String("file", filename))
	}

	if !exportCollection {
		l.Info("No export requested. Use --export to store the collection.", zap.Duration("execution_time", time.Since(start)))
		return nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.Migrate(db); err != nil {
		return err
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	ships, mods, err := store.Save(ctx, db, b.Collection, b.Snapshot)
	if err != nil {
		return err
	}

	l.Info("Collection exported",
		zap.Int("ships", ships),
		zap.Int("mods", mods),
		zap.Duration("execution_time", time.Since(start)),
	)
	return nil
}

// newFleetService wires the snapshot source, classifier and builder settings of cfg.
func newFleetService(cfg *config.Config, l *zap.Logger) (*fleet.Service, error) {
	source, _, err := newSource(cfg)
	if err != nil {
		return nil, err
	}
	c, err := newClassifier(cfg)
	if err != nil {
		return nil, err
	}
	loader := snapshot.NewLoader(source, cfg.Snapshot.Layout(), l)
	return fleet.NewService(loader, c, cfg.Snapshot, nil, l)
}

// printReconcileReport prints a formatted build report using logger.
func printReconcileReport(l *zap.Logger, report *assemble.Report) {
	s := report.Summary

	fields := []zap.Field{
		zap.Int("ships", report.Ships),
		zap.Int("mods", report.Mods),
		zap.Int("names", s.TotalItems),
		zap.Int("complete", s.Complete),
	}
	for _, src := range assemble.StageSources {
		fields = append(fields, zap.Int("missing_"+string(src), s.Missing[src]))
	}
	l.Info("Reconciliation report", fields...)

	if len(report.Issues) == 0 {
		return
	}

	l.Warn("Skipped records", zap.Int("count", len(report.Issues)))

	// Show sample of issues (max 5 for logger)
	maxShow := min(5, len(report.Issues))
	for _, issue := range report.Issues[:maxShow] {
		l.Warn("Sample issue",
			zap.String("name", issue.Name),
			zap.String("reason", issue.Reason),
		)
	}
	if len(report.Issues) > maxShow {
		l.Info("Additional issues not shown", zap.Int("count", len(report.Issues)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to replace the stored collection: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
