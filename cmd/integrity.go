package cmd

import (
	"context"
	"fmt"
	"os"

	"ship-registry/core/config"
	"ship-registry/core/database"
	"ship-registry/core/logger"
	"ship-registry/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the snapshot storage and export database",
	Long:  `Checks that the bucket holds the snapshot folders, that every snapshot export is present and that the export database schema matches.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			cmd.Help()
			return
		}
		runIntegrityChecks(cmd.Context(), checkAll)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the snapshot folder structure",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkStructure)
	},
}

// snapshotCmd represents the integrity snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Check the snapshot exports",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkSnapshot)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the export database schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), checkServer)
	},
}

type integrityCheck int

const (
	checkAll integrityCheck = iota
	checkStructure
	checkSnapshot
	checkServer
)

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, snapshotCmd, serverCmd)
	integrityCmd.PersistentFlags().StringVar(&snapshotDir, "dir", "", "Read the snapshot from a local directory instead of the bucket")

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
}

func runIntegrityChecks(ctx context.Context, only integrityCheck) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	source, client, err := newSource(cfg)
	if err != nil {
		logg.Fatal("Failed to create snapshot source", zap.Error(err))
	}

	// Connect to Database (Optional)
	var db *gorm.DB
	if only == checkAll || only == checkServer {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg = logg.With(zap.String("database", cfg.Database.Driver))
		}
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, source, cfg.Snapshot.Layout(), db, logg)

	if (only == checkAll && client != nil) || only == checkStructure {
		logg.Info("Checking folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			logg.Fatal("Structure check failed", zap.Error(err))
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			if only == checkStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					logg.Fatal("Failed to fix structure", zap.Error(err))
				}
				logg.Info("Structure fixed successfully.")
			} else if only == checkStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if only == checkAll || only == checkSnapshot {
		logg.Info("Checking snapshot exports...", zap.String("source", source.Name()))
		report, err := svc.CheckSnapshot(ctx)
		if err != nil {
			logg.Fatal("Snapshot check failed", zap.Error(err))
		}

		if report.Complete {
			logg.Info("Required snapshot exports are present.", zap.Strings("missing_optional", report.MissingOptional))
		} else {
			logg.Warn("Missing snapshot exports detected",
				zap.Strings("missing", report.Missing),
				zap.Strings("missing_optional", report.MissingOptional),
			)
		}
	}

	if only == checkAll || only == checkServer {
		logg.Info("Checking export database schema...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return
		}
		if report.Matched {
			logg.Info("Database schema matches the store models.")
			return
		}

		logg.Warn("Database schema mismatches found")
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
}
