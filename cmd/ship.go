package cmd

import (
	"context"
	"fmt"
	"os"

	"ship-registry/core/config"
	"ship-registry/core/logger"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shipCmd represents the top-level ship command
var shipCmd = &cobra.Command{
	Use:   "ship [name]",
	Short: "View the stages, blueprints and upgrade plans of a ship",
	Long: `Reconciles the current snapshot and prints one ship as JSON.
The name may be the base name or the name of any of its stages.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runShipDetail(cmd.Context(), args[0])
	},
}

func init() {
	shipCmd.Flags().StringVar(&snapshotDir, "dir", "", "Read the snapshot from a local directory instead of the bucket")
	RootCmd.AddCommand(shipCmd)
}

func runShipDetail(ctx context.Context, name string) {
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

	cfg.Snapshot.CacheTTLSeconds = 0
	svc, err := newFleetService(cfg, logg)
	if err != nil {
		logg.Fatal("Failed to create fleet service", zap.Error(err))
	}

	detail, err := svc.GetShip(ctx, name)
	if err != nil {
		logg.Fatal("Ship lookup failed", zap.String("name", name), zap.Error(err))
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		logg.Fatal("Failed to marshal ship", zap.Error(err))
	}
	fmt.Println(string(data))
}
