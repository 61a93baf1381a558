package cmd

import (
	"fmt"
	"os"

	"ship-registry/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ship-registry",
	Short: "Ship Registry Service",
	Long: `Ship Registry reconciles a player's picture book, roster, marriage list,
wiki tables and blueprints into one collection of ships and their upgrade stages.
Snapshots are read from S3-compatible storage or a local directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
