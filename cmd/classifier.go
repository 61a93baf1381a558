package cmd

import (
	"fmt"
	"strconv"

	"ship-registry/core/config"
	"ship-registry/feature/fleet/classifier"

	"github.com/spf13/cobra"
)

// classifierCmd groups the picture-book page classification commands.
var classifierCmd = &cobra.Command{
	Use:   "classifier",
	Short: "Inspect the picture-book page classification table",
}

// classifierDumpCmd prints the effective table as YAML.
var classifierDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective classification table as YAML",
	Long: `Prints the built-in table merged with snapshot.classifier_table.
The output can be edited and used as an override file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		table := classifier.DefaultTable()
		if p := cfg.Snapshot.ClassifierTable; p != "" {
			override, err := classifier.LoadFile(p)
			if err != nil {
				return err
			}
			table = table.Merge(override)
		}

		data, err := classifier.Marshal(table)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// classifierLookupCmd prints the sources of every page of one picture-book entry.
var classifierLookupCmd = &cobra.Command{
	Use:   "lookup [bookNo]",
	Short: "Print the page sources of a picture-book entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookNo, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid book number %q: %w", args[0], err)
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c, err := newClassifier(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		sources, ok := c.Sources(bookNo)
		if !ok {
			fmt.Fprintf(out, "book %d: not documented, every page past 0 is unknown\n", bookNo)
			return nil
		}
		fmt.Fprintf(out, "page 0: %s\n", c.Lookup(bookNo, 0))
		for i, src := range sources {
			fmt.Fprintf(out, "page %d: %s\n", i+1, src)
		}
		return nil
	},
}

func init() {
	classifierCmd.AddCommand(classifierDumpCmd, classifierLookupCmd)
	RootCmd.AddCommand(classifierCmd)
}
