package cmd

import (
	"fmt"
	"os"

	"bulk-seeder/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	planFlag string
	prodFlag bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bulk-seeder",
	Short: "Ordered bulk data seeder",
	Long: `Bulk Seeder loads record files into MySQL, SQLite or MongoDB in an explicit
creation order, resolving synthetic cross-file ids into the ids assigned by
the database and reporting the outcome of every import unit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config for readable timestamps.
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

func init() {
	RootCmd.PersistentFlags().StringVar(&planFlag, "plan", "", "path of the plan file (overrides SEED_PLAN)")
	RootCmd.PersistentFlags().BoolVar(&prodFlag, "prod", false, "use production source paths (overrides SEED_PRODUCTION)")
}
