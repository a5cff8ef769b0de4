package cmd

import (
	"fmt"
	"os"

	"verdex/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "verdex",
	Short: "Verdex Catalog Service",
	Long: `Verdex is the back office for a plant identification platform.
It keeps the canonical plant catalog consistent with the media filesystem
and merges changes from offline clients.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format matches CLI expectations; debug level selects the
		// dev config with ISO8601 timestamps instead of epoch.
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
