package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "caaj",
		Short:        "Derive CAAJ journal entries from decoded Osmosis transactions",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path (defaults are used when empty)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newJournalCmd(), newTokensCmd(), newNatsPrinterCmd(), newCacheCmd())

	if err := root.Execute(); err != nil {
		logger.Error("Command failed", "err", err)
		os.Exit(1)
	}
}

// loadConfig reads --config (or the defaults), applies flag overrides and
// initializes the logger.
func loadConfig(cmd *cobra.Command, override func(*config.Config)) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg = config.Default()
	} else if cfg, err = config.Load(path); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if override != nil {
		override(cfg)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Init(&logger.Options{
		Level:      logger.ParseLevel(cfg.LogLevel),
		TimeFormat: time.RFC3339,
	})
	return cfg, nil
}
