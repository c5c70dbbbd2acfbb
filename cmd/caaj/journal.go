package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fystack/caaj-indexer/internal/plugin"
	"github.com/fystack/caaj-indexer/internal/plugin/osmosis"
	"github.com/fystack/caaj-indexer/internal/processor"
	"github.com/fystack/caaj-indexer/pkg/caaj"
	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/enum"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/fystack/caaj-indexer/pkg/events"
	"github.com/fystack/caaj-indexer/pkg/infra"
	"github.com/fystack/caaj-indexer/pkg/tokentable"
	"github.com/spf13/cobra"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Journal decoded transactions for one address",
		RunE:  runJournal,
	}
	cmd.Flags().String("address", "", "address whose point of view is journaled")
	cmd.Flags().StringSlice("in", nil, "decoded transaction files (JSON, JSON array or JSONL)")
	cmd.Flags().String("out", "", "output file (stdout when empty)")
	cmd.Flags().String("format", "", "output format (csv, json)")
	cmd.Flags().String("token-table", "", "token original id CSV, overrides token_table.path")
	cmd.Flags().Int("concurrency", 0, "transactions journaled in parallel")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func runJournal(cmd *cobra.Command, _ []string) error {
	address, _ := cmd.Flags().GetString("address")
	inputs, _ := cmd.Flags().GetStringSlice("in")
	outPath, _ := cmd.Flags().GetString("out")

	cfg, err := loadConfig(cmd, func(c *config.Config) {
		if v, _ := cmd.Flags().GetString("format"); v != "" {
			c.Output.Format = enum.OutputFormat(v)
		}
		if v, _ := cmd.Flags().GetString("token-table"); v != "" {
			c.TokenTable.Path = v
		}
		if v, _ := cmd.Flags().GetInt("concurrency"); v > 0 {
			c.Processor.Concurrency = v
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := tokentable.Load(ctx, cfg.TokenTable)
	if err != nil {
		return err
	}

	var txs []plugin.Transaction
	for _, in := range inputs {
		loaded, err := chain.LoadFile(in)
		if err != nil {
			return err
		}
		for _, tx := range loaded {
			txs = append(txs, tx)
		}
	}
	logger.Info("Transactions loaded", "files", len(inputs), "transactions", len(txs))

	opts := []processor.Option{
		processor.WithConcurrency(cfg.Processor.Concurrency),
		processor.WithLogger(logger.L()),
	}

	if cfg.KVStore.Enabled {
		store, err := newJournalStore(cfg.KVStore)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, processor.WithStore(store))
	}

	if cfg.NATS.Enabled {
		emitter, closeFn, err := newEmitter(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeFn()
		opts = append(opts, processor.WithEmitter(emitter))
	}

	registry := plugin.NewRegistry(osmosis.New(osmosis.WithLogger(logger.L())))
	logger.Info("Journaling", "address", address, "plugins", registry.Names())
	res, err := processor.New(registry, table, opts...).Run(ctx, address, txs)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writeEntries(os.Stdout, cfg.Output.Format, res.Entries)
	}
	return writeOutput(outPath, cfg.Output.Format, res.Entries)
}

// writeOutput writes entries to path. The file is closed before returning so
// a failed flush surfaces as an error.
func writeOutput(path string, format enum.OutputFormat, entries []caaj.Journal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeEntries(f, format, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeEntries(w io.Writer, format enum.OutputFormat, entries []caaj.Journal) error {
	switch format {
	case enum.OutputFormatJSON:
		return caaj.WriteJSON(w, entries)
	case enum.OutputFormatCSV, "":
		return caaj.WriteCSV(w, entries)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func newEmitter(ctx context.Context, cfg *config.Config) (events.Emitter, func(), error) {
	nc, err := infra.ConnectNATS(ctx, cfg.NATS, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}
	manager, err := infra.NewNATsMessageQueueManager(ctx, cfg.NATS.Stream, []string{cfg.NATS.SubjectPrefix + ".>"}, nc)
	if err != nil {
		nc.Close()
		return nil, nil, err
	}
	emitter := events.NewEmitter(manager.NewPublisher(), cfg.NATS.SubjectPrefix)
	return emitter, func() {
		emitter.Close()
		if err := nc.Drain(); err != nil {
			logger.Warn("NATS drain failed", "err", err)
		}
	}, nil
}
