// Package processor journals a batch of transactions for one address.
package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fystack/caaj-indexer/internal/plugin"
	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/fystack/caaj-indexer/pkg/events"
	"github.com/fystack/caaj-indexer/pkg/store/journalstore"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

type Processor struct {
	registry    *plugin.Registry
	table       plugin.TokenTable
	store       journalstore.Store
	emitter     events.Emitter
	concurrency int
	logger      *slog.Logger
}

type Option func(*Processor)

// WithStore reuses journals of already processed transactions and saves new ones.
func WithStore(store journalstore.Store) Option {
	return func(p *Processor) { p.store = store }
}

// WithEmitter publishes every freshly journaled transaction.
func WithEmitter(emitter events.Emitter) Option {
	return func(p *Processor) { p.emitter = emitter }
}

func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

func New(registry *plugin.Registry, table plugin.TokenTable, opts ...Option) *Processor {
	p := &Processor{
		registry:    registry,
		table:       table,
		concurrency: DefaultConcurrency,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type Stats struct {
	Journaled int
	Cached    int
	Skipped   int
}

type Result struct {
	Entries []caaj.Journal
	Stats   Stats
}

type txOutcome struct {
	entries []caaj.Journal
	cached  bool
	skipped bool
}

// Run journals txs from the point of view of address. Entries keep the
// per-transaction order and are then stably sorted by execution time. The
// first error cancels the batch and is returned.
func (p *Processor) Run(ctx context.Context, address string, txs []plugin.Transaction) (*Result, error) {
	outcomes := make([]txOutcome, len(txs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, tx := range txs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.process(gctx, address, tx)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Entries: []caaj.Journal{}}
	for _, out := range outcomes {
		switch {
		case out.skipped:
			res.Stats.Skipped++
		case out.cached:
			res.Stats.Cached++
		default:
			res.Stats.Journaled++
		}
		res.Entries = append(res.Entries, out.entries...)
	}
	caaj.SortByExecutedAt(res.Entries)

	p.logger.Info("Journal batch done",
		"address", address,
		"transactions", len(txs),
		"entries", len(res.Entries),
		"journaled", res.Stats.Journaled,
		"cached", res.Stats.Cached,
		"skipped", res.Stats.Skipped,
	)
	return res, nil
}

func (p *Processor) process(ctx context.Context, address string, tx plugin.Transaction) (txOutcome, error) {
	txID := tx.GetTransactionID()

	if p.store != nil {
		entries, found, err := p.store.GetJournal(address, txID)
		if err != nil {
			return txOutcome{}, err
		}
		if found {
			return txOutcome{entries: entries, cached: true}, nil
		}
	}

	entries, handledBy, err := p.registry.GetCaajs(address, tx, p.table)
	if handledBy == "" {
		p.logger.Debug("No plugin for transaction", "tx", txID, "data_type", tx.GetTransactionDataType())
		return txOutcome{skipped: true}, nil
	}
	if err != nil {
		if p.emitter != nil {
			if emitErr := p.emitter.EmitError(ctx, handledBy, address, txID, err); emitErr != nil {
				p.logger.Warn("Emit error event failed", "tx", txID, "err", emitErr)
			}
		}
		return txOutcome{}, fmt.Errorf("%s plugin: %w", handledBy, err)
	}

	if p.store != nil {
		if err := p.store.SaveJournal(address, txID, entries); err != nil {
			return txOutcome{}, fmt.Errorf("save journal %s: %w", txID, err)
		}
	}
	if p.emitter != nil {
		if err := p.emitter.EmitJournal(ctx, handledBy, address, txID, entries); err != nil {
			return txOutcome{}, fmt.Errorf("emit journal %s: %w", txID, err)
		}
	}
	return txOutcome{entries: entries}, nil
}
