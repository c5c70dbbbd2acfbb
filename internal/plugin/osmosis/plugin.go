// Package osmosis derives CAAJ journal entries from decoded Osmosis
// transactions: swaps, IBC transfers, pool joins and exits, lockups,
// delegations, relayed IBC receives and fees.
package osmosis

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fystack/caaj-indexer/internal/plugin"
	"github.com/fystack/caaj-indexer/pkg/caaj"
	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
)

const (
	Chain    = "osmosis"
	Platform = "osmosis"
)

// Transaction is the view of a decoded Osmosis transaction the builders
// need. *chain.Transaction implements it.
type Transaction interface {
	plugin.Transaction
	Code() uint32
	Logs() []chain.Log
	MessageType() (string, error)
	FirstMessage(v any) error
	FeeCoins() []chain.Coin
}

var _ Transaction = (*chain.Transaction)(nil)

type Plugin struct {
	ids    IDGenerator
	logger *slog.Logger
}

var _ plugin.Plugin = (*Plugin)(nil)

type Option func(*Plugin)

func WithIDGenerator(ids IDGenerator) Option {
	return func(p *Plugin) {
		p.ids = ids
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

func New(opts ...Option) *Plugin {
	p := &Plugin{
		ids:    UUIDGenerator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Plugin) Name() string { return Chain }

func (p *Plugin) CanHandle(tx plugin.Transaction) bool {
	return strings.Contains(tx.GetTransactionDataType(), Chain)
}

// GetCaajs journals tx from the point of view of address. Failed
// transactions yield no entries and no error.
func (p *Plugin) GetCaajs(address string, tx plugin.Transaction, table plugin.TokenTable) ([]caaj.Journal, error) {
	otx, ok := tx.(Transaction)
	if !ok {
		return nil, fmt.Errorf("tx %s: %w", tx.GetTransactionID(), ErrNotOsmosisTransaction)
	}

	if otx.Code() != 0 {
		p.logger.Debug("Skip failed transaction", "tx", otx.GetTransactionID(), "code", otx.Code())
		return []caaj.Journal{}, nil
	}

	msgType, err := otx.MessageType()
	if err != nil {
		return nil, err
	}
	kind := Classify(msgType)

	b := newJournalBuilder(address, otx, table, p.ids)
	entries, err := b.build(kind, msgType)
	if err != nil {
		return nil, err
	}

	if kind.ChargesFee() {
		fees, err := b.buildFees()
		if err != nil {
			return nil, fmt.Errorf("journal %s tx %s: %w", kind, otx.GetTransactionID(), err)
		}
		entries = append(entries, fees...)
	}

	if entries == nil {
		entries = []caaj.Journal{}
	}
	p.logger.Debug("Journaled transaction",
		"tx", otx.GetTransactionID(),
		"kind", kind.String(),
		"entries", len(entries),
	)
	return entries, nil
}

// build runs the builder of kind. Kinds without a builder are reported as
// unsupported transaction types.
func (b *journalBuilder) build(kind MsgKind, msgType string) ([]caaj.Journal, error) {
	var (
		entries []caaj.Journal
		err     error
	)
	switch kind {
	case MsgKindSwap:
		entries, err = b.buildSwap()
	case MsgKindTransfer:
		entries, err = b.buildTransfer()
	case MsgKindJoinPool:
		entries, err = b.buildJoinPool()
	case MsgKindExitPool:
		entries, err = b.buildExitPool()
	case MsgKindLockTokens:
		entries, err = b.buildLock()
	case MsgKindDelegate:
		entries, err = b.buildDelegate()
	case MsgKindUpdateClient:
		entries, err = b.buildIBCReceive()
	default:
		return nil, &UnsupportedTransactionTypeError{
			TxID:    b.txID,
			MsgType: MsgTypeName(msgType),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("journal %s tx %s: %w", kind, b.txID, err)
	}
	return entries, nil
}
