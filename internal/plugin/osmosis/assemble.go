package osmosis

import (
	"github.com/fystack/caaj-indexer/internal/plugin"
	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/shopspring/decimal"
)

// journalBuilder holds everything the builders of one GetCaajs call share.
type journalBuilder struct {
	address  string
	tx       Transaction
	resolver Resolver
	ids      IDGenerator

	executedAt string
	txID       string
}

func newJournalBuilder(address string, tx Transaction, table plugin.TokenTable, ids IDGenerator) *journalBuilder {
	return &journalBuilder{
		address:    address,
		tx:         tx,
		resolver:   NewResolver(Chain, table),
		ids:        ids,
		executedAt: tx.GetTimestamp(),
		txID:       tx.GetTransactionID(),
	}
}

func (b *journalBuilder) newTradeID() *string {
	id := b.ids.NewID()
	return &id
}

type leg struct {
	typ    caaj.Type
	amount decimal.Decimal
	token  TokenIdentity
	from   string
	to     string
}

func (b *journalBuilder) entry(app caaj.Application, tradeID *string, l leg) caaj.Journal {
	return caaj.Journal{
		ExecutedAt:      b.executedAt,
		Chain:           Chain,
		Platform:        Platform,
		Application:     app,
		TransactionID:   b.txID,
		TradeUUID:       tradeID,
		Type:            l.typ,
		Amount:          l.amount.String(),
		TokenSymbol:     l.token.Symbol,
		TokenOriginalID: l.token.OriginalID,
		SymbolUUID:      l.token.SymbolUUID,
		CaajFrom:        l.from,
		CaajTo:          l.to,
		Comment:         "",
	}
}

// coinLeg parses a compound coin string into a leg.
func (b *journalBuilder) coinLeg(typ caaj.Type, raw, from, to string) (leg, error) {
	c, err := parseCoin(raw)
	if err != nil {
		return leg{}, err
	}
	return b.leg(typ, c, from, to), nil
}

func (b *journalBuilder) leg(typ caaj.Type, c coin, from, to string) leg {
	return leg{
		typ:    typ,
		amount: c.scaled(),
		token:  b.resolver.Resolve(c.tokenID()),
		from:   from,
		to:     to,
	}
}
