package osmosis

import (
	"fmt"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
	"github.com/shopspring/decimal"
)

const (
	NativeSymbol     = "osmo"
	NativeSymbolUUID = "c0c8e177-53c3-c408-d8bd-067a2ef41ea7"
)

// buildFees journals the fee paid by address. The uosmo coins collapse into
// a single osmo entry; any other fee denom gets its own entry resolved
// through the token table.
func (b *journalBuilder) buildFees() ([]caaj.Journal, error) {
	native, err := b.tx.GetTransactionFee()
	if err != nil {
		return nil, err
	}

	var entries []caaj.Journal
	if !native.IsZero() {
		entries = append(entries, b.buildFee(native))
	}
	for _, fc := range b.tx.FeeCoins() {
		if fc.Denom == chain.NativeDenom {
			continue
		}
		if !isUintString(fc.Amount) {
			return nil, fmt.Errorf("fee of tx %s: %w: %q", b.txID, ErrMalformedAmount, fc.Amount+fc.Denom)
		}
		amount, err := decimal.NewFromString(fc.Amount)
		if err != nil {
			return nil, fmt.Errorf("fee of tx %s: %w: %v", b.txID, ErrMalformedAmount, err)
		}
		if amount.IsZero() {
			continue
		}
		c := coin{raw: fc.Amount + fc.Denom, amount: amount, denom: fc.Denom}
		entries = append(entries, b.entry(caaj.Application(Chain), nil,
			b.leg(caaj.TypeLose, c, b.address, caaj.CounterpartyFee)))
	}
	return entries, nil
}

func (b *journalBuilder) buildFee(fee decimal.Decimal) caaj.Journal {
	symbol, symbolUUID := NativeSymbol, NativeSymbolUUID
	lose := leg{
		typ:    caaj.TypeLose,
		amount: fee.Shift(-standardExponent),
		token: TokenIdentity{
			Symbol:     &symbol,
			SymbolUUID: &symbolUUID,
		},
		from: b.address,
		to:   caaj.CounterpartyFee,
	}
	return b.entry(caaj.Application(Chain), nil, lose)
}
