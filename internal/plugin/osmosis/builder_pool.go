package osmosis

import (
	"fmt"

	"github.com/fystack/caaj-indexer/pkg/caaj"
)

// buildJoinPool: the first transfer moves the pool assets from the address
// to the pool, the second mints the pool shares back to the address.
func (b *journalBuilder) buildJoinPool() ([]caaj.Journal, error) {
	return b.buildPool(caaj.TypeDeposit, caaj.TypeGetBonds)
}

// buildExitPool mirrors buildJoinPool: assets flow out of the pool and the
// shares are burned.
func (b *journalBuilder) buildExitPool() ([]caaj.Journal, error) {
	return b.buildPool(caaj.TypeWithdraw, caaj.TypeLoseBonds)
}

func (b *journalBuilder) buildPool(assetType, shareType caaj.Type) ([]caaj.Journal, error) {
	var entries []caaj.Journal
	for _, attributes := range ListEvents(b.tx.Logs(), eventTransfer) {
		transfer := decodeTransfer(attributes)
		if err := transfer.require(2); err != nil {
			return nil, err
		}

		assets, err := parseCoins(transfer.Amounts[0])
		if err != nil {
			return nil, err
		}
		if len(assets) == 0 {
			return nil, fmt.Errorf("%w: empty pool asset list", ErrMalformedAmount)
		}

		tradeID := b.newTradeID()
		for _, asset := range assets {
			l := b.leg(assetType, asset, transfer.Senders[0], transfer.Recipients[0])
			entries = append(entries, b.entry(caaj.ApplicationLiquidity, tradeID, l))
		}

		shares, err := b.coinLeg(shareType, transfer.Amounts[1], transfer.Senders[1], transfer.Recipients[1])
		if err != nil {
			return nil, err
		}
		entries = append(entries, b.entry(caaj.ApplicationLiquidity, tradeID, shares))
	}
	return entries, nil
}
