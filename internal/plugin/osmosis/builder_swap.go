package osmosis

import "github.com/fystack/caaj-indexer/pkg/caaj"

// buildSwap emits a lose/get pair per transfer event. The first amount is
// what the address gave up, the second what it received back from the pool.
func (b *journalBuilder) buildSwap() ([]caaj.Journal, error) {
	var entries []caaj.Journal
	for _, attributes := range ListEvents(b.tx.Logs(), eventTransfer) {
		transfer := decodeTransfer(attributes)
		if err := transfer.require(1); err != nil {
			return nil, err
		}
		if err := requireValues(eventTransfer, attrAmount, transfer.Amounts, 2); err != nil {
			return nil, err
		}

		sender := transfer.Senders[0]
		recipient := transfer.Recipients[0]

		lose, err := b.coinLeg(caaj.TypeLose, transfer.Amounts[0], sender, recipient)
		if err != nil {
			return nil, err
		}
		get, err := b.coinLeg(caaj.TypeGet, transfer.Amounts[1], recipient, sender)
		if err != nil {
			return nil, err
		}

		tradeID := b.newTradeID()
		entries = append(entries,
			b.entry(caaj.ApplicationSwap, tradeID, lose),
			b.entry(caaj.ApplicationSwap, tradeID, get),
		)
	}
	return entries, nil
}
