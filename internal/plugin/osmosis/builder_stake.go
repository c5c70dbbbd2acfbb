package osmosis

import "github.com/fystack/caaj-indexer/pkg/caaj"

// buildLock covers MsgLockTokens and MsgSend: every transfer becomes a
// staking deposit with its own trade id.
func (b *journalBuilder) buildLock() ([]caaj.Journal, error) {
	var entries []caaj.Journal
	for _, attributes := range ListEvents(b.tx.Logs(), eventTransfer) {
		transfer := decodeTransfer(attributes)
		if err := transfer.require(1); err != nil {
			return nil, err
		}
		deposit, err := b.coinLeg(caaj.TypeDeposit, transfer.Amounts[0], transfer.Senders[0], transfer.Recipients[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, b.entry(caaj.ApplicationStaking, b.newTradeID(), deposit))
	}
	return entries, nil
}

// buildDelegate turns each delegate event into a deposit from the address
// to the validator.
func (b *journalBuilder) buildDelegate() ([]caaj.Journal, error) {
	var entries []caaj.Journal
	for _, attributes := range ListEvents(b.tx.Logs(), eventDelegate) {
		delegation, err := decodeDelegate(attributes)
		if err != nil {
			return nil, err
		}
		deposit, err := b.coinLeg(caaj.TypeDeposit, delegation.Amount, b.address, delegation.Validator)
		if err != nil {
			return nil, err
		}
		entries = append(entries, b.entry(caaj.ApplicationStaking, b.newTradeID(), deposit))
	}
	return entries, nil
}
