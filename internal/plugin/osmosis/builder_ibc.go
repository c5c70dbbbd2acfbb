package osmosis

import (
	"fmt"

	"github.com/fystack/caaj-indexer/pkg/caaj"
)

const packetSuccess = "true"

// buildIBCReceive journals relayed packets that credited the address. Only
// logs with a successful fungible_token_packet addressed to us count.
func (b *journalBuilder) buildIBCReceive() ([]caaj.Journal, error) {
	var entries []caaj.Journal
	for i, log := range b.tx.Logs() {
		packets := eventsOf(log, eventFungibleTokenPacket)
		if len(packets) == 0 {
			continue
		}

		packet, err := decodePacket(packets[0])
		if err != nil {
			return nil, err
		}
		if packet.Success != packetSuccess || packet.Receiver != b.address {
			continue
		}

		transfers := eventsOf(log, eventTransfer)
		if len(transfers) == 0 {
			return nil, fmt.Errorf("%w: transfer event next to fungible_token_packet in log %d", ErrMissingEvent, i)
		}
		transfer := decodeTransfer(transfers[0])
		if err := transfer.require(1); err != nil {
			return nil, err
		}

		receive, err := b.coinLeg(caaj.TypeReceive, transfer.Amounts[0], transfer.Senders[0], transfer.Recipients[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, b.entry(caaj.Application(Chain), b.newTradeID(), receive))
	}
	return entries, nil
}
