package osmosis

import (
	"fmt"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
)

// buildTransfer reads an outgoing IBC MsgTransfer from the message body.
func (b *journalBuilder) buildTransfer() ([]caaj.Journal, error) {
	var msg chain.TransferMessage
	if err := b.tx.FirstMessage(&msg); err != nil {
		return nil, err
	}

	amount, err := baseUnits(msg.Token.Amount)
	if err != nil {
		return nil, fmt.Errorf("MsgTransfer token amount: %w", err)
	}

	send := leg{
		typ:    caaj.TypeSend,
		amount: amount,
		token:  b.resolver.ResolveDenom(msg.Token.Denom),
		from:   msg.Sender,
		to:     msg.Receiver,
	}
	return []caaj.Journal{b.entry(caaj.Application(Chain), nil, send)}, nil
}
