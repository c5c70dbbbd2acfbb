package osmosis

import (
	"fmt"

	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
	"github.com/samber/lo"
)

type Attribute = chain.EventAttribute

const (
	eventTransfer            = "transfer"
	eventDelegate            = "delegate"
	eventFungibleTokenPacket = "fungible_token_packet"

	attrSender    = "sender"
	attrRecipient = "recipient"
	attrReceiver  = "receiver"
	attrAmount    = "amount"
	attrValidator = "validator"
	attrSuccess   = "success"
)

// ListEvents returns the attribute list of every event of eventType, in log
// order and then event order.
func ListEvents(logs []chain.Log, eventType string) [][]Attribute {
	return lo.FlatMap(logs, func(log chain.Log, _ int) [][]Attribute {
		return eventsOf(log, eventType)
	})
}

func eventsOf(log chain.Log, eventType string) [][]Attribute {
	matched := lo.Filter(log.Events, func(e chain.Event, _ int) bool {
		return e.Type == eventType
	})
	return lo.Map(matched, func(e chain.Event, _ int) []Attribute {
		return e.Attributes
	})
}

// FilterAttributes keeps the attributes whose key matches, in order.
func FilterAttributes(attributes []Attribute, key string) []Attribute {
	return lo.Filter(attributes, func(a Attribute, _ int) bool {
		return a.Key == key
	})
}

func attributeValues(attributes []Attribute, key string) []string {
	return lo.Map(FilterAttributes(attributes, key), func(a Attribute, _ int) string {
		return a.Value
	})
}

// transferEvent is the positional view of a bank "transfer" event. Older
// SDK versions flatten several transfers into one event, so index i of each
// slice describes the i-th transfer.
type transferEvent struct {
	Senders    []string
	Recipients []string
	Amounts    []string
}

func decodeTransfer(attributes []Attribute) transferEvent {
	return transferEvent{
		Senders:    attributeValues(attributes, attrSender),
		Recipients: attributeValues(attributes, attrRecipient),
		Amounts:    attributeValues(attributes, attrAmount),
	}
}

// require checks that the event carries at least n transfers.
func (e transferEvent) require(n int) error {
	if err := requireValues(eventTransfer, attrSender, e.Senders, n); err != nil {
		return err
	}
	if err := requireValues(eventTransfer, attrRecipient, e.Recipients, n); err != nil {
		return err
	}
	return requireValues(eventTransfer, attrAmount, e.Amounts, n)
}

type delegateEvent struct {
	Validator string
	Amount    string
}

func decodeDelegate(attributes []Attribute) (delegateEvent, error) {
	validators := attributeValues(attributes, attrValidator)
	if err := requireValues(eventDelegate, attrValidator, validators, 1); err != nil {
		return delegateEvent{}, err
	}
	amounts := attributeValues(attributes, attrAmount)
	if err := requireValues(eventDelegate, attrAmount, amounts, 1); err != nil {
		return delegateEvent{}, err
	}
	return delegateEvent{Validator: validators[0], Amount: amounts[0]}, nil
}

type packetEvent struct {
	Success  string
	Receiver string
}

func decodePacket(attributes []Attribute) (packetEvent, error) {
	success := attributeValues(attributes, attrSuccess)
	if err := requireValues(eventFungibleTokenPacket, attrSuccess, success, 1); err != nil {
		return packetEvent{}, err
	}
	receivers := attributeValues(attributes, attrReceiver)
	if err := requireValues(eventFungibleTokenPacket, attrReceiver, receivers, 1); err != nil {
		return packetEvent{}, err
	}
	return packetEvent{Success: success[0], Receiver: receivers[0]}, nil
}

func requireValues(event, key string, values []string, n int) error {
	if len(values) < n {
		return fmt.Errorf("%w: %s event needs %d %q attribute(s), got %d",
			ErrMissingAttribute, event, n, key, len(values))
	}
	return nil
}
