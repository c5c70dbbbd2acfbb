package osmosis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents_JoinPoolTransfer(t *testing.T) {
	tx := loadTx(t, "join_pool")

	events := ListEvents(tx.Logs(), eventTransfer)
	require.Len(t, events, 1)
	assert.Equal(t, []Attribute{
		{Key: "recipient", Value: poolAddress},
		{Key: "sender", Value: testAddress},
		{Key: "amount", Value: "5146" + junoDenom + ",9969uosmo"},
		{Key: "recipient", Value: testAddress},
		{Key: "sender", Value: gammModule},
		{Key: "amount", Value: "4323192512586978gamm/pool/497"},
	}, events[0])
}

func TestListEvents_AcrossLogs(t *testing.T) {
	tx := loadTx(t, "ibc_received_effect1")

	assert.Len(t, ListEvents(tx.Logs(), "message"), 2)
	assert.Len(t, ListEvents(tx.Logs(), eventFungibleTokenPacket), 1)
	assert.Empty(t, ListEvents(tx.Logs(), "burn"))
}

func TestFilterAttributes(t *testing.T) {
	attrs := []Attribute{
		{Key: "sender", Value: "a"},
		{Key: "amount", Value: "1uosmo"},
		{Key: "sender", Value: "b"},
	}

	assert.Equal(t, []Attribute{{Key: "sender", Value: "a"}, {Key: "sender", Value: "b"}},
		FilterAttributes(attrs, "sender"))
	assert.Empty(t, FilterAttributes(attrs, "recipient"))
}

func TestDecodeTransfer_Require(t *testing.T) {
	ev := decodeTransfer([]Attribute{
		{Key: "recipient", Value: "r"},
		{Key: "sender", Value: "s"},
		{Key: "amount", Value: "1uosmo"},
	})
	assert.Equal(t, []string{"s"}, ev.Senders)
	assert.NoError(t, ev.require(1))

	err := ev.require(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAttribute)
	assert.Contains(t, err.Error(), `"sender"`)
}

func TestDecodeDelegate(t *testing.T) {
	ev, err := decodeDelegate([]Attribute{
		{Key: "validator", Value: "osmovaloper1x"},
		{Key: "amount", Value: "100000"},
	})
	require.NoError(t, err)
	assert.Equal(t, delegateEvent{Validator: "osmovaloper1x", Amount: "100000"}, ev)

	_, err = decodeDelegate([]Attribute{{Key: "validator", Value: "osmovaloper1x"}})
	assert.ErrorIs(t, err, ErrMissingAttribute)
}

func TestDecodePacket(t *testing.T) {
	_, err := decodePacket([]Attribute{{Key: "receiver", Value: testAddress}})
	assert.ErrorIs(t, err, ErrMissingAttribute)

	ev, err := decodePacket([]Attribute{
		{Key: "receiver", Value: testAddress},
		{Key: "success", Value: "true"},
	})
	require.NoError(t, err)
	assert.Equal(t, "true", ev.Success)
	assert.Equal(t, testAddress, ev.Receiver)
}
