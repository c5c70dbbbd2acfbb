package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/fystack/caaj-indexer/pkg/infra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	topic string
	data  []byte
	opts  *infra.EnqueueOptions
}

type memoryQueue struct {
	mu     sync.Mutex
	msgs   []published
	closed bool
}

func (q *memoryQueue) Enqueue(_ context.Context, topic string, message []byte, options *infra.EnqueueOptions) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, published{topic: topic, data: message, opts: options})
	return nil
}

func (q *memoryQueue) Dequeue(context.Context, func(string, []byte) error) error {
	return errors.New("not supported")
}

func (q *memoryQueue) Close() { q.closed = true }

func newTestEmitter(q *memoryQueue) *emitter {
	e := NewEmitter(q, "caaj").(*emitter)
	e.now = func() time.Time { return time.Unix(1700000000, 0) }
	return e
}

func TestEmitJournal(t *testing.T) {
	q := &memoryQueue{}
	e := newTestEmitter(q)

	entries := []caaj.Journal{{ExecutedAt: "2022-01-21 02:47:05", TransactionID: "TX1", Type: caaj.TypeLose, Amount: "0.01"}}
	require.NoError(t, e.EmitJournal(context.Background(), "osmosis", "osmo1me", "TX1", entries))

	require.Len(t, q.msgs, 1)
	msg := q.msgs[0]
	assert.Equal(t, "caaj.journal.osmosis", msg.topic)
	require.NotNil(t, msg.opts)
	assert.Equal(t, "osmo1me/TX1", msg.opts.IdempotententKey)

	var ev JournalEvent
	require.NoError(t, json.Unmarshal(msg.data, &ev))
	assert.Equal(t, "TX1", ev.TransactionID)
	assert.Equal(t, "2022-01-21 02:47:05", ev.ExecutedAt)
	assert.Equal(t, int64(1700000000), ev.Timestamp)
	assert.Equal(t, entries, ev.Entries)
}

func TestEmitJournal_EmptyEntries(t *testing.T) {
	q := &memoryQueue{}
	e := newTestEmitter(q)

	require.NoError(t, e.EmitJournal(context.Background(), "osmosis", "osmo1me", "TX2", nil))
	assert.Contains(t, string(q.msgs[0].data), `"entries":[]`)
}

func TestEmitError(t *testing.T) {
	q := &memoryQueue{}
	e := newTestEmitter(q)

	require.NoError(t, e.EmitError(context.Background(), "osmosis", "osmo1me", "TX3", errors.New("boom")))
	require.Len(t, q.msgs, 1)
	assert.Equal(t, "caaj.error.osmosis", q.msgs[0].topic)
	assert.Nil(t, q.msgs[0].opts)

	var ev ErrorEvent
	require.NoError(t, json.Unmarshal(q.msgs[0].data, &ev))
	assert.Equal(t, "boom", ev.Message)

	e.Close()
	assert.True(t, q.closed)
}
