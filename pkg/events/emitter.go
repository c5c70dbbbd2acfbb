package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/fystack/caaj-indexer/pkg/infra"
)

const (
	JournalTopic = "journal"
	ErrorTopic   = "error"
)

type Emitter interface {
	EmitJournal(ctx context.Context, chain, address, txID string, entries []caaj.Journal) error
	EmitError(ctx context.Context, chain, address, txID string, err error) error
	Close()
}

type emitter struct {
	queue         infra.MessageQueue
	subjectPrefix string
	now           func() time.Time
}

func NewEmitter(queue infra.MessageQueue, subjectPrefix string) Emitter {
	return &emitter{
		queue:         queue,
		subjectPrefix: subjectPrefix,
		now:           time.Now,
	}
}

// Subject is <prefix>.<topic>.<chain>, e.g. "caaj.journal.osmosis".
func Subject(prefix, topic, chain string) string {
	return fmt.Sprintf("%s.%s.%s", prefix, topic, chain)
}

// EmitJournal publishes the entries of one transaction. The message id is
// address/tx, so a re-run inside the stream's duplicate window is dropped.
func (e *emitter) EmitJournal(ctx context.Context, chain, address, txID string, entries []caaj.Journal) error {
	if entries == nil {
		entries = []caaj.Journal{}
	}
	ev := JournalEvent{
		Chain:         chain,
		Address:       address,
		TransactionID: txID,
		Entries:       entries,
		Timestamp:     e.now().UTC().Unix(),
	}
	if len(entries) > 0 {
		ev.ExecutedAt = entries[0].ExecutedAt
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return e.queue.Enqueue(ctx, Subject(e.subjectPrefix, JournalTopic, chain), data, &infra.EnqueueOptions{
		IdempotententKey: address + "/" + txID,
	})
}

func (e *emitter) EmitError(ctx context.Context, chain, address, txID string, err error) error {
	ev := ErrorEvent{
		Chain:         chain,
		Address:       address,
		TransactionID: txID,
		Timestamp:     e.now().UTC().Unix(),
	}
	if err != nil {
		ev.Message = err.Error()
	}
	data, mErr := json.Marshal(ev)
	if mErr != nil {
		return mErr
	}
	return e.queue.Enqueue(ctx, Subject(e.subjectPrefix, ErrorTopic, chain), data, nil)
}

func (e *emitter) Close() {
	if e.queue != nil {
		e.queue.Close()
	}
}
