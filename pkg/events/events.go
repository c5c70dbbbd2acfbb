package events

import "github.com/fystack/caaj-indexer/pkg/caaj"

// JournalEvent is the message published for one journaled transaction.
type JournalEvent struct {
	Chain         string         `json:"chain"`
	Address       string         `json:"address"`
	TransactionID string         `json:"transaction_id"`
	ExecutedAt    string         `json:"executed_at"`
	Entries       []caaj.Journal `json:"entries"`
	Timestamp     int64          `json:"timestamp"`
}

// ErrorEvent reports a transaction that could not be journaled.
type ErrorEvent struct {
	Chain         string `json:"chain"`
	Address       string `json:"address"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
	Timestamp     int64  `json:"timestamp"`
}
