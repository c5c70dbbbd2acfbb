package journalstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/fystack/caaj-indexer/pkg/common/constant"
	"github.com/fystack/caaj-indexer/pkg/infra"
)

// Store caches the journal of already processed transactions, keyed by the
// journaled address and the transaction id.
type Store interface {
	GetJournal(address, txID string) ([]caaj.Journal, bool, error)
	SaveJournal(address, txID string, entries []caaj.Journal) error
	ListTransactionIDs(address string) ([]string, error)
	DeleteJournal(address, txID string) error
	Close() error
}

type journalStore struct {
	store infra.KVStore
}

func NewJournalStore(store infra.KVStore) Store {
	return &journalStore{store: store}
}

func addressPrefix(address string) string {
	return fmt.Sprintf("%s%s/", constant.JournalKeyPrefix, address)
}

func journalKey(address, txID string) string {
	return addressPrefix(address) + txID
}

func validate(address, txID string) error {
	if address == "" {
		return errors.New("address is required")
	}
	if txID == "" {
		return errors.New("transaction id is required")
	}
	return nil
}

func (s *journalStore) GetJournal(address, txID string) ([]caaj.Journal, bool, error) {
	if err := validate(address, txID); err != nil {
		return nil, false, err
	}
	var entries []caaj.Journal
	ok, err := s.store.GetAny(journalKey(address, txID), &entries)
	if err != nil {
		return nil, false, fmt.Errorf("get journal %s: %w", txID, err)
	}
	if !ok {
		return nil, false, nil
	}
	if entries == nil {
		entries = []caaj.Journal{}
	}
	return entries, true, nil
}

// SaveJournal stores entries as-is; an empty list is remembered too, so
// failed or foreign transactions are not journaled twice.
func (s *journalStore) SaveJournal(address, txID string, entries []caaj.Journal) error {
	if err := validate(address, txID); err != nil {
		return err
	}
	if entries == nil {
		entries = []caaj.Journal{}
	}
	return s.store.SetAny(journalKey(address, txID), entries)
}

func (s *journalStore) ListTransactionIDs(address string) ([]string, error) {
	if address == "" {
		return nil, errors.New("address is required")
	}
	prefix := addressPrefix(address)
	kvs, err := s.store.List(prefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		ids = append(ids, strings.TrimPrefix(kv.Key, prefix))
	}
	return ids, nil
}

func (s *journalStore) DeleteJournal(address, txID string) error {
	if err := validate(address, txID); err != nil {
		return err
	}
	return s.store.Delete(journalKey(address, txID))
}

func (s *journalStore) Close() error {
	return s.store.Close()
}
