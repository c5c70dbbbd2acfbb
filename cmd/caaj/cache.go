package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/logger"
	"github.com/fystack/caaj-indexer/pkg/kvstore"
	"github.com/fystack/caaj-indexer/pkg/store/journalstore"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or prune the journal cache",
	}
	cmd.PersistentFlags().String("address", "", "journaled address")
	_ = cmd.MarkPersistentFlagRequired("address")

	list := &cobra.Command{
		Use:   "list",
		Short: "List cached transaction ids of an address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			address, _ := cmd.Flags().GetString("address")
			withEntries, _ := cmd.Flags().GetBool("entries")
			store, err := openJournalStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			return listCached(os.Stdout, store, address, withEntries)
		},
	}
	list.Flags().Bool("entries", false, "print the cached entry count of each transaction")

	del := &cobra.Command{
		Use:   "delete",
		Short: "Drop cached journals so the transactions are journaled again",
		RunE: func(cmd *cobra.Command, _ []string) error {
			address, _ := cmd.Flags().GetString("address")
			txIDs, _ := cmd.Flags().GetStringSlice("tx")
			all, _ := cmd.Flags().GetBool("all")
			store, err := openJournalStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()
			n, err := deleteCached(store, address, txIDs, all)
			if err != nil {
				return err
			}
			logger.Info("Cached journals deleted", "address", address, "count", n)
			return nil
		},
	}
	del.Flags().StringSlice("tx", nil, "transaction ids to drop")
	del.Flags().Bool("all", false, "drop every cached transaction of the address")

	cmd.AddCommand(list, del)
	return cmd
}

func openJournalStore(cmd *cobra.Command) (journalstore.Store, error) {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return nil, err
	}
	return newJournalStore(cfg.KVStore)
}

func newJournalStore(cfg config.KVStoreCfg) (journalstore.Store, error) {
	if cfg.Badger.Directory == "" {
		return nil, errors.New("kvstore: badger.directory is required")
	}
	kv, err := kvstore.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return journalstore.NewJournalStore(kv), nil
}

// listCached prints one transaction id per line, sorted. withEntries appends
// the cached entry count as a second tab separated column.
func listCached(w io.Writer, store journalstore.Store, address string, withEntries bool) error {
	ids, err := store.ListTransactionIDs(address)
	if err != nil {
		return err
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !withEntries {
			if _, err := fmt.Fprintln(w, id); err != nil {
				return err
			}
			continue
		}
		entries, _, err := store.GetJournal(address, id)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", id, len(entries)); err != nil {
			return err
		}
	}
	return nil
}

// deleteCached drops the given transactions, or all of them, and reports
// how many keys were removed.
func deleteCached(store journalstore.Store, address string, txIDs []string, all bool) (int, error) {
	if all {
		ids, err := store.ListTransactionIDs(address)
		if err != nil {
			return 0, err
		}
		txIDs = ids
	}
	txIDs = lo.Uniq(lo.Compact(txIDs))
	if len(txIDs) == 0 {
		return 0, errors.New("nothing to delete: pass --tx or --all")
	}
	for i, id := range txIDs {
		if err := store.DeleteJournal(address, id); err != nil {
			return i, fmt.Errorf("delete journal %s: %w", id, err)
		}
	}
	return len(txIDs), nil
}
