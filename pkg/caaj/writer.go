package caaj

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// SortByExecutedAt orders entries by timestamp; entries of the same
// transaction keep their relative order.
func SortByExecutedAt(entries []Journal) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ExecutedAt < entries[j].ExecutedAt
	})
}

func WriteCSV(w io.Writer, entries []Journal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, entry := range entries {
		if err := cw.Write(entry.Record()); err != nil {
			return fmt.Errorf("write csv row for tx %s: %w", entry.TransactionID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, entries []Journal) error {
	if entries == nil {
		entries = []Journal{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
