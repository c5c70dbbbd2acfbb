// Package tokentable maps (chain, token original id) pairs to CAAJ symbols.
package tokentable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrMissingColumn = errors.New("token table: missing column")

// Row is one line of the token original id table. An empty OriginalID is the
// chain's native asset.
type Row struct {
	SymbolUUID string
	Symbol     string
	Chain      string
	OriginalID string
}

type key struct {
	chain      string
	originalID string
}

// Table is read-only after Parse and safe for concurrent lookups.
type Table struct {
	rows map[key]Row
}

func New(rows []Row) *Table {
	t := &Table{rows: make(map[key]Row, len(rows))}
	for _, r := range rows {
		k := key{chain: r.Chain, originalID: r.OriginalID}
		// first row wins, later duplicates are ignored
		if _, ok := t.rows[k]; !ok {
			t.rows[k] = r
		}
	}
	return t
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) lookup(chain string, originalID *string) (Row, bool) {
	id := ""
	if originalID != nil {
		id = *originalID
	}
	r, ok := t.rows[key{chain: chain, originalID: id}]
	return r, ok
}

// GetSymbol returns nil when the pair is unknown.
func (t *Table) GetSymbol(chain string, originalID *string) *string {
	r, ok := t.lookup(chain, originalID)
	if !ok || r.Symbol == "" {
		return nil
	}
	return &r.Symbol
}

func (t *Table) GetSymbolUUID(chain string, originalID *string) *string {
	r, ok := t.lookup(chain, originalID)
	if !ok || r.SymbolUUID == "" {
		return nil
	}
	return &r.SymbolUUID
}

// Rows returns the table content in no particular order.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	return rows
}

var columnAliases = map[string]string{
	"uuid":        "symbol_uuid",
	"symbol_uuid": "symbol_uuid",
	"symbol":      "symbol",
	"chain":       "chain",
	"original_id": "original_id",
}

// Parse reads a CSV with a header row. Column order is free; "uuid" is
// accepted as an alias of "symbol_uuid".
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("token table: empty input")
		}
		return nil, fmt.Errorf("token table header: %w", err)
	}

	index := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if canonical, ok := columnAliases[name]; ok {
			index[canonical] = i
		}
	}
	for _, col := range []string{"symbol_uuid", "symbol", "chain", "original_id"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}

	field := func(record []string, col string) string {
		i := index[col]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("token table line %d: %w", line, err)
		}
		row := Row{
			SymbolUUID: field(record, "symbol_uuid"),
			Symbol:     field(record, "symbol"),
			Chain:      field(record, "chain"),
			OriginalID: field(record, "original_id"),
		}
		if row.Chain == "" {
			continue
		}
		rows = append(rows, row)
	}
	return New(rows), nil
}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
