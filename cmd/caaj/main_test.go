package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/fystack/caaj-indexer/pkg/common/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEntries(t *testing.T) {
	entries := []caaj.Journal{{TransactionID: "TX1", Type: caaj.TypeLose, Amount: "0.01"}}

	var buf bytes.Buffer
	require.NoError(t, writeEntries(&buf, enum.OutputFormatCSV, entries))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, caaj.Columns, records[0])

	buf.Reset()
	require.NoError(t, writeEntries(&buf, enum.OutputFormatJSON, entries))
	assert.Contains(t, buf.String(), `"transaction_id": "TX1"`)

	assert.Error(t, writeEntries(&buf, "xml", entries))
}

func TestWriteOutput(t *testing.T) {
	entries := []caaj.Journal{{TransactionID: "TX1", Type: caaj.TypeLose, Amount: "0.01"}}
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, writeOutput(path, enum.OutputFormatCSV, entries))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TX1", records[1][4])

	assert.Error(t, writeOutput(path, "xml", entries))
	assert.Error(t, writeOutput(filepath.Join(t.TempDir(), "missing", "out.csv"), enum.OutputFormatCSV, entries))
}

func TestJournalCmd_RequiresFlags(t *testing.T) {
	cmd := newJournalCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
