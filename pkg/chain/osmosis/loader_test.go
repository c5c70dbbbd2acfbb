package osmosis

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Array(t *testing.T) {
	raw := `[{"data":{"txhash":"A"}},{"data":{"txhash":"B"}}]`
	txs, err := Decode(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "A", txs[0].GetTransactionID())
	assert.Equal(t, "B", txs[1].GetTransactionID())
}

func TestDecode_JSONLines(t *testing.T) {
	raw := "{\"data\":{\"txhash\":\"A\"}}\n\n{\"data\":{\"txhash\":\"B\"}}\n"
	txs, err := Decode(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "B", txs[1].GetTransactionID())
}

func TestDecode_Empty(t *testing.T) {
	txs, err := Decode(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestDecode_BadLine(t *testing.T) {
	_, err := Decode(strings.NewReader("{\"data\":{\"txhash\":\"A\"}}\n{oops\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txs.json")
	require.NoError(t, os.WriteFile(path, []byte(transferTx), 0o600))

	txs, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "AD666E0F", txs[0].GetTransactionID())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
