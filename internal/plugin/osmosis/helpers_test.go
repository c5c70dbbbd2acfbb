package osmosis

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddress = "osmo14ls9rcxxd5gqwshj85dae74tcp3umypp786h3m"
	poolAddress = "osmo1h7yfu7x4qsv2urnkl4kzydgxegdfyjdry5ee4xzj98jwz0uh07rqdkmprr"
	gammModule  = "osmo1c9y7crgg6y9pfkq0y8mqzknqz84c3etr0kpcvj"

	junoDenom = "ibc/46B44899322F3CD854D2D46DEEF881958467CDD4B3B10086DA49296BBED94BED"
	atomDenom = "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"

	testSymbolUUID = "3a2570c5-15c4-2860-52a8-bff14f27a236"
)

type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("trade-%d", s.n)
}

type fakeTokenTable struct{}

func (fakeTokenTable) GetSymbol(chainName string, originalID *string) *string {
	if chainName != Chain {
		return nil
	}
	var symbol string
	switch {
	case originalID == nil:
		symbol = "osmo"
	case *originalID == junoDenom:
		symbol = "juno"
	case *originalID == atomDenom:
		symbol = "atom"
	default:
		return nil
	}
	return &symbol
}

func (fakeTokenTable) GetSymbolUUID(string, *string) *string {
	id := testSymbolUUID
	return &id
}

func loadTx(t *testing.T, name string) *chain.Transaction {
	t.Helper()
	txs, err := chain.LoadFile(filepath.Join("testdata", name+".json"))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	return txs[0]
}

// withPayload returns a copy of tx with mutate applied to its payload.
func withPayload(tx *chain.Transaction, mutate func(p *chain.TxPayload)) *chain.Transaction {
	p := *tx.GetTransaction()
	mutate(&p)
	return chain.NewTransaction(p)
}

func newTestPlugin() *Plugin {
	return New(WithIDGenerator(&sequenceIDs{}))
}

func assertValue(t *testing.T, want string, got *string) {
	t.Helper()
	if assert.NotNil(t, got) {
		assert.Equal(t, want, *got)
	}
}
