package processor

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fystack/caaj-indexer/internal/plugin"
	"github.com/fystack/caaj-indexer/internal/plugin/osmosis"
	"github.com/fystack/caaj-indexer/pkg/caaj"
	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
	"github.com/fystack/caaj-indexer/pkg/infra"
	"github.com/fystack/caaj-indexer/pkg/kvstore"
	"github.com/fystack/caaj-indexer/pkg/store/journalstore"
	"github.com/fystack/caaj-indexer/pkg/tokentable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const address = "osmo14ls9rcxxd5gqwshj85dae74tcp3umypp786h3m"

func fixture(t *testing.T, names ...string) []plugin.Transaction {
	t.Helper()
	var txs []plugin.Transaction
	for _, name := range names {
		loaded, err := chain.LoadFile(filepath.Join("..", "plugin", "osmosis", "testdata", name+".json"))
		require.NoError(t, err)
		for _, tx := range loaded {
			txs = append(txs, tx)
		}
	}
	return txs
}

func testTable() *tokentable.Table {
	return tokentable.New([]tokentable.Row{
		{SymbolUUID: "c0c8e177-53c3-c408-d8bd-067a2ef41ea7", Symbol: "osmo", Chain: "osmosis"},
		{SymbolUUID: "3a2570c5-15c4-2860-52a8-bff14f27a236", Symbol: "juno", Chain: "osmosis",
			OriginalID: "ibc/46B44899322F3CD854D2D46DEEF881958467CDD4B3B10086DA49296BBED94BED"},
	})
}

func newRegistry() *plugin.Registry {
	return plugin.NewRegistry(osmosis.New())
}

func TestRun_SortsAndSkips(t *testing.T) {
	p := New(newRegistry(), testTable(), WithConcurrency(2))

	res, err := p.Run(context.Background(), address, fixture(t, "ibc_transfer", "swap", "cosmos_transfer"))
	require.NoError(t, err)

	assert.Equal(t, Stats{Journaled: 2, Skipped: 1}, res.Stats)
	require.Len(t, res.Entries, 4)

	// swap (2022-01-21) sorts before the IBC transfer (2022-02-08)
	assert.Equal(t, caaj.TypeLose, res.Entries[0].Type)
	assert.Equal(t, caaj.TypeGet, res.Entries[1].Type)
	assert.Equal(t, caaj.TypeSend, res.Entries[2].Type)
	assert.Equal(t, caaj.CounterpartyFee, res.Entries[3].CaajTo)

	require.NotNil(t, res.Entries[1].TokenSymbol)
	assert.Equal(t, "juno", *res.Entries[1].TokenSymbol)
}

func TestRun_Empty(t *testing.T) {
	res, err := New(newRegistry(), testTable()).Run(context.Background(), address, nil)
	require.NoError(t, err)
	assert.NotNil(t, res.Entries)
	assert.Empty(t, res.Entries)
}

func TestRun_FirstErrorAborts(t *testing.T) {
	txs := fixture(t, "swap", "lock_tokens")
	bad := txs[0].(*chain.Transaction).GetTransaction()
	payload := *bad
	payload.Data.TxHash = "BAD"
	payload.Data.Tx.Body.Messages = []chain.Message{{
		Type: "/cosmos.gov.v1beta1.MsgVote",
		Raw:  json.RawMessage(`{"@type":"/cosmos.gov.v1beta1.MsgVote"}`),
	}}
	txs = append(txs, chain.NewTransaction(payload))

	emitter := &recordingEmitter{}
	_, err := New(newRegistry(), testTable(), WithEmitter(emitter)).Run(context.Background(), address, txs)
	require.Error(t, err)
	assert.ErrorIs(t, err, osmosis.ErrUnsupportedTransactionType)
	assert.Contains(t, err.Error(), "osmosis plugin")
	assert.Contains(t, emitter.errorIDs(), "BAD")
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(newRegistry(), testTable()).Run(ctx, address, fixture(t, "swap"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_StoreCachesJournals(t *testing.T) {
	kv, err := kvstore.NewBadgerStore(t.TempDir(), "caaj", infra.JSON)
	require.NoError(t, err)
	store := journalstore.NewJournalStore(kv)
	defer store.Close()

	p := New(newRegistry(), testTable(), WithStore(store))
	txs := fixture(t, "swap", "ibc_received_effect0")

	first, err := p.Run(context.Background(), address, txs)
	require.NoError(t, err)
	assert.Equal(t, Stats{Journaled: 2}, first.Stats)

	second, err := p.Run(context.Background(), address, txs)
	require.NoError(t, err)
	assert.Equal(t, Stats{Cached: 2}, second.Stats)
	assert.Equal(t, first.Entries, second.Entries)

	ids, err := store.ListTransactionIDs(address)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestRun_EmitsJournals(t *testing.T) {
	emitter := &recordingEmitter{}
	p := New(newRegistry(), testTable(), WithEmitter(emitter))

	_, err := p.Run(context.Background(), address, fixture(t, "swap", "delegate", "cosmos_transfer"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"97A5C4A33FA36397A342D34D576AC07BA3F5CB5B7274E2BAF7092470A681FDEB",
		"04668DE27064363B86A1925F71B453C24B08862B5F5704399B6E478616874FED",
	}, emitter.journalIDs())
	assert.Equal(t, []string{osmosis.Chain}, emitter.chainNames())
	assert.Empty(t, emitter.errorIDs())
}

type recordingEmitter struct {
	mu       sync.Mutex
	journals []string
	chains   map[string]bool
	errs     []string
}

func (e *recordingEmitter) EmitJournal(_ context.Context, chainName, _, txID string, _ []caaj.Journal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.journals = append(e.journals, txID)
	if e.chains == nil {
		e.chains = make(map[string]bool)
	}
	e.chains[chainName] = true
	return nil
}

func (e *recordingEmitter) EmitError(_ context.Context, _, _, txID string, _ error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs = append(e.errs, txID)
	return nil
}

func (e *recordingEmitter) Close() {}

func (e *recordingEmitter) journalIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.journals...)
}

func (e *recordingEmitter) chainNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, 0, len(e.chains))
	for name := range e.chains {
		names = append(names, name)
	}
	return names
}

func (e *recordingEmitter) errorIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.errs...)
}
