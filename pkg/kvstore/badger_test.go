package kvstore

import (
	"testing"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/enum"
	"github.com/fystack/caaj-indexer/pkg/infra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, prefix string, codec infra.Codec) *BadgerStore {
	t.Helper()
	store, err := NewBadgerStore(t.TempDir(), prefix, codec)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStore_SetGet(t *testing.T) {
	store := newTestStore(t, "caaj", infra.JSON)

	require.NoError(t, store.Set("a", "1"))
	v, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	_, err = store.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.ErrorIs(t, store.Set("", "x"), ErrKeyEmpty)
	assert.Equal(t, "badger", store.GetName())
}

type record struct {
	ID     string
	Amount string
}

func TestBadgerStore_AnyWithCodecs(t *testing.T) {
	for name, codec := range map[string]infra.Codec{"json": infra.JSON, "gob": infra.Gob} {
		t.Run(name, func(t *testing.T) {
			store := newTestStore(t, "", codec)

			in := []record{{ID: "tx1", Amount: "0.01"}, {ID: "tx1", Amount: "0.005147"}}
			require.NoError(t, store.SetAny("journal_tx1", in))

			var out []record
			found, err := store.GetAny("journal_tx1", &out)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, in, out)

			found, err = store.GetAny("journal_tx2", &out)
			require.NoError(t, err)
			assert.False(t, found)

			assert.Error(t, store.SetAny("k", nil))
		})
	}
}

func TestBadgerStore_ListAndDelete(t *testing.T) {
	store := newTestStore(t, "caaj", infra.JSON)

	require.NoError(t, store.Set("journal_a", "1"))
	require.NoError(t, store.Set("journal_b", "2"))
	require.NoError(t, store.Set("other", "3"))

	pairs, err := store.List("journal_")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "journal_a", pairs[0].Key)
	assert.Equal(t, []byte("2"), pairs[1].Value)

	require.NoError(t, store.Delete("journal_a"))
	pairs, err = store.List("journal_")
	require.NoError(t, err)
	assert.Len(t, pairs, 1)

	_, err = store.List("")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	store, err := NewFromConfig(config.KVStoreCfg{
		Enabled: true,
		Type:    enum.KVStoreTypeBadger,
		Codec:   "gob",
		Badger:  config.BadgerKVCfg{Directory: t.TempDir(), Prefix: "caaj"},
	})
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, "badger", store.GetName())

	_, err = NewFromConfig(config.KVStoreCfg{Codec: "xml"})
	assert.Error(t, err)

	_, err = NewFromConfig(config.KVStoreCfg{Type: "consul", Badger: config.BadgerKVCfg{Directory: t.TempDir()}})
	assert.Error(t, err)
}
