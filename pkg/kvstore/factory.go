package kvstore

import (
	"fmt"

	"github.com/fystack/caaj-indexer/pkg/common/config"
	"github.com/fystack/caaj-indexer/pkg/common/enum"
	"github.com/fystack/caaj-indexer/pkg/infra"
)

// NewFromConfig constructs an infra.KVStore based on kvstore configuration.
func NewFromConfig(cfg config.KVStoreCfg) (infra.KVStore, error) {
	codec, ok := infra.CodecByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("unsupported kvstore codec: %s", cfg.Codec)
	}
	switch cfg.Type {
	case enum.KVStoreTypeBadger, "":
		return NewBadgerStore(cfg.Badger.Directory, cfg.Badger.Prefix, codec)
	default:
		return nil, fmt.Errorf("unsupported kvstore type: %s", cfg.Type)
	}
}
