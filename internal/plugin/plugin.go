// Package plugin defines the contract between chain-specific journal
// plugins and the processor that drives them.
package plugin

import (
	"github.com/fystack/caaj-indexer/pkg/caaj"
	"github.com/shopspring/decimal"
)

// Transaction is the read-only view of a decoded transaction every plugin
// receives. Chain plugins type-assert to richer views of their own.
type Transaction interface {
	GetTransactionID() string
	GetTimestamp() string
	GetTransactionFee() (decimal.Decimal, error)
	GetTransactionDataType() string
}

// TokenTable resolves symbols for (chain, original id) pairs. A nil original
// id denotes the chain's native asset.
type TokenTable interface {
	GetSymbol(chain string, originalID *string) *string
	GetSymbolUUID(chain string, originalID *string) *string
}

type Plugin interface {
	Name() string
	CanHandle(tx Transaction) bool
	GetCaajs(address string, tx Transaction, table TokenTable) ([]caaj.Journal, error)
}
