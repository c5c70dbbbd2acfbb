package osmosis

import "github.com/fystack/caaj-indexer/internal/plugin"

type TokenIdentity struct {
	OriginalID *string
	Symbol     *string
	SymbolUUID *string
}

// Resolver looks up symbols for token original ids. It performs no I/O and
// no caching of its own.
type Resolver struct {
	chain string
	table plugin.TokenTable
}

func NewResolver(chain string, table plugin.TokenTable) Resolver {
	return Resolver{chain: chain, table: table}
}

func (r Resolver) Resolve(originalID *string) TokenIdentity {
	identity := TokenIdentity{OriginalID: originalID}
	if r.table == nil {
		return identity
	}
	identity.Symbol = r.table.GetSymbol(r.chain, originalID)
	identity.SymbolUUID = r.table.GetSymbolUUID(r.chain, originalID)
	return identity
}

func (r Resolver) ResolveDenom(denom string) TokenIdentity {
	return r.Resolve(CanonicalDenom(denom))
}
