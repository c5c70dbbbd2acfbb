// Package caaj defines the CAAJ journal record shared by every chain plugin
// and the writers that serialize it for bookkeeping tools.
package caaj

// Type is the journal entry direction vocabulary.
type Type string

const (
	TypeGet       Type = "get"
	TypeLose      Type = "lose"
	TypeSend      Type = "send"
	TypeReceive   Type = "receive"
	TypeDeposit   Type = "deposit"
	TypeWithdraw  Type = "withdraw"
	TypeGetBonds  Type = "get_bonds"
	TypeLoseBonds Type = "lose_bonds"
)

// Application is the operation family an entry belongs to. Plain transfers
// and fees use the chain name itself.
type Application string

const (
	ApplicationSwap      Application = "swap"
	ApplicationLiquidity Application = "liquidity"
	ApplicationStaking   Application = "staking"
)

// CounterpartyFee is the caaj_to of fee entries.
const CounterpartyFee = "fee"

// Journal is one CAAJ entry. Nullable columns are pointers so that an
// unresolved symbol and an empty symbol stay distinguishable.
type Journal struct {
	ExecutedAt      string      `json:"executed_at"`
	Chain           string      `json:"chain"`
	Platform        string      `json:"platform"`
	Application     Application `json:"application"`
	TransactionID   string      `json:"transaction_id"`
	TradeUUID       *string     `json:"trade_uuid"`
	Type            Type        `json:"type"`
	Amount          string      `json:"amount"`
	TokenSymbol     *string     `json:"token_symbol"`
	TokenOriginalID *string     `json:"token_original_id"`
	SymbolUUID      *string     `json:"symbol_uuid"`
	CaajFrom        string      `json:"caaj_from"`
	CaajTo          string      `json:"caaj_to"`
	Comment         string      `json:"comment"`
}

// Columns is the header order used by the CSV writer.
var Columns = []string{
	"executed_at",
	"chain",
	"platform",
	"application",
	"transaction_id",
	"trade_uuid",
	"type",
	"amount",
	"token_symbol",
	"token_original_id",
	"symbol_uuid",
	"caaj_from",
	"caaj_to",
	"comment",
}

// Record renders the entry as a CSV row in Columns order; nil becomes "".
func (j Journal) Record() []string {
	return []string{
		j.ExecutedAt,
		j.Chain,
		j.Platform,
		string(j.Application),
		j.TransactionID,
		deref(j.TradeUUID),
		string(j.Type),
		j.Amount,
		deref(j.TokenSymbol),
		deref(j.TokenOriginalID),
		deref(j.SymbolUUID),
		j.CaajFrom,
		j.CaajTo,
		j.Comment,
	}
}

// StringPtr returns nil for "" and a pointer to s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
