package osmosis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	NativeDenom = "uosmo"

	// ExecutedAtLayout is the chain-local timestamp layout used in journals.
	ExecutedAtLayout = "2006-01-02 15:04:05"
)

var (
	ErrNoMessages      = errors.New("transaction has no messages")
	ErrMalformedAmount = errors.New("malformed amount")
)

// Transaction wraps a decoded explorer payload and exposes the accessors the
// journal plugins rely on. It is never mutated after construction.
type Transaction struct {
	payload TxPayload
}

func NewTransaction(payload TxPayload) *Transaction {
	return &Transaction{payload: payload}
}

func (t *Transaction) GetTransactionID() string {
	return t.payload.Data.TxHash
}

// GetTimestamp returns the execution time formatted with ExecutedAtLayout.
// Unparseable timestamps are returned verbatim.
func (t *Transaction) GetTimestamp() string {
	raw := t.payload.Data.Timestamp
	if raw == "" {
		raw = t.payload.Header.Timestamp
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return ts.UTC().Format(ExecutedAtLayout)
}

// GetTransactionFee sums the native-denom fee coins, in raw base units. A
// fee amount that is not a plain unsigned integer is an ErrMalformedAmount.
func (t *Transaction) GetTransactionFee() (decimal.Decimal, error) {
	fee := decimal.Zero
	for _, coin := range t.payload.Data.Tx.AuthInfo.Fee.Amount {
		if coin.Denom != NativeDenom {
			continue
		}
		amount, err := ParseBaseUnits(coin.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("fee of tx %s: %w", t.GetTransactionID(), err)
		}
		fee = fee.Add(amount)
	}
	return fee, nil
}

// FeeCoins returns the fee coins as declared, native ones included.
func (t *Transaction) FeeCoins() []Coin {
	return t.payload.Data.Tx.AuthInfo.Fee.Amount
}

// ParseBaseUnits parses an unscaled integer amount such as "10000".
func ParseBaseUnits(raw string) (decimal.Decimal, error) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	return decimal.NewFromString(v)
}

// GetTransactionDataType is the chain id, e.g. "osmosis-1".
func (t *Transaction) GetTransactionDataType() string {
	return t.payload.Header.ChainID
}

func (t *Transaction) GetTransaction() *TxPayload {
	return &t.payload
}

func (t *Transaction) Code() uint32 {
	return t.payload.Data.Code
}

func (t *Transaction) Logs() []Log {
	return t.payload.Data.Logs
}

// MessageType is the fully qualified @type of the first message.
func (t *Transaction) MessageType() (string, error) {
	msgs := t.payload.Data.Tx.Body.Messages
	if len(msgs) == 0 {
		return "", fmt.Errorf("tx %s: %w", t.GetTransactionID(), ErrNoMessages)
	}
	return msgs[0].Type, nil
}

// FirstMessage decodes the first message body into v.
func (t *Transaction) FirstMessage(v any) error {
	msgs := t.payload.Data.Tx.Body.Messages
	if len(msgs) == 0 {
		return fmt.Errorf("tx %s: %w", t.GetTransactionID(), ErrNoMessages)
	}
	if err := json.Unmarshal(msgs[0].Raw, v); err != nil {
		return fmt.Errorf("decode %s message of tx %s: %w", msgs[0].Type, t.GetTransactionID(), err)
	}
	return nil
}
