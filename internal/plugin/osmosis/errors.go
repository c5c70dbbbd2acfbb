package osmosis

import (
	"errors"
	"fmt"

	chain "github.com/fystack/caaj-indexer/pkg/chain/osmosis"
)

var (
	ErrMalformedAmount            = chain.ErrMalformedAmount
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
	ErrMissingAttribute           = errors.New("missing event attribute")
	ErrMissingEvent               = errors.New("missing event")
	ErrNotOsmosisTransaction      = errors.New("not an osmosis transaction")
)

// UnsupportedTransactionTypeError carries the offending transaction for
// diagnostics. It matches ErrUnsupportedTransactionType with errors.Is.
type UnsupportedTransactionTypeError struct {
	TxID    string
	MsgType string
}

func (e *UnsupportedTransactionTypeError) Error() string {
	return fmt.Sprintf("transaction type %q is not defined. transaction_id: %s", e.MsgType, e.TxID)
}

func (e *UnsupportedTransactionTypeError) Is(target error) bool {
	return target == ErrUnsupportedTransactionType
}
