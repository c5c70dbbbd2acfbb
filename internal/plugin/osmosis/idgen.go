package osmosis

import "github.com/google/uuid"

// IDGenerator produces trade ids shared by the entries of one trade.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
