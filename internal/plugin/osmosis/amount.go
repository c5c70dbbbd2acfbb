package osmosis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Chain-specific native denominations. Both map to a nil token original id.
const (
	NativeDenom          = "uosmo"
	SecondaryNativeDenom = "uion"
)

const (
	poolShareMarker = "pool"

	standardExponent  = 6  // u-prefixed and IBC tokens
	poolShareExponent = 18 // gamm/pool/N shares
)

var coinRegexp = regexp.MustCompile(`^([0-9]+)(.*)$`)

type coin struct {
	raw    string
	amount decimal.Decimal
	denom  string
}

// parseCoin splits "<digits><denom>" into its integer magnitude and denom.
func parseCoin(raw string) (coin, error) {
	value := strings.TrimSpace(raw)
	m := coinRegexp.FindStringSubmatch(value)
	if m == nil {
		return coin{}, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return coin{}, fmt.Errorf("%w: %q: %v", ErrMalformedAmount, raw, err)
	}
	return coin{raw: value, amount: amount, denom: m[2]}, nil
}

// scaled converts base units to human units.
func (c coin) scaled() decimal.Decimal {
	if strings.Contains(c.denom, poolShareMarker) {
		return c.amount.Shift(-poolShareExponent)
	}
	return c.amount.Shift(-standardExponent)
}

func (c coin) tokenID() *string {
	return CanonicalDenom(c.denom)
}

// ParseAmount returns the human-unit amount of a compound coin string:
// pool shares are divided by 10^18, everything else by 10^6.
func ParseAmount(raw string) (decimal.Decimal, error) {
	c, err := parseCoin(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return c.scaled(), nil
}

// ParseTokenID returns the token original id of a compound coin string, or
// nil for the native denominations and an empty denom.
func ParseTokenID(raw string) (*string, error) {
	c, err := parseCoin(raw)
	if err != nil {
		return nil, err
	}
	return c.tokenID(), nil
}

// CanonicalDenom maps a bare denom to its token original id.
func CanonicalDenom(denom string) *string {
	switch denom {
	case "", NativeDenom, SecondaryNativeDenom:
		return nil
	}
	return &denom
}

// SplitCoins splits a comma separated coin list, dropping empty items.
func SplitCoins(raw string) []string {
	parts := strings.Split(raw, ",")
	coins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			coins = append(coins, p)
		}
	}
	return coins
}

func parseCoins(raw string) ([]coin, error) {
	items := SplitCoins(raw)
	coins := make([]coin, 0, len(items))
	for _, item := range items {
		c, err := parseCoin(item)
		if err != nil {
			return nil, err
		}
		coins = append(coins, c)
	}
	return coins, nil
}

// baseUnits scales a plain integer string (no denom) by 10^6.
func baseUnits(raw string) (decimal.Decimal, error) {
	if !isUintString(raw) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformedAmount, raw, err)
	}
	return amount.Shift(-standardExponent), nil
}

func isUintString(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
