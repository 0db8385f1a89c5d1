package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// DecimalsReader returns the token's declared precision.
type DecimalsReader interface {
	TokenDecimals(ctx context.Context) (uint8, error)
}

// AmountConverter converts decimal token amounts into ledger base units.
// The token precision is fetched once and cached for the process lifetime;
// failed fetches are retried on the next call.
type AmountConverter struct {
	reader DecimalsReader

	mu       sync.Mutex
	decimals uint8
	loaded   bool
}

// NewAmountConverter creates a new converter backed by reader.
func NewAmountConverter(reader DecimalsReader) *AmountConverter {
	return &AmountConverter{reader: reader}
}

// Decimals returns the cached token precision, fetching it on first use.
func (c *AmountConverter) Decimals(ctx context.Context) (uint8, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.decimals, nil
	}

	decimals, err := c.reader.TokenDecimals(ctx)
	if err != nil {
		return 0, err
	}
	c.decimals, c.loaded = decimals, true
	return decimals, nil
}

// ToBaseUnits converts amount using the token precision.
func (c *AmountConverter) ToBaseUnits(ctx context.Context, amount string) (uint64, uint8, error) {
	decimals, err := c.Decimals(ctx)
	if err != nil {
		return 0, 0, err
	}
	units, err := ToBaseUnits(amount, decimals)
	return units, decimals, err
}

// ParseAmount validates a positive decimal amount string.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a decimal number", ErrValidation, amount)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return d, nil
}

// ToBaseUnits converts a decimal amount into integer base units for the given precision.
// Amounts with more fractional digits than the precision allows are rejected.
func ToBaseUnits(amount string, decimals uint8) (uint64, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %s has more than %d decimal places", ErrValidation, amount, decimals)
	}

	units := shifted.BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("%w: amount %s is too large", ErrValidation, amount)
	}
	return units.Uint64(), nil
}
