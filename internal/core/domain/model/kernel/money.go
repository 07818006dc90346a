package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Money represents a monetary amount in minor currency units (e.g. cents).
// Integer minor units avoid floating point error in escrow arithmetic; any
// currency symbol or formatting is a presentation concern outside this engine.
//
// Money is an immutable value object. The zero value is a valid zero amount,
// which is a legitimate dispute offer. Negative amounts cannot be constructed.
//
// Example:
//
//	price, err := kernel.NewMoney(10000) // 100.00 in minor units
//	if err != nil {
//	    // Handle validation error
//	}
type Money struct {
	units int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewMoney(units int64) (Money, error) {
	if units < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", units))
	}
	return Money{units: units}, nil
}

// Units returns the amount in minor currency units.
func (m Money) Units() int64 {
	return m.units
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.units == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.units == other.units
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.units > other.units
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) bool {
	return m.units < other.units
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}

// Sub returns m minus other. Returns an error if the result would be negative,
// so escrow balances can never be driven below zero by a settlement.
func (m Money) Sub(other Money) (Money, error) {
	if other.units > m.units {
		return Money{}, errs.NewValueIsOutOfRangeError("amount to subtract", other.units, 0, m.units)
	}
	return Money{units: m.units - other.units}, nil
}

// String formats the amount in minor units, without any currency symbol.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.units)
}
