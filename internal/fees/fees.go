// Package fees maps a car's on-road price to the joining fee charged for a
// group membership.
package fees

import (
	"errors"
	"fmt"
)

// Band charges Fee for any price up to and including UpTo.
type Band struct {
	UpTo int64 `json:"up_to"`
	Fee  int64 `json:"fee"`
}

// Table is an ordered set of bands plus the fee for prices above the last band.
type Table struct {
	bands    []Band
	catchAll int64
}

// Default is the production fee schedule, in rupees.
var Default = MustTable([]Band{
	{UpTo: 1_000_000, Fee: 1_000},
	{UpTo: 2_000_000, Fee: 2_000},
	{UpTo: 3_000_000, Fee: 3_000},
}, 5_000)

// NewTable validates and copies the bands. Bounds must strictly increase,
// fees must be positive and non-decreasing, and the catch-all fee must be
// strictly larger than every band fee.
func NewTable(bands []Band, catchAll int64) (*Table, error) {
	if len(bands) == 0 {
		return nil, errors.New("at least one band is required")
	}
	var prev Band
	for i, b := range bands {
		if b.UpTo <= 0 {
			return nil, fmt.Errorf("band %d: upper bound must be positive", i)
		}
		if b.Fee <= 0 {
			return nil, fmt.Errorf("band %d: fee must be positive", i)
		}
		if i > 0 {
			if b.UpTo <= prev.UpTo {
				return nil, fmt.Errorf("band %d: upper bound %d must exceed %d", i, b.UpTo, prev.UpTo)
			}
			if b.Fee < prev.Fee {
				return nil, fmt.Errorf("band %d: fee %d is lower than previous fee %d", i, b.Fee, prev.Fee)
			}
		}
		prev = b
	}
	if catchAll <= prev.Fee {
		return nil, fmt.Errorf("catch-all fee %d must exceed band fee %d", catchAll, prev.Fee)
	}

	return &Table{bands: append([]Band(nil), bands...), catchAll: catchAll}, nil
}

// MustTable is NewTable for package-level tables; it panics on invalid input.
func MustTable(bands []Band, catchAll int64) *Table {
	t, err := NewTable(bands, catchAll)
	if err != nil {
		panic(fmt.Sprintf("fees: %v", err))
	}
	return t
}

// Fee returns the joining fee for price. The first band whose bound is at
// least price applies. price must be positive; callers validate input before
// reaching here.
func (t *Table) Fee(price int64) int64 {
	if price <= 0 {
		panic(fmt.Sprintf("fees: price must be positive, got %d", price))
	}
	for _, b := range t.bands {
		if price <= b.UpTo {
			return b.Fee
		}
	}
	return t.catchAll
}

// Bands returns a copy of the bands in ascending order.
func (t *Table) Bands() []Band {
	return append([]Band(nil), t.bands...)
}

// CatchAll returns the fee for prices above every band.
func (t *Table) CatchAll() int64 {
	return t.catchAll
}

// ComputeJoiningFee applies the Default table.
func ComputeJoiningFee(price int64) int64 {
	return Default.Fee(price)
}
