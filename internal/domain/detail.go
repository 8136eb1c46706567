package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DescriptionPlaceholder is stored when a detail arrives without a description.
const DescriptionPlaceholder = "-"

// Detail is a single earning/expense record in an account's ledger.
// Balance is derived: it must always equal the predecessor's balance plus
// this row's net amount, in date order within the account.
type Detail struct {
	ID          string
	AccountID   string
	Date        time.Time
	Earning     decimal.Decimal
	Expense     decimal.Decimal
	Description string
	Balance     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// HasVoucher is populated on listing only; it is not stored on the row.
	HasVoucher bool
}

// Net returns earning minus expense.
func (d *Detail) Net() decimal.Decimal {
	return d.Earning.Sub(d.Expense)
}

// Normalize applies entry-time defaults: a placeholder description for blank
// input and second-precision dates (the unique-date constraint works at
// second granularity).
func (d *Detail) Normalize() {
	if d.Description == "" {
		d.Description = DescriptionPlaceholder
	}

	d.Date = d.Date.Truncate(time.Second)
}

// Validate checks field constraints. Called before any store write.
func (d *Detail) Validate() error {
	if d.AccountID == "" {
		return fmt.Errorf("%w: account id is required", ErrValidation)
	}

	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}

	if d.Earning.IsNegative() {
		return fmt.Errorf("%w: earning must not be negative", ErrValidation)
	}

	if d.Expense.IsNegative() {
		return fmt.Errorf("%w: expense must not be negative", ErrValidation)
	}

	return nil
}
