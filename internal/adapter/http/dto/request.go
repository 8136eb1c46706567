package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{Name: r.Name}
}

// CreateDetailRequest represents a request to record a detail. Omitted
// amounts are treated as zero, an omitted description as the placeholder.
type CreateDetailRequest struct {
	AccountID   string           `json:"account_id"`
	Date        time.Time        `json:"date"`
	Earning     *decimal.Decimal `json:"earning,omitempty"`
	Expense     *decimal.Decimal `json:"expense,omitempty"`
	Description string           `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDetailRequest) ToUseCaseInput() usecase.CreateDetailInput {
	return usecase.CreateDetailInput{
		AccountID:   r.AccountID,
		Date:        r.Date,
		Earning:     r.Earning,
		Expense:     r.Expense,
		Description: r.Description,
	}
}

// UpdateDetailRequest represents a request to rewrite a detail.
type UpdateDetailRequest struct {
	AccountID   string           `json:"account_id,omitempty"`
	Date        time.Time        `json:"date"`
	Earning     *decimal.Decimal `json:"earning,omitempty"`
	Expense     *decimal.Decimal `json:"expense,omitempty"`
	Description string           `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateDetailRequest) ToUseCaseInput(id string) usecase.UpdateDetailInput {
	return usecase.UpdateDetailInput{
		ID:          id,
		AccountID:   r.AccountID,
		Date:        r.Date,
		Earning:     r.Earning,
		Expense:     r.Expense,
		Description: r.Description,
	}
}
