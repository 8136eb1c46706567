package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// DetailResponse represents a detail in API responses.
type DetailResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        time.Time       `json:"date"`
	Earning     decimal.Decimal `json:"earning"`
	Expense     decimal.Decimal `json:"expense"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	HasVoucher  bool            `json:"has_voucher"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DetailFromDomain converts a domain detail to a response.
func DetailFromDomain(d *domain.Detail) *DetailResponse {
	return &DetailResponse{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Date:        d.Date,
		Earning:     d.Earning,
		Expense:     d.Expense,
		Description: d.Description,
		Balance:     d.Balance,
		HasVoucher:  d.HasVoucher,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// DetailsFromDomain converts domain details to responses.
func DetailsFromDomain(details []*domain.Detail) []*DetailResponse {
	result := make([]*DetailResponse, len(details))
	for i, d := range details {
		result[i] = DetailFromDomain(d)
	}
	return result
}

// ListDetailsResponse wraps a detail listing.
type ListDetailsResponse struct {
	Details []*DetailResponse `json:"details"`
	Total   int64             `json:"total"`
}

// VoucherResponse represents a voucher in API responses.
type VoucherResponse struct {
	ID        string    `json:"id"`
	DetailID  string    `json:"detail_id"`
	FileName  string    `json:"file_name"`
	CreatedAt time.Time `json:"created_at"`
}

// VoucherFromDomain converts a domain voucher to a response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:        v.ID,
		DetailID:  v.DetailID,
		FileName:  v.FileName,
		CreatedAt: v.CreatedAt,
	}
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// RebuildResponse reports a balance rebuild.
type RebuildResponse struct {
	RowsRewritten int `json:"rows_rewritten"`
}

// VerifyResponse reports a balance verification.
type VerifyResponse struct {
	Consistent bool     `json:"consistent"`
	Drifted    []string `json:"drifted,omitempty"`
}
