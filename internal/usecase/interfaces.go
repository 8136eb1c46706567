package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// DetailFilter narrows detail listings.
type DetailFilter struct {
	From           *time.Time
	To             *time.Time
	WithoutVoucher bool
	Limit          int
	Offset         int
}

// DetailRepository defines data access for details. Mutating methods run
// inside the unit-of-work transaction; plain reads go straight to the pool.
type DetailRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Detail, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Detail, error)
	// FindPredecessor returns the row with the nearest strictly-earlier date
	// in the account, or (nil, nil) at start-of-ledger. The row with
	// excludeID is never returned: while a date moves, the row still
	// occupies its old slot and must not act as its own predecessor.
	FindPredecessor(ctx context.Context, tx Transaction, accountID string, date time.Time, excludeID string) (*domain.Detail, error)
	ListByAccount(ctx context.Context, accountID string, filter DetailFilter) ([]*domain.Detail, error)
	// ListAllByAccount returns every row of the account, descending by date.
	ListAllByAccount(ctx context.Context, tx Transaction, accountID string) ([]*domain.Detail, error)
	// Create returns domain.ErrDateCollision when the (account, date) pair
	// is already taken. The transaction stays usable afterwards.
	Create(ctx context.Context, tx Transaction, detail *domain.Detail) error
	Update(ctx context.Context, tx Transaction, detail *domain.Detail) error
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal) error
	Delete(ctx context.Context, tx Transaction, id string) error
	// AddToBalanceAfter adds delta to the balance of every row with
	// date strictly greater than the given date. Returns the affected count.
	AddToBalanceAfter(ctx context.Context, tx Transaction, accountID string, date time.Time, delta decimal.Decimal) (int64, error)
	// AddToBalanceBetween adds delta to rows with from < date <= to.
	AddToBalanceBetween(ctx context.Context, tx Transaction, accountID string, fromExclusive, toInclusive time.Time, delta decimal.Decimal) (int64, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// VoucherRepository defines data access for vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
	ListByDetail(ctx context.Context, detailID string) ([]*domain.Voucher, error)
	ListByDetailForUpdate(ctx context.Context, tx Transaction, detailID string) ([]*domain.Voucher, error)
	DeleteByDetail(ctx context.Context, tx Transaction, detailID string) error
	Delete(ctx context.Context, tx Transaction, id string) error
}

// FileStore holds voucher files. Remove treats a missing file as success;
// any other failure must surface so the caller can abort its unit of work.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs a unit of work on transient storage failures
// (deadlocks, serialization conflicts). Domain errors pass through.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
