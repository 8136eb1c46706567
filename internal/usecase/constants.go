package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds one mutating unit of work. On expiry
	// the transaction rolls back and the ledger keeps its pre-call state.
	DefaultTransactionTimeout = 30 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultListLimit is the detail page size when the caller picks none.
	// The HTTP layer and the listing cache both key off this value; the
	// cache only ever holds the unfiltered first page of this size.
	DefaultListLimit = 50

	// MaxListLimit caps a caller-chosen detail page size.
	MaxListLimit = 500

	// detailListCacheTTL bounds staleness of the cached per-account listing.
	// Mutations invalidate eagerly; the TTL is the backstop.
	detailListCacheTTL = 5 * time.Minute
)
