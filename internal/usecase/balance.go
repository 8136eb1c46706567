package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
)

// BalanceEngine maintains the running-balance chain of one account:
// sorted ascending by date, balance(t0) = net(t0) and
// balance(ti) = balance(t[i-1]) + net(ti). Incremental mutations use
// ComputeOwnBalance plus range deltas; RebuildAccount recomputes the whole
// chain from raw amounts.
//
// The engine never crosses accounts; callers serialize mutations per account.
type BalanceEngine struct {
	detailRepo DetailRepository
}

// NewBalanceEngine creates a new BalanceEngine.
func NewBalanceEngine(detailRepo DetailRepository) *BalanceEngine {
	return &BalanceEngine{detailRepo: detailRepo}
}

// ComputeOwnBalance sets detail.Balance from its nearest predecessor:
// predecessor balance (zero at start-of-ledger) plus the detail's net amount.
// No other row is touched. The detail's own stored row is excluded from the
// predecessor lookup: during an update it still sits at its old date and a
// later-move would otherwise count its net amount twice.
func (e *BalanceEngine) ComputeOwnBalance(ctx context.Context, tx Transaction, detail *domain.Detail) error {
	previous, err := e.detailRepo.FindPredecessor(ctx, tx, detail.AccountID, detail.Date, detail.ID)
	if err != nil {
		return err
	}

	opening := decimal.Zero
	if previous != nil {
		opening = previous.Balance
	}

	detail.Balance = opening.Add(detail.Earning).Sub(detail.Expense)

	return nil
}

// PropagateFrom adds netDelta to the stored balance of every row in the
// account dated strictly after date. This is how an upstream change reaches
// all later balances without recomputing them one by one.
func (e *BalanceEngine) PropagateFrom(ctx context.Context, tx Transaction, accountID string, date time.Time, netDelta decimal.Decimal) (int64, error) {
	if netDelta.IsZero() {
		return 0, nil
	}

	return e.detailRepo.AddToBalanceAfter(ctx, tx, accountID, date, netDelta)
}

// ShiftRange adds delta to every row with fromExclusive < date <= toInclusive.
// Used when a detail's date moves across other rows: the rows it crossed gain
// or lose its old net contribution.
func (e *BalanceEngine) ShiftRange(ctx context.Context, tx Transaction, accountID string, fromExclusive, toInclusive time.Time, delta decimal.Decimal) (int64, error) {
	if delta.IsZero() {
		return 0, nil
	}

	return e.detailRepo.AddToBalanceBetween(ctx, tx, accountID, fromExclusive, toInclusive, delta)
}

// RebuildAccount recomputes every balance of the account from raw amounts,
// ignoring stored balances. The listing is descending by date, so walking it
// back to front is oldest-forward accumulation, exactly the definitional
// chain. Idempotent.
func (e *BalanceEngine) RebuildAccount(ctx context.Context, tx Transaction, accountID string) (int, error) {
	details, err := e.detailRepo.ListAllByAccount(ctx, tx, accountID)
	if err != nil {
		return 0, err
	}

	running := decimal.Zero
	for i := len(details) - 1; i >= 0; i-- {
		running = running.Add(details[i].Net())

		if err := e.detailRepo.UpdateBalance(ctx, tx, details[i].ID, running); err != nil {
			return 0, err
		}
	}

	return len(details), nil
}

// VerifyAccount re-derives the chain without writing and reports the ids of
// rows whose stored balance disagrees with the definitional computation.
func (e *BalanceEngine) VerifyAccount(ctx context.Context, accountID string) ([]string, error) {
	details, err := e.detailRepo.ListAllByAccount(ctx, nil, accountID)
	if err != nil {
		return nil, err
	}

	var drifted []string

	running := decimal.Zero
	for i := len(details) - 1; i >= 0; i-- {
		running = running.Add(details[i].Net())

		if !details[i].Balance.Equal(running) {
			drifted = append(drifted, details[i].ID)
		}
	}

	return drifted, nil
}
