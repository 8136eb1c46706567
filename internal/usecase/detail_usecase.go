package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/metrics"
)

// DetailUseCase orchestrates the mutating ledger operations. Every call is
// one atomic unit of work: normalize, compute the balance effect, apply the
// store writes, commit. Any failure rolls the whole unit back, so no row is
// ever observable with a stale balance.
type DetailUseCase struct {
	txManager   TransactionManager
	detailRepo  DetailRepository
	accountRepo AccountRepository
	voucherRepo VoucherRepository
	fileStore   FileStore
	engine      *BalanceEngine
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
	metrics     *metrics.Metrics
	locks       *accountLocks
}

// NewDetailUseCase creates a new DetailUseCase. cache and metrics may be nil.
func NewDetailUseCase(
	txManager TransactionManager,
	detailRepo DetailRepository,
	accountRepo AccountRepository,
	voucherRepo VoucherRepository,
	fileStore FileStore,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics *metrics.Metrics,
) *DetailUseCase {
	return &DetailUseCase{
		txManager:   txManager,
		detailRepo:  detailRepo,
		accountRepo: accountRepo,
		voucherRepo: voucherRepo,
		fileStore:   fileStore,
		engine:      NewBalanceEngine(detailRepo),
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
		metrics:     metrics,
		locks:       newAccountLocks(),
	}
}

// Engine exposes the balance engine for read-only verification paths.
func (uc *DetailUseCase) Engine() *BalanceEngine {
	return uc.engine
}

// withAccountTx runs fn as one serialized, bounded, transactional unit of
// work for the account. The retrier re-runs the whole unit on transient
// storage conflicts; domain errors pass through untouched.
func (uc *DetailUseCase) withAccountTx(ctx context.Context, accountID string, fn func(ctx context.Context, tx Transaction) error) error {
	uc.locks.Lock(accountID)
	defer uc.locks.Unlock(accountID)

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := fn(ctx, tx); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

// CreateDetailInput represents input for recording a detail.
// Nil amounts are treated as zero.
type CreateDetailInput struct {
	AccountID   string
	Date        time.Time
	Earning     *decimal.Decimal
	Expense     *decimal.Decimal
	Description string
}

// CreateDetail records a new detail and pushes its net amount into every
// later balance of the account. A date collision is resolved once by bumping
// the timestamp one second forward; a second collision is fatal.
func (uc *DetailUseCase) CreateDetail(ctx context.Context, input CreateDetailInput) (*domain.Detail, error) {
	detail := &domain.Detail{
		ID:          uc.idGen.Generate(),
		AccountID:   input.AccountID,
		Date:        input.Date,
		Description: input.Description,
	}

	if input.Earning != nil {
		detail.Earning = *input.Earning
	}

	if input.Expense != nil {
		detail.Expense = *input.Expense
	}

	detail.Normalize()

	if err := detail.Validate(); err != nil {
		return nil, err
	}

	bumped := false

	err := uc.withAccountTx(ctx, detail.AccountID, func(ctx context.Context, tx Transaction) error {
		if _, err := uc.accountRepo.GetByID(ctx, detail.AccountID); err != nil {
			return err
		}

		now := time.Now().UTC()
		detail.CreatedAt = now
		detail.UpdatedAt = now

		if err := uc.engine.ComputeOwnBalance(ctx, tx, detail); err != nil {
			return err
		}

		err := uc.detailRepo.Create(ctx, tx, detail)
		if errors.Is(err, domain.ErrDateCollision) {
			// Single bounded retry. The bump does not change the row's
			// ordering relative to its neighbours, so the balance computed
			// from the original date stands.
			detail.Date = detail.Date.Add(time.Second)
			bumped = true

			err = uc.detailRepo.Create(ctx, tx, detail)
			if errors.Is(err, domain.ErrDateCollision) {
				return fmt.Errorf("date still taken after one-second bump: %w", domain.ErrDateCollision)
			}
		}

		if err != nil {
			return err
		}

		_, err = uc.engine.PropagateFrom(ctx, tx, detail.AccountID, detail.Date, detail.Net())

		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DetailsCreated.Inc()
		if bumped {
			uc.metrics.DateCollisions.Inc()
		}
	}

	uc.invalidateListCache(ctx, detail.AccountID)

	return detail, nil
}

// UpdateDetailInput represents input for rewriting a detail. AccountID, when
// set, must match the stored row; moving a detail between accounts is
// unsupported. Nil amounts are treated as zero.
type UpdateDetailInput struct {
	ID          string
	AccountID   string
	Date        time.Time
	Earning     *decimal.Decimal
	Expense     *decimal.Decimal
	Description string
}

// UpdateDetail rewrites a detail's date, amounts and description, adjusting
// exactly the rows whose balances the change invalidates. A date move shifts
// the crossed range by the row's old net amount; an amount change propagates
// the net delta past the new date. Both can apply in one call.
func (uc *DetailUseCase) UpdateDetail(ctx context.Context, input UpdateDetailInput) (*domain.Detail, error) {
	// The stored row carries the account; lock on the caller's claim first
	// and re-check inside the transaction.
	old, err := uc.detailRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.AccountID != "" && input.AccountID != old.AccountID {
		return nil, domain.ErrAccountImmutable
	}

	updated := &domain.Detail{
		ID:          old.ID,
		AccountID:   old.AccountID,
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   old.CreatedAt,
	}

	if input.Earning != nil {
		updated.Earning = *input.Earning
	}

	if input.Expense != nil {
		updated.Expense = *input.Expense
	}

	updated.Normalize()

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	err = uc.withAccountTx(ctx, old.AccountID, func(ctx context.Context, tx Transaction) error {
		old, err := uc.detailRepo.GetByIDForUpdate(ctx, tx, input.ID)
		if err != nil {
			return err
		}

		oldNet := old.Net()

		switch {
		case updated.Date.Before(old.Date):
			// Moved earlier: rows now behind it gain its old contribution.
			if _, err := uc.engine.ShiftRange(ctx, tx, old.AccountID, updated.Date, old.Date, oldNet); err != nil {
				return err
			}
		case updated.Date.After(old.Date):
			// Moved later: the crossed rows lose it.
			if _, err := uc.engine.ShiftRange(ctx, tx, old.AccountID, old.Date, updated.Date, oldNet.Neg()); err != nil {
				return err
			}
		}

		if !updated.Earning.Equal(old.Earning) || !updated.Expense.Equal(old.Expense) {
			netDelta := updated.Net().Sub(oldNet)
			if _, err := uc.engine.PropagateFrom(ctx, tx, old.AccountID, updated.Date, netDelta); err != nil {
				return err
			}
		}

		if err := uc.engine.ComputeOwnBalance(ctx, tx, updated); err != nil {
			return err
		}

		updated.UpdatedAt = time.Now().UTC()

		return uc.detailRepo.Update(ctx, tx, updated)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DetailsUpdated.Inc()
	}

	uc.invalidateListCache(ctx, old.AccountID)

	return updated, nil
}

// DeleteDetail removes a detail, its vouchers and their backing files, then
// retracts the row's net amount from every later balance. Files go first: a
// file-store failure aborts the unit of work with the rows intact.
func (uc *DetailUseCase) DeleteDetail(ctx context.Context, id string) error {
	detail, err := uc.detailRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.withAccountTx(ctx, detail.AccountID, func(ctx context.Context, tx Transaction) error {
		detail, err := uc.detailRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		vouchers, err := uc.voucherRepo.ListByDetailForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		for _, v := range vouchers {
			if err := uc.fileStore.Remove(ctx, v.FileName); err != nil {
				return fmt.Errorf("%w: %s: %v", domain.ErrVoucherFileIO, v.FileName, err)
			}
		}

		if err := uc.voucherRepo.DeleteByDetail(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.detailRepo.Delete(ctx, tx, id); err != nil {
			return err
		}

		_, err = uc.engine.PropagateFrom(ctx, tx, detail.AccountID, detail.Date, detail.Net().Neg())

		return err
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.DetailsDeleted.Inc()
	}

	uc.invalidateListCache(ctx, detail.AccountID)

	return nil
}

// GetDetail retrieves a detail by ID.
func (uc *DetailUseCase) GetDetail(ctx context.Context, id string) (*domain.Detail, error) {
	return uc.detailRepo.GetByID(ctx, id)
}

// ListDetailsInput represents input for listing an account's details.
type ListDetailsInput struct {
	AccountID      string
	From           *time.Time
	To             *time.Time
	WithoutVoucher bool
	Limit          int
	Offset         int
}

// ListDetails lists an account's details, newest first. The unfiltered first
// page is served from cache when one is configured.
func (uc *DetailUseCase) ListDetails(ctx context.Context, input ListDetailsInput) ([]*domain.Detail, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}

	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	filter := DetailFilter{
		From:           input.From,
		To:             input.To,
		WithoutVoucher: input.WithoutVoucher,
		Limit:          input.Limit,
		Offset:         input.Offset,
	}

	cacheable := uc.cache != nil &&
		filter.From == nil && filter.To == nil &&
		!filter.WithoutVoucher && filter.Offset == 0 && filter.Limit == DefaultListLimit

	if cacheable {
		if data, err := uc.cache.Get(ctx, detailListKey(input.AccountID)); err == nil {
			var details []*domain.Detail
			if err := json.Unmarshal(data, &details); err == nil {
				return details, nil
			}
		}
	}

	details, err := uc.detailRepo.ListByAccount(ctx, input.AccountID, filter)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(details); err == nil {
			_ = uc.cache.Set(ctx, detailListKey(input.AccountID), data, detailListCacheTTL)
		}
	}

	return details, nil
}

// RebuildAccount recomputes every balance of one account from raw amounts.
// Returns the number of rows rewritten.
func (uc *DetailUseCase) RebuildAccount(ctx context.Context, accountID string) (int, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return 0, err
	}

	start := time.Now()

	var rows int

	err := uc.withAccountTx(ctx, accountID, func(ctx context.Context, tx Transaction) error {
		var err error
		rows, err = uc.engine.RebuildAccount(ctx, tx, accountID)

		return err
	})
	if err != nil {
		return 0, err
	}

	if uc.metrics != nil {
		uc.metrics.RebuildsRun.Inc()
		uc.metrics.RebuildRows.Add(float64(rows))
		uc.metrics.RebuildDuration.Observe(time.Since(start).Seconds())
	}

	uc.invalidateListCache(ctx, accountID)

	return rows, nil
}

// RebuildAll rebuilds every account. Administrative repair; each account is
// its own transactional boundary, there is no cross-account atomicity.
func (uc *DetailUseCase) RebuildAll(ctx context.Context) (int, error) {
	const pageSize = 100

	total := 0

	for offset := 0; ; offset += pageSize {
		accounts, err := uc.accountRepo.List(ctx, pageSize, offset)
		if err != nil {
			return total, err
		}

		if len(accounts) == 0 {
			return total, nil
		}

		for _, account := range accounts {
			rows, err := uc.RebuildAccount(ctx, account.ID)
			if err != nil {
				return total, fmt.Errorf("rebuild account %s: %w", account.ID, err)
			}

			total += rows
		}

		if len(accounts) < pageSize {
			return total, nil
		}
	}
}

// VerifyAccount reports the ids of rows whose stored balance has drifted
// from the definitional chain. Empty means consistent.
func (uc *DetailUseCase) VerifyAccount(ctx context.Context, accountID string) ([]string, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	drifted, err := uc.engine.VerifyAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil && len(drifted) > 0 {
		uc.metrics.BalanceDrift.WithLabelValues(accountID).Add(float64(len(drifted)))
	}

	return drifted, nil
}

func (uc *DetailUseCase) invalidateListCache(ctx context.Context, accountID string) {
	if uc.cache == nil {
		return
	}

	_ = uc.cache.Delete(ctx, detailListKey(accountID))
}

func detailListKey(accountID string) string {
	return "details:" + accountID
}
