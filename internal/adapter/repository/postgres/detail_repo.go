package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

const detailColumns = `id, account_id, entry_date, earning, expense, description, balance, created_at, updated_at`

// DetailRepository implements usecase.DetailRepository.
type DetailRepository struct {
	pool *pgxpool.Pool
}

// NewDetailRepository creates a new DetailRepository.
func NewDetailRepository(pool *pgxpool.Pool) *DetailRepository {
	return &DetailRepository{pool: pool}
}

func (r *DetailRepository) q(tx usecase.Transaction) querier {
	if tx == nil {
		return r.pool
	}

	return pgxTxOf(tx)
}

// GetByID retrieves a detail by ID.
func (r *DetailRepository) GetByID(ctx context.Context, id string) (*domain.Detail, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+detailColumns+` FROM details WHERE id = $1`, id)

	return scanDetail(row)
}

// GetByIDForUpdate retrieves a detail by ID with a FOR UPDATE lock.
func (r *DetailRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Detail, error) {
	row := pgxTxOf(tx).QueryRow(ctx,
		`SELECT `+detailColumns+` FROM details WHERE id = $1 FOR UPDATE`, id)

	return scanDetail(row)
}

// FindPredecessor retrieves the latest detail of the account dated strictly
// before date, skipping the row with excludeID. Returns (nil, nil) at the
// start of the ledger.
func (r *DetailRepository) FindPredecessor(ctx context.Context, tx usecase.Transaction, accountID string, date time.Time, excludeID string) (*domain.Detail, error) {
	row := r.q(tx).QueryRow(ctx,
		`SELECT `+detailColumns+`
		 FROM details
		 WHERE account_id = $1 AND entry_date < $2 AND id <> $3
		 ORDER BY entry_date DESC
		 LIMIT 1`,
		accountID, timeToPgTimestamptz(date), excludeID)

	detail, err := scanDetail(row)
	if errors.Is(err, domain.ErrDetailNotFound) {
		return nil, nil
	}

	return detail, err
}

// ListByAccount lists details of an account newest first, with optional date
// range and voucher filters. The has_voucher flag is derived per row.
func (r *DetailRepository) ListByAccount(ctx context.Context, accountID string, filter usecase.DetailFilter) ([]*domain.Detail, error) {
	var sb strings.Builder

	sb.WriteString(`SELECT d.id, d.account_id, d.entry_date, d.earning, d.expense, d.description, d.balance, d.created_at, d.updated_at,
		EXISTS (SELECT 1 FROM vouchers v WHERE v.detail_id = d.id) AS has_voucher
		FROM details d
		WHERE d.account_id = $1`)

	args := []any{accountID}

	if filter.From != nil {
		args = append(args, timeToPgTimestamptz(*filter.From))
		fmt.Fprintf(&sb, " AND d.entry_date >= $%d", len(args))
	}

	if filter.To != nil {
		args = append(args, timeToPgTimestamptz(*filter.To))
		fmt.Fprintf(&sb, " AND d.entry_date <= $%d", len(args))
	}

	if filter.WithoutVoucher {
		sb.WriteString(" AND NOT EXISTS (SELECT 1 FROM vouchers v WHERE v.detail_id = d.id)")
	}

	sb.WriteString(" ORDER BY d.entry_date DESC")

	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))

	args = append(args, filter.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*domain.Detail

	for rows.Next() {
		var (
			d                 domain.Detail
			earning, expense  pgtype.Numeric
			balance           pgtype.Numeric
			date, created, up pgtype.Timestamptz
		)

		err := rows.Scan(&d.ID, &d.AccountID, &date, &earning, &expense,
			&d.Description, &balance, &created, &up, &d.HasVoucher)
		if err != nil {
			return nil, err
		}

		d.Date = date.Time
		d.Earning = numericToDecimal(earning)
		d.Expense = numericToDecimal(expense)
		d.Balance = numericToDecimal(balance)
		d.CreatedAt = created.Time
		d.UpdatedAt = up.Time

		details = append(details, &d)
	}

	return details, rows.Err()
}

// ListAllByAccount lists every detail of the account newest first.
func (r *DetailRepository) ListAllByAccount(ctx context.Context, tx usecase.Transaction, accountID string) ([]*domain.Detail, error) {
	rows, err := r.q(tx).Query(ctx,
		`SELECT `+detailColumns+`
		 FROM details
		 WHERE account_id = $1
		 ORDER BY entry_date DESC`,
		accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*domain.Detail

	for rows.Next() {
		detail, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	return details, rows.Err()
}

// Create inserts a detail. The conflict target is the per-account unique date;
// reporting the collision through the command tag keeps the surrounding
// transaction usable for the retry.
func (r *DetailRepository) Create(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	tag, err := pgxTxOf(tx).Exec(ctx,
		`INSERT INTO details (id, account_id, entry_date, earning, expense, description, balance, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (account_id, entry_date) DO NOTHING`,
		detail.ID,
		detail.AccountID,
		timeToPgTimestamptz(detail.Date),
		decimalToNumeric(detail.Earning),
		decimalToNumeric(detail.Expense),
		detail.Description,
		decimalToNumeric(detail.Balance),
		timeToPgTimestamptz(detail.CreatedAt),
		timeToPgTimestamptz(detail.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDateCollision
	}

	return nil
}

// Update rewrites a detail row.
func (r *DetailRepository) Update(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	tag, err := pgxTxOf(tx).Exec(ctx,
		`UPDATE details
		 SET entry_date = $2, earning = $3, expense = $4, description = $5, balance = $6, updated_at = $7
		 WHERE id = $1`,
		detail.ID,
		timeToPgTimestamptz(detail.Date),
		decimalToNumeric(detail.Earning),
		decimalToNumeric(detail.Expense),
		detail.Description,
		decimalToNumeric(detail.Balance),
		timeToPgTimestamptz(detail.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDetailNotFound
	}

	return nil
}

// UpdateBalance rewrites only the stored balance of a row.
func (r *DetailRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	tag, err := r.q(tx).Exec(ctx,
		`UPDATE details SET balance = $2 WHERE id = $1`,
		id, decimalToNumeric(balance))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDetailNotFound
	}

	return nil
}

// Delete removes a detail row.
func (r *DetailRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := pgxTxOf(tx).Exec(ctx, `DELETE FROM details WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDetailNotFound
	}

	return nil
}

// AddToBalanceAfter adds delta to the balance of every row of the account
// dated strictly after date. Returns the number of rows touched.
func (r *DetailRepository) AddToBalanceAfter(ctx context.Context, tx usecase.Transaction, accountID string, date time.Time, delta decimal.Decimal) (int64, error) {
	tag, err := pgxTxOf(tx).Exec(ctx,
		`UPDATE details SET balance = balance + $3
		 WHERE account_id = $1 AND entry_date > $2`,
		accountID, timeToPgTimestamptz(date), decimalToNumeric(delta))
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// AddToBalanceBetween adds delta to the balance of every row of the account
// with fromExclusive < entry_date <= toInclusive.
func (r *DetailRepository) AddToBalanceBetween(ctx context.Context, tx usecase.Transaction, accountID string, fromExclusive, toInclusive time.Time, delta decimal.Decimal) (int64, error) {
	tag, err := pgxTxOf(tx).Exec(ctx,
		`UPDATE details SET balance = balance + $4
		 WHERE account_id = $1 AND entry_date > $2 AND entry_date <= $3`,
		accountID, timeToPgTimestamptz(fromExclusive), timeToPgTimestamptz(toInclusive), decimalToNumeric(delta))
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanDetail(row pgx.Row) (*domain.Detail, error) {
	var (
		d                 domain.Detail
		earning, expense  pgtype.Numeric
		balance           pgtype.Numeric
		date, created, up pgtype.Timestamptz
	)

	err := row.Scan(&d.ID, &d.AccountID, &date, &earning, &expense,
		&d.Description, &balance, &created, &up)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDetailNotFound
		}

		return nil, err
	}

	d.Date = date.Time
	d.Earning = numericToDecimal(earning)
	d.Expense = numericToDecimal(expense)
	d.Balance = numericToDecimal(balance)
	d.CreatedAt = created.Time
	d.UpdatedAt = up.Time

	return &d, nil
}
