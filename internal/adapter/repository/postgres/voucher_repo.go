package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

// VoucherRepository implements usecase.VoucherRepository.
type VoucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{pool: pool}
}

func (r *VoucherRepository) q(tx usecase.Transaction) querier {
	if tx == nil {
		return r.pool
	}

	return pgxTxOf(tx)
}

// Create records a voucher against a detail.
func (r *VoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	_, err := r.q(tx).Exec(ctx,
		`INSERT INTO vouchers (id, detail_id, file_name, created_at) VALUES ($1, $2, $3, $4)`,
		voucher.ID, voucher.DetailID, voucher.FileName, timeToPgTimestamptz(voucher.CreatedAt))

	return err
}

// GetByID retrieves a voucher by ID.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, detail_id, file_name, created_at FROM vouchers WHERE id = $1`, id)

	return scanVoucher(row)
}

// ListByDetail lists the vouchers attached to a detail.
func (r *VoucherRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Voucher, error) {
	return r.listByDetail(ctx, r.pool, detailID, false)
}

// ListByDetailForUpdate lists a detail's vouchers with FOR UPDATE locks, for
// the delete cascade.
func (r *VoucherRepository) ListByDetailForUpdate(ctx context.Context, tx usecase.Transaction, detailID string) ([]*domain.Voucher, error) {
	return r.listByDetail(ctx, pgxTxOf(tx), detailID, true)
}

func (r *VoucherRepository) listByDetail(ctx context.Context, q querier, detailID string, forUpdate bool) ([]*domain.Voucher, error) {
	sql := `SELECT id, detail_id, file_name, created_at FROM vouchers WHERE detail_id = $1 ORDER BY created_at, id`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	rows, err := q.Query(ctx, sql, detailID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []*domain.Voucher

	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}

		vouchers = append(vouchers, voucher)
	}

	return vouchers, rows.Err()
}

// DeleteByDetail removes every voucher row of a detail.
func (r *VoucherRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	_, err := pgxTxOf(tx).Exec(ctx, `DELETE FROM vouchers WHERE detail_id = $1`, detailID)

	return err
}

// Delete removes one voucher row.
func (r *VoucherRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	tag, err := pgxTxOf(tx).Exec(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		v       domain.Voucher
		created pgtype.Timestamptz
	)

	if err := row.Scan(&v.ID, &v.DetailID, &v.FileName, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	v.CreatedAt = created.Time

	return &v, nil
}
