package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/infrastructure/metrics"
)

// VoucherUseCase handles voucher attachments. Vouchers never touch balance
// logic; they only matter to the ledger through the delete cascade.
type VoucherUseCase struct {
	txManager   TransactionManager
	voucherRepo VoucherRepository
	detailRepo  DetailRepository
	fileStore   FileStore
	idGen       IDGenerator
	metrics     *metrics.Metrics
}

// NewVoucherUseCase creates a new VoucherUseCase. metrics may be nil.
func NewVoucherUseCase(
	txManager TransactionManager,
	voucherRepo VoucherRepository,
	detailRepo DetailRepository,
	fileStore FileStore,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *VoucherUseCase {
	return &VoucherUseCase{
		txManager:   txManager,
		voucherRepo: voucherRepo,
		detailRepo:  detailRepo,
		fileStore:   fileStore,
		idGen:       idGen,
		metrics:     metrics,
	}
}

// AttachVoucher stores the uploaded file and records it against the detail.
// The file is written before the row: if the row insert fails the file is
// removed again, so the store never claims a file that does not exist.
func (uc *VoucherUseCase) AttachVoucher(ctx context.Context, detailID, originalName string, r io.Reader) (*domain.Voucher, error) {
	if _, err := uc.detailRepo.GetByID(ctx, detailID); err != nil {
		return nil, err
	}

	voucher := &domain.Voucher{
		ID:        uc.idGen.Generate(),
		DetailID:  detailID,
		CreatedAt: time.Now().UTC(),
	}
	voucher.FileName = fmt.Sprintf("%s_%s_%s",
		voucher.CreatedAt.Format("2006-01-02"),
		voucher.ID,
		filepath.Base(originalName),
	)

	if err := uc.fileStore.Save(ctx, voucher.FileName, r); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVoucherFileIO, err)
	}

	err := uc.withTx(ctx, func(ctx context.Context, tx Transaction) error {
		return uc.voucherRepo.Create(ctx, tx, voucher)
	})
	if err != nil {
		// Compensate: the row never landed, take the file back out.
		_ = uc.fileStore.Remove(ctx, voucher.FileName)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersAttached.Inc()
	}

	return voucher, nil
}

// ListVouchers lists the vouchers attached to a detail.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, detailID string) ([]*domain.Voucher, error) {
	return uc.voucherRepo.ListByDetail(ctx, detailID)
}

// OpenVoucher returns the voucher record and a reader over its backing file.
// The caller closes the reader.
func (uc *VoucherUseCase) OpenVoucher(ctx context.Context, id string) (*domain.Voucher, io.ReadCloser, error) {
	voucher, err := uc.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := uc.fileStore.Open(ctx, voucher.FileName)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrVoucherFileIO, err)
	}

	return voucher, rc, nil
}

// DeleteVoucher removes one voucher record and its backing file. The file
// removal happens before commit: if it fails the row survives, a missing
// file counts as already removed.
func (uc *VoucherUseCase) DeleteVoucher(ctx context.Context, id string) error {
	voucher, err := uc.voucherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = uc.withTx(ctx, func(ctx context.Context, tx Transaction) error {
		if err := uc.voucherRepo.Delete(ctx, tx, id); err != nil {
			return err
		}

		if err := uc.fileStore.Remove(ctx, voucher.FileName); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrVoucherFileIO, voucher.FileName, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.VouchersDeleted.Inc()
	}

	return nil
}

func (uc *VoucherUseCase) withTx(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
