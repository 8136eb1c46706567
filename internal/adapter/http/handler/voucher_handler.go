package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
)

// Uploads larger than this are rejected before reaching the store.
const maxVoucherSize = 32 << 20

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	AttachVoucher(ctx context.Context, detailID, originalName string, r io.Reader) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, detailID string) ([]*domain.Voucher, error)
	OpenVoucher(ctx context.Context, id string) (*domain.Voucher, io.ReadCloser, error)
	DeleteVoucher(ctx context.Context, id string) error
}

// VoucherHandler handles voucher-related HTTP requests.
type VoucherHandler struct {
	voucherUC VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC}
}

// Upload attaches a voucher file to a detail. The file is sent as the "file"
// part of a multipart form.
func (h *VoucherHandler) Upload(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxVoucherSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload", err.Error())
		return
	}
	defer file.Close()

	voucher, err := h.voucherUC.AttachVoucher(r.Context(), detailID, header.Filename, file)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to attach voucher", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// List lists the vouchers attached to a detail.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	detailID := chi.URLParam(r, "id")
	if detailID == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), detailID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list vouchers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VouchersFromDomain(vouchers))
}

// Download streams a voucher file back to the client.
func (h *VoucherHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, rc, err := h.voucherUC.OpenVoucher(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to open voucher", err.Error())
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", voucher.FileName))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, rc)
}

// Delete removes a voucher row and its file.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	if err := h.voucherUC.DeleteVoucher(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete voucher", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
