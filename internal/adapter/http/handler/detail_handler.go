package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

// DetailService defines the behavior needed by DetailHandler.
type DetailService interface {
	CreateDetail(ctx context.Context, input usecase.CreateDetailInput) (*domain.Detail, error)
	GetDetail(ctx context.Context, id string) (*domain.Detail, error)
	UpdateDetail(ctx context.Context, input usecase.UpdateDetailInput) (*domain.Detail, error)
	DeleteDetail(ctx context.Context, id string) error
	ListDetails(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error)
	RebuildAccount(ctx context.Context, accountID string) (int, error)
	RebuildAll(ctx context.Context) (int, error)
	VerifyAccount(ctx context.Context, accountID string) ([]string, error)
}

// DetailHandler handles detail-related HTTP requests.
type DetailHandler struct {
	detailUC DetailService
}

// NewDetailHandler creates a new DetailHandler.
func NewDetailHandler(detailUC DetailService) *DetailHandler {
	return &DetailHandler{detailUC: detailUC}
}

// Create records a new detail.
func (h *DetailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	detail, err := h.detailUC.CreateDetail(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create detail", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DetailFromDomain(detail))
}

// Get retrieves a detail by ID.
func (h *DetailHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	detail, err := h.detailUC.GetDetail(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get detail", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DetailFromDomain(detail))
}

// Update rewrites a detail's date, amounts and description.
func (h *DetailHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	var req dto.UpdateDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	detail, err := h.detailUC.UpdateDetail(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update detail", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DetailFromDomain(detail))
}

// Delete removes a detail and its vouchers.
func (h *DetailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing detail ID", "")
		return
	}

	if err := h.detailUC.DeleteDetail(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete detail", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByAccount lists an account's details, newest first.
func (h *DetailHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	input := usecase.ListDetailsInput{
		AccountID:      accountID,
		From:           parseTimeQuery(r, "from"),
		To:             parseTimeQuery(r, "to"),
		WithoutVoucher: r.URL.Query().Get("without_voucher") == "true",
		Limit:          parseIntQuery(r, "limit", usecase.DefaultListLimit),
		Offset:         parseIntQuery(r, "offset", 0),
	}

	details, err := h.detailUC.ListDetails(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list details", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDetailsResponse{
		Details: dto.DetailsFromDomain(details),
		Total:   int64(len(details)),
	})
}

// Rebuild recomputes every balance of one account from scratch.
func (h *DetailHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	rows, err := h.detailUC.RebuildAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to rebuild balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RebuildResponse{RowsRewritten: rows})
}

// RebuildAll recomputes every balance of every account.
func (h *DetailHandler) RebuildAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.detailUC.RebuildAll(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to rebuild balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RebuildResponse{RowsRewritten: rows})
}

// Verify checks an account's stored balances against recomputed ones.
func (h *DetailHandler) Verify(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	drifted, err := h.detailUC.VerifyAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to verify balances", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VerifyResponse{
		Consistent: len(drifted) == 0,
		Drifted:    drifted,
	})
}
