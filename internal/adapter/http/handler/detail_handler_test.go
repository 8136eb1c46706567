package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
	"github.com/iho/bookkeeper/internal/usecase/mocks"
)

type detailServiceStub struct {
	createFn     func(ctx context.Context, input usecase.CreateDetailInput) (*domain.Detail, error)
	getFn        func(ctx context.Context, id string) (*domain.Detail, error)
	updateFn     func(ctx context.Context, input usecase.UpdateDetailInput) (*domain.Detail, error)
	deleteFn     func(ctx context.Context, id string) error
	listFn       func(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error)
	rebuildFn    func(ctx context.Context, accountID string) (int, error)
	rebuildAllFn func(ctx context.Context) (int, error)
	verifyFn     func(ctx context.Context, accountID string) ([]string, error)
}

func (s *detailServiceStub) CreateDetail(ctx context.Context, input usecase.CreateDetailInput) (*domain.Detail, error) {
	return s.createFn(ctx, input)
}

func (s *detailServiceStub) GetDetail(ctx context.Context, id string) (*domain.Detail, error) {
	return s.getFn(ctx, id)
}

func (s *detailServiceStub) UpdateDetail(ctx context.Context, input usecase.UpdateDetailInput) (*domain.Detail, error) {
	return s.updateFn(ctx, input)
}

func (s *detailServiceStub) DeleteDetail(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *detailServiceStub) ListDetails(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error) {
	return s.listFn(ctx, input)
}

func (s *detailServiceStub) RebuildAccount(ctx context.Context, accountID string) (int, error) {
	return s.rebuildFn(ctx, accountID)
}

func (s *detailServiceStub) RebuildAll(ctx context.Context) (int, error) {
	return s.rebuildAllFn(ctx)
}

func (s *detailServiceStub) VerifyAccount(ctx context.Context, accountID string) ([]string, error) {
	return s.verifyFn(ctx, accountID)
}

func sampleDetail() *domain.Detail {
	return &domain.Detail{
		ID:          "det-1",
		AccountID:   "acc-1",
		Date:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Earning:     decimal.NewFromInt(100),
		Expense:     decimal.Zero,
		Description: "invoice",
		Balance:     decimal.NewFromInt(100),
	}
}

func TestDetailHandler_Create_Success(t *testing.T) {
	var captured usecase.CreateDetailInput
	handler := NewDetailHandler(&detailServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateDetailInput) (*domain.Detail, error) {
			captured = input
			return sampleDetail(), nil
		},
	})

	earning := decimal.NewFromInt(100)
	body, _ := json.Marshal(dto.CreateDetailRequest{
		AccountID:   "acc-1",
		Date:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Earning:     &earning,
		Description: "invoice",
	})

	req := httptest.NewRequest(http.MethodPost, "/details", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || captured.Earning == nil || !captured.Earning.Equal(earning) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.DetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "det-1" || !resp.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestDetailHandler_Create_DateCollision(t *testing.T) {
	handler := NewDetailHandler(&detailServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateDetailInput) (*domain.Detail, error) {
			return nil, domain.ErrDateCollision
		},
	})

	body, _ := json.Marshal(dto.CreateDetailRequest{
		AccountID: "acc-1",
		Date:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodPost, "/details", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestDetailHandler_Update_AccountChangeRejected(t *testing.T) {
	handler := NewDetailHandler(&detailServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateDetailInput) (*domain.Detail, error) {
			return nil, domain.ErrAccountImmutable
		},
	})

	body, _ := json.Marshal(dto.UpdateDetailRequest{
		AccountID: "acc-2",
		Date:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})

	req := httptest.NewRequest(http.MethodPut, "/details/det-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "det-1")
	rec := httptest.NewRecorder()

	handler.Update(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestDetailHandler_Delete_Success(t *testing.T) {
	var deleted string
	handler := NewDetailHandler(&detailServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/details/det-1", nil)
	req = setChiURLParam(req, "id", "det-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "det-1" {
		t.Fatalf("expected det-1 to be deleted, got %q", deleted)
	}
}

func TestDetailHandler_ListByAccount_ParsesFilters(t *testing.T) {
	var captured usecase.ListDetailsInput
	handler := NewDetailHandler(&detailServiceStub{
		listFn: func(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error) {
			captured = input
			return []*domain.Detail{sampleDetail()}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet,
		"/accounts/acc-1/details?from=2024-05-01&to=2024-05-31&without_voucher=true&limit=5", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || !captured.WithoutVoucher || captured.Limit != 5 {
		t.Fatalf("expected filters to pass through, got %+v", captured)
	}
	if captured.From == nil || !captured.From.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected from filter to parse, got %v", captured.From)
	}
	if captured.To == nil || !captured.To.Equal(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected to filter to parse, got %v", captured.To)
	}
}

func TestDetailHandler_ListByAccount_DefaultLimit(t *testing.T) {
	var captured usecase.ListDetailsInput
	handler := NewDetailHandler(&detailServiceStub{
		listFn: func(ctx context.Context, input usecase.ListDetailsInput) ([]*domain.Detail, error) {
			captured = input
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/details", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.ListByAccount(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Limit != usecase.DefaultListLimit {
		t.Fatalf("expected default limit %d, got %d", usecase.DefaultListLimit, captured.Limit)
	}
}

func TestDetailHandler_ListByAccount_DefaultRequestHitsCache(t *testing.T) {
	detailRepo := mocks.NewMockDetailRepository()
	accountRepo := mocks.NewMockAccountRepository()
	ctx := context.Background()

	if err := accountRepo.Create(ctx, &domain.Account{ID: "acc-1", Name: "cash"}); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	err := detailRepo.Create(ctx, nil, &domain.Detail{
		ID: "det-1", AccountID: "acc-1",
		Date:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Balance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("seed detail: %v", err)
	}

	uc := usecase.NewDetailUseCase(
		mocks.NewMockTxManager(), detailRepo, accountRepo,
		mocks.NewMockVoucherRepository(), mocks.NewMockFileStore(),
		mocks.NewMockIDGenerator(), mocks.NewMockRetrier(),
		mocks.NewMockCache(), nil,
	)
	handler := NewDetailHandler(uc)

	list := func() dto.ListDetailsResponse {
		req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/details", nil)
		req = setChiURLParam(req, "id", "acc-1")
		rec := httptest.NewRecorder()

		handler.ListByAccount(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.ListDetailsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		return resp
	}

	if got := list(); len(got.Details) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(got.Details))
	}

	// The first request populated the cache. A row written behind the use
	// case stays invisible, proving the default page is served from cache.
	err = detailRepo.Create(ctx, nil, &domain.Detail{
		ID: "det-2", AccountID: "acc-1",
		Date: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("seed detail: %v", err)
	}

	if got := list(); len(got.Details) != 1 {
		t.Fatalf("expected the cached page of 1 detail, got %d", len(got.Details))
	}
}

func TestDetailHandler_Rebuild_ReportsRows(t *testing.T) {
	handler := NewDetailHandler(&detailServiceStub{
		rebuildFn: func(ctx context.Context, accountID string) (int, error) {
			if accountID != "acc-1" {
				t.Fatalf("expected acc-1, got %s", accountID)
			}
			return 42, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/rebuild", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Rebuild(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.RebuildResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RowsRewritten != 42 {
		t.Fatalf("expected 42 rows rewritten, got %d", resp.RowsRewritten)
	}
}

func TestDetailHandler_Verify_ReportsDrift(t *testing.T) {
	handler := NewDetailHandler(&detailServiceStub{
		verifyFn: func(ctx context.Context, accountID string) ([]string, error) {
			return []string{"det-7"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/accounts/acc-1/verify", nil)
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Verify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.VerifyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Consistent || len(resp.Drifted) != 1 || resp.Drifted[0] != "det-7" {
		t.Fatalf("expected drift report, got %+v", resp)
	}
}
