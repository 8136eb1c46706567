package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	adaptershttp "github.com/iho/bookkeeper/internal/adapter/http"
	"github.com/iho/bookkeeper/internal/adapter/http/dto"
	"github.com/iho/bookkeeper/internal/adapter/http/handler"
	"github.com/iho/bookkeeper/internal/adapter/repository/postgres"
	redisrepo "github.com/iho/bookkeeper/internal/adapter/repository/redis"
	"github.com/iho/bookkeeper/internal/adapter/storage"
	infraredis "github.com/iho/bookkeeper/internal/infrastructure/redis"
	"github.com/iho/bookkeeper/internal/usecase"
	"github.com/iho/bookkeeper/tests/testutil"
)

// testStack wires the full HTTP stack against real backing services.
type testStack struct {
	Router http.Handler
	DB     *testutil.TestDB
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	testDB := testutil.NewTestDB(t)
	t.Cleanup(testDB.Cleanup)
	testDB.TruncateAll(ctx)

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}
	redisClient, err := infraredis.NewClient(ctx, redisURL)
	if err != nil {
		t.Fatalf("failed to connect to redis: %v", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	pool := testDB.Pool
	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	detailRepo := postgres.NewDetailRepository(pool)
	voucherRepo := postgres.NewVoucherRepository(pool)
	idGen := postgres.NewULIDGenerator()
	retrier := postgres.NewRetrier()
	fileStore := storage.NewLocalStore(t.TempDir())

	accountUC := usecase.NewAccountUseCase(accountRepo, idGen)
	detailUC := usecase.NewDetailUseCase(txManager, detailRepo, accountRepo, voucherRepo, fileStore, idGen, retrier, nil, nil)
	voucherUC := usecase.NewVoucherUseCase(txManager, voucherRepo, detailRepo, fileStore, idGen, nil)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		DetailHandler:    handler.NewDetailHandler(detailUC),
		VoucherHandler:   handler.NewVoucherHandler(voucherUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		IdempotencyStore: redisrepo.NewIdempotencyStore(redisClient),
	})

	return &testStack{Router: router, DB: testDB}
}

func (s *testStack) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, r)

	return w
}

func (s *testStack) createAccount(t *testing.T, name string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/v1/accounts/", dto.CreateAccountRequest{Name: name})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create account: %d: %s", w.Code, w.Body.String())
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse account response: %v", err)
	}

	return resp.ID
}

func day(n int) time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}
