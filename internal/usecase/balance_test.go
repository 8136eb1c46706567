package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
	"github.com/iho/bookkeeper/internal/usecase/mocks"
)

func seedDetail(t *testing.T, repo *mocks.MockDetailRepository, id string, dayN int, earning, expense, balance string) *domain.Detail {
	t.Helper()

	detail := &domain.Detail{
		ID:        id,
		AccountID: "acc-1",
		Date:      day(dayN),
		Earning:   decimal.RequireFromString(earning),
		Expense:   decimal.RequireFromString(expense),
		Balance:   decimal.RequireFromString(balance),
	}

	if err := repo.Create(context.Background(), nil, detail); err != nil {
		t.Fatalf("seed detail %s: %v", id, err)
	}

	return detail
}

func TestBalanceEngine_ComputeOwnBalance(t *testing.T) {
	tests := []struct {
		name   string
		seed   func(t *testing.T, repo *mocks.MockDetailRepository)
		detail *domain.Detail
		want   string
	}{
		{
			name: "start of ledger",
			seed: func(t *testing.T, repo *mocks.MockDetailRepository) {},
			detail: &domain.Detail{
				AccountID: "acc-1",
				Date:      day(1),
				Earning:   decimal.NewFromInt(100),
			},
			want: "100",
		},
		{
			name: "after predecessor",
			seed: func(t *testing.T, repo *mocks.MockDetailRepository) {
				seedDetail(t, repo, "d1", 1, "100", "0", "100")
			},
			detail: &domain.Detail{
				AccountID: "acc-1",
				Date:      day(2),
				Expense:   decimal.NewFromInt(30),
			},
			want: "70",
		},
		{
			name: "nearest predecessor wins",
			seed: func(t *testing.T, repo *mocks.MockDetailRepository) {
				seedDetail(t, repo, "d1", 1, "100", "0", "100")
				seedDetail(t, repo, "d2", 3, "50", "0", "150")
			},
			detail: &domain.Detail{
				AccountID: "acc-1",
				Date:      day(4),
				Earning:   decimal.NewFromInt(5),
			},
			want: "155",
		},
		{
			// The row being moved still sits at its old date in the store.
			name: "own stale row is not its predecessor",
			seed: func(t *testing.T, repo *mocks.MockDetailRepository) {
				seedDetail(t, repo, "d1", 1, "100", "0", "100")
				seedDetail(t, repo, "d2", 2, "50", "0", "150")
			},
			detail: &domain.Detail{
				ID:        "d2",
				AccountID: "acc-1",
				Date:      day(3),
				Earning:   decimal.NewFromInt(50),
			},
			want: "150",
		},
		{
			name: "other accounts ignored",
			seed: func(t *testing.T, repo *mocks.MockDetailRepository) {
				err := repo.Create(context.Background(), nil, &domain.Detail{
					ID:        "other",
					AccountID: "acc-2",
					Date:      day(1),
					Earning:   decimal.NewFromInt(999),
					Balance:   decimal.NewFromInt(999),
				})
				if err != nil {
					t.Fatalf("seed detail: %v", err)
				}
			},
			detail: &domain.Detail{
				AccountID: "acc-1",
				Date:      day(2),
				Earning:   decimal.NewFromInt(10),
			},
			want: "10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockDetailRepository()
			tt.seed(t, repo)

			engine := usecase.NewBalanceEngine(repo)

			if err := engine.ComputeOwnBalance(context.Background(), nil, tt.detail); err != nil {
				t.Fatalf("compute own balance: %v", err)
			}

			want := decimal.RequireFromString(tt.want)
			if !tt.detail.Balance.Equal(want) {
				t.Errorf("expected balance %s, got %s", want, tt.detail.Balance)
			}
		})
	}
}

func TestBalanceEngine_PropagateFrom(t *testing.T) {
	repo := mocks.NewMockDetailRepository()
	seedDetail(t, repo, "d1", 1, "100", "0", "100")
	seedDetail(t, repo, "d2", 2, "50", "0", "150")
	seedDetail(t, repo, "d3", 3, "0", "20", "130")

	engine := usecase.NewBalanceEngine(repo)

	rows, err := engine.PropagateFrom(context.Background(), nil, "acc-1", day(1), decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}

	if rows != 2 {
		t.Errorf("expected 2 rows touched, got %d", rows)
	}

	for id, want := range map[string]int64{"d1": 100, "d2": 160, "d3": 140} {
		d, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get detail %s: %v", id, err)
		}

		if !d.Balance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %s: expected balance %d, got %s", id, want, d.Balance)
		}
	}
}

func TestBalanceEngine_PropagateFrom_ZeroDeltaIsNoop(t *testing.T) {
	repo := mocks.NewMockDetailRepository()
	seedDetail(t, repo, "d1", 1, "100", "0", "100")

	engine := usecase.NewBalanceEngine(repo)

	rows, err := engine.PropagateFrom(context.Background(), nil, "acc-1", day(0), decimal.Zero)
	if err != nil {
		t.Fatalf("propagate: %v", err)
	}

	if rows != 0 {
		t.Errorf("expected no rows touched, got %d", rows)
	}
}

func TestBalanceEngine_ShiftRange(t *testing.T) {
	repo := mocks.NewMockDetailRepository()
	seedDetail(t, repo, "d1", 1, "100", "0", "100")
	seedDetail(t, repo, "d2", 2, "50", "0", "150")
	seedDetail(t, repo, "d3", 3, "0", "20", "130")
	seedDetail(t, repo, "d4", 4, "10", "0", "140")

	engine := usecase.NewBalanceEngine(repo)

	// Lower bound exclusive, upper bound inclusive.
	rows, err := engine.ShiftRange(context.Background(), nil, "acc-1", day(1), day(3), decimal.NewFromInt(-50))
	if err != nil {
		t.Fatalf("shift range: %v", err)
	}

	if rows != 2 {
		t.Errorf("expected 2 rows touched, got %d", rows)
	}

	for id, want := range map[string]int64{"d1": 100, "d2": 100, "d3": 80, "d4": 140} {
		d, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get detail %s: %v", id, err)
		}

		if !d.Balance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %s: expected balance %d, got %s", id, want, d.Balance)
		}
	}
}

func TestBalanceEngine_RebuildAccount(t *testing.T) {
	repo := mocks.NewMockDetailRepository()
	seedDetail(t, repo, "d1", 1, "100", "0", "7")
	seedDetail(t, repo, "d2", 2, "0", "20", "7")
	seedDetail(t, repo, "d3", 3, "50", "0", "7")

	engine := usecase.NewBalanceEngine(repo)

	rows, err := engine.RebuildAccount(context.Background(), nil, "acc-1")
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if rows != 3 {
		t.Errorf("expected 3 rows rewritten, got %d", rows)
	}

	for id, want := range map[string]int64{"d1": 100, "d2": 80, "d3": 130} {
		d, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get detail %s: %v", id, err)
		}

		if !d.Balance.Equal(decimal.NewFromInt(want)) {
			t.Errorf("row %s: expected balance %d, got %s", id, want, d.Balance)
		}
	}

	// Idempotent: a second pass rewrites the same values.
	if _, err := engine.RebuildAccount(context.Background(), nil, "acc-1"); err != nil {
		t.Fatalf("second rebuild: %v", err)
	}

	drifted, err := engine.VerifyAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if len(drifted) != 0 {
		t.Errorf("expected consistent chain, drift on %v", drifted)
	}
}

func TestBalanceEngine_VerifyAccount_ReportsDrift(t *testing.T) {
	repo := mocks.NewMockDetailRepository()
	seedDetail(t, repo, "d1", 1, "100", "0", "100")
	seedDetail(t, repo, "d2", 2, "50", "0", "999")

	engine := usecase.NewBalanceEngine(repo)

	drifted, err := engine.VerifyAccount(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if len(drifted) != 1 || drifted[0] != "d2" {
		t.Errorf("expected drift on d2, got %v", drifted)
	}
}
