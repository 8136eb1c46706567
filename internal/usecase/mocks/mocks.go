package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/bookkeeper/internal/domain"
	"github.com/iho/bookkeeper/internal/usecase"
)

// MockDetailRepository is an in-memory implementation of DetailRepository.
// It keeps real ordering semantics (unique dates per account, descending
// listings, range updates) so use case tests exercise the balance chain
// against honest store behaviour. Func fields override single methods.
type MockDetailRepository struct {
	mu      sync.RWMutex
	details map[string]*domain.Detail

	CreateFunc func(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error
	UpdateFunc func(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error
	DeleteFunc func(ctx context.Context, tx usecase.Transaction, id string) error
}

func NewMockDetailRepository() *MockDetailRepository {
	return &MockDetailRepository{details: make(map[string]*domain.Detail)}
}

func (m *MockDetailRepository) GetByID(ctx context.Context, id string) (*domain.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.details[id]
	if !ok {
		return nil, domain.ErrDetailNotFound
	}

	copied := *d

	return &copied, nil
}

func (m *MockDetailRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Detail, error) {
	return m.GetByID(ctx, id)
}

func (m *MockDetailRepository) FindPredecessor(ctx context.Context, tx usecase.Transaction, accountID string, date time.Time, excludeID string) (*domain.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var best *domain.Detail

	for _, d := range m.details {
		if d.AccountID != accountID || d.ID == excludeID || !d.Date.Before(date) {
			continue
		}

		if best == nil || d.Date.After(best.Date) {
			best = d
		}
	}

	if best == nil {
		return nil, nil
	}

	copied := *best

	return &copied, nil
}

func (m *MockDetailRepository) ListByAccount(ctx context.Context, accountID string, filter usecase.DetailFilter) ([]*domain.Detail, error) {
	all, err := m.ListAllByAccount(ctx, nil, accountID)
	if err != nil {
		return nil, err
	}

	var filtered []*domain.Detail

	for _, d := range all {
		if filter.From != nil && d.Date.Before(*filter.From) {
			continue
		}

		if filter.To != nil && d.Date.After(*filter.To) {
			continue
		}

		filtered = append(filtered, d)
	}

	if filter.Offset > 0 {
		if filter.Offset >= len(filtered) {
			return nil, nil
		}

		filtered = filtered[filter.Offset:]
	}

	if filter.Limit > 0 && len(filtered) > filter.Limit {
		filtered = filtered[:filter.Limit]
	}

	return filtered, nil
}

func (m *MockDetailRepository) ListAllByAccount(ctx context.Context, tx usecase.Transaction, accountID string) ([]*domain.Detail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var details []*domain.Detail

	for _, d := range m.details {
		if d.AccountID == accountID {
			copied := *d
			details = append(details, &copied)
		}
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Date.After(details[j].Date)
	})

	return details, nil
}

func (m *MockDetailRepository) Create(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, detail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.details {
		if d.AccountID == detail.AccountID && d.Date.Equal(detail.Date) {
			return domain.ErrDateCollision
		}
	}

	copied := *detail
	m.details[detail.ID] = &copied

	return nil
}

func (m *MockDetailRepository) Update(ctx context.Context, tx usecase.Transaction, detail *domain.Detail) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, detail)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.details[detail.ID]; !ok {
		return domain.ErrDetailNotFound
	}

	copied := *detail
	m.details[detail.ID] = &copied

	return nil
}

func (m *MockDetailRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.details[id]
	if !ok {
		return domain.ErrDetailNotFound
	}

	d.Balance = balance

	return nil
}

func (m *MockDetailRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.details[id]; !ok {
		return domain.ErrDetailNotFound
	}

	delete(m.details, id)

	return nil
}

func (m *MockDetailRepository) AddToBalanceAfter(ctx context.Context, tx usecase.Transaction, accountID string, date time.Time, delta decimal.Decimal) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64

	for _, d := range m.details {
		if d.AccountID == accountID && d.Date.After(date) {
			d.Balance = d.Balance.Add(delta)
			count++
		}
	}

	return count, nil
}

func (m *MockDetailRepository) AddToBalanceBetween(ctx context.Context, tx usecase.Transaction, accountID string, fromExclusive, toInclusive time.Time, delta decimal.Decimal) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64

	for _, d := range m.details {
		if d.AccountID == accountID && d.Date.After(fromExclusive) && !d.Date.After(toInclusive) {
			d.Balance = d.Balance.Add(delta)
			count++
		}
	}

	return count, nil
}

// MockAccountRepository is an in-memory implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc  func(ctx context.Context, account *domain.Account) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account

	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var accounts []*domain.Account
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })

	if offset >= len(accounts) {
		return nil, nil
	}

	accounts = accounts[offset:]
	if limit > 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}

	return accounts, nil
}

// MockVoucherRepository is an in-memory implementation of VoucherRepository.
type MockVoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]*domain.Voucher

	CreateFunc func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error
}

func NewMockVoucherRepository() *MockVoucherRepository {
	return &MockVoucherRepository{vouchers: make(map[string]*domain.Voucher)}
}

func (m *MockVoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, voucher)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.vouchers[voucher.ID] = voucher

	return nil
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.vouchers[id]
	if !ok {
		return nil, domain.ErrVoucherNotFound
	}

	return v, nil
}

func (m *MockVoucherRepository) ListByDetail(ctx context.Context, detailID string) ([]*domain.Voucher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var vouchers []*domain.Voucher

	for _, v := range m.vouchers {
		if v.DetailID == detailID {
			vouchers = append(vouchers, v)
		}
	}

	sort.Slice(vouchers, func(i, j int) bool { return vouchers[i].ID < vouchers[j].ID })

	return vouchers, nil
}

func (m *MockVoucherRepository) ListByDetailForUpdate(ctx context.Context, tx usecase.Transaction, detailID string) ([]*domain.Voucher, error) {
	return m.ListByDetail(ctx, detailID)
}

func (m *MockVoucherRepository) DeleteByDetail(ctx context.Context, tx usecase.Transaction, detailID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, v := range m.vouchers {
		if v.DetailID == detailID {
			delete(m.vouchers, id)
		}
	}

	return nil
}

func (m *MockVoucherRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.vouchers[id]; !ok {
		return domain.ErrVoucherNotFound
	}

	delete(m.vouchers, id)

	return nil
}

// Count reports how many voucher rows are stored.
func (m *MockVoucherRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vouchers)
}

// MockFileStore is an in-memory implementation of FileStore.
type MockFileStore struct {
	mu    sync.RWMutex
	files map[string][]byte

	// RemoveErr, when set, makes every Remove fail with it.
	RemoveErr error
}

func NewMockFileStore() *MockFileStore {
	return &MockFileStore{files: make(map[string][]byte)}
}

func (m *MockFileStore) Save(ctx context.Context, name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data

	return nil
}

func (m *MockFileStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("file %s does not exist", name)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MockFileStore) Remove(ctx context.Context, name string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)

	return nil
}

// Count reports how many files are stored.
func (m *MockFileStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.files)
}

// MockTransaction is a no-op Transaction recording its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}

	return nil
}

// MockTxManager hands out MockTransactions.
type MockTxManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)

	return tx, nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++

	return fmt.Sprintf("id-%03d", m.next)
}

// MockRetrier runs the operation exactly once.
type MockRetrier struct{}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockCache is an in-memory implementation of Cache.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.entries[key]
	if !ok {
		return nil, fmt.Errorf("cache miss: %s", key)
	}

	return data, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value

	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)

	return nil
}
