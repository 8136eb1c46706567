package usecase

import "sync"

// accountLocks serializes mutating ledger operations per account. Propagate
// and shift read-then-write ranges of rows, so two mutations on the same
// account must never interleave; different accounts never share rows and may
// run concurrently.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *accountLocks) Lock(accountID string) {
	l.mu.Lock()
	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	l.mu.Unlock()

	m.Lock()
}

func (l *accountLocks) Unlock(accountID string) {
	l.mu.Lock()
	m := l.locks[accountID]
	l.mu.Unlock()

	m.Unlock()
}
