package domain

import "time"

// Account groups details into one independently balanced ledger.
type Account struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
