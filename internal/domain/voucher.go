package domain

import "time"

// Voucher is a document attached to a detail. FileName doubles as the
// reference into the file store. Vouchers are owned by their detail and are
// cascade-deleted with it, backing files included.
type Voucher struct {
	ID        string
	DetailID  string
	FileName  string
	CreatedAt time.Time
}
