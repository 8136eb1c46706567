package domain

import "errors"

var (
	// ErrValidation marks malformed or missing detail fields, rejected
	// before any store write.
	ErrValidation = errors.New("validation failed")

	// ErrDateCollision is the unique-date constraint on insert. Recovered
	// once by bumping the timestamp one second; fatal on the second hit.
	ErrDateCollision = errors.New("a detail with this date already exists in the account")

	ErrDetailNotFound  = errors.New("detail not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrVoucherNotFound = errors.New("voucher not found")

	// ErrAccountImmutable is returned when an update tries to move a detail
	// between accounts.
	ErrAccountImmutable = errors.New("a detail cannot be moved to another account")

	// ErrVoucherFileIO wraps file store failures. During a cascade delete it
	// aborts the whole unit of work so the row is never orphaned from its files.
	ErrVoucherFileIO = errors.New("voucher file operation failed")
)
