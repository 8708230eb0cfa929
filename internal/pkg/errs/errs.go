// Package errs carries the error plumbing for the booking engine.
// Repositories wrap low-level failures with context, usecases mark
// them with the domain sentinels declared in this package, and the
// handler layer maps sentinels to HTTP statuses without ever parsing
// messages.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original cause and stack.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New builds a stack-carrying error.
func New(msg string) error {
	return cr.New(msg)
}

// Mark tags err with a sentinel so callers can match it with
// errors.Is while the underlying cause stays intact.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
