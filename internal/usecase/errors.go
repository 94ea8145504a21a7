package usecase

import crerr "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = crerr.New("invalid input")
	// ErrUpstream marks any failed call to the sports statistics provider:
	// non-2xx status, transport error, timeout, or an undecodable payload.
	ErrUpstream              = crerr.New("upstream request failed")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)
