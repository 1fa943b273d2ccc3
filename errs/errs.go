// Package errs defines the sentinel error kinds shared by every codec in
// roadaux. Call sites wrap one of these with fmt.Errorf("%w: ...", ...) so
// callers can classify a failure with errors.Is without parsing strings.
package errs

import "errors"

var (
	// ErrMalformedStream covers an unexpected zero from a biased gamma/delta
	// decode, a truncated input, leftover bytes after a section body, or an
	// inflate failure.
	ErrMalformedStream = errors.New("roadaux: malformed stream")

	// ErrUnsupportedVersion covers a header version field other than the one
	// version this package understands.
	ErrUnsupportedVersion = errors.New("roadaux: unsupported version")

	// ErrInvariantViolation covers a caller bug, such as a restriction with
	// fewer than two links offered to the encoder.
	ErrInvariantViolation = errors.New("roadaux: invariant violation")

	// ErrLengthMismatch covers a key/value count mismatch on overlay join.
	ErrLengthMismatch = errors.New("roadaux: length mismatch")

	// ErrNetworkError covers a transport failure or a response from a remote
	// collaborator with a status other than 200 or 404.
	ErrNetworkError = errors.New("roadaux: network error")
)
