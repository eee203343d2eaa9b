package canon

import "errors"

// Sentinel errors for canonical encoding.
var (
	// ErrLengthMismatch indicates a fixed-width field received a byte
	// slice of the wrong length. This is a precondition violation: the
	// writer fails closed and stays failed.
	ErrLengthMismatch = errors.New("canon: fixed-width field length mismatch")

	// ErrMalformedUUID indicates an identifier string failed RFC-4122
	// parsing and was rejected before reaching any digest.
	ErrMalformedUUID = errors.New("canon: malformed UUID")

	// ErrWriterFailed indicates Bytes() was called on a writer that has
	// already recorded a failure.
	ErrWriterFailed = errors.New("canon: writer in failed state")

	// ErrCountOverflow indicates an array count exceeded the single-byte
	// count prefix.
	ErrCountOverflow = errors.New("canon: array count exceeds u8 prefix")
)
