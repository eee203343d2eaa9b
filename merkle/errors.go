package merkle

import "errors"

// Sentinel errors for Merkle-log operations.
var (
	// ErrInvalidLeafIndex indicates a proof was requested for a leaf
	// index at or beyond the current tree size.
	ErrInvalidLeafIndex = errors.New("merkle: leaf index out of range")

	// ErrHashLength indicates a precomputed hash slice was not exactly
	// 32 bytes. This is a precondition violation; the log is untouched.
	ErrHashLength = errors.New("merkle: hash must be exactly 32 bytes")

	// ErrNotImplemented indicates consistency-proof generation, which
	// requires historical tree states the log does not retain.
	ErrNotImplemented = errors.New("merkle: consistency proofs not implemented")
)
