package record

import "errors"

// Sentinel errors for the decision-record codec.
var (
	// ErrArraySizeMismatch indicates perFlowCounters does not match
	// flowBucketCount. The writer fails closed.
	ErrArraySizeMismatch = errors.New("record: per-flow counter count mismatch")

	// ErrDegradationMismatch indicates degradationLevel != 0 without a
	// present reason code under schema v2.4 or later.
	ErrDegradationMismatch = errors.New("record: degradation level without reason code")

	// ErrUnknownEnum indicates a raw value outside a closed enumeration.
	// Decoding is codec-strict; unknown variants are rejected.
	ErrUnknownEnum = errors.New("record: unknown enum value")

	// ErrShortBuffer indicates the input ended before the positional
	// layout was complete.
	ErrShortBuffer = errors.New("record: short buffer")

	// ErrTrailingBytes indicates input continued past the decoded record.
	ErrTrailingBytes = errors.New("record: trailing bytes after record")

	// ErrHashMismatch indicates the trailing decision hash does not match
	// the hash recomputed over the preceding bytes.
	ErrHashMismatch = errors.New("record: decision hash mismatch")

	// ErrBadFixtureHeader indicates a fixture file header failed
	// verification.
	ErrBadFixtureHeader = errors.New("record: bad fixture header")
)
