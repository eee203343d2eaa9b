package engine

import "errors"

// Sentinel errors for engine operations.
var (
	// ErrNonCanonicalNumber indicates a scalar that is NaN, infinite,
	// subnormal, or out of range was handed to the engine. Rejected at
	// ingest so no such value can reach a canonical rendering.
	ErrNonCanonicalNumber = errors.New("engine: non-canonical number at ingest")

	// ErrUnknownPatch indicates an operation referenced a patch id with
	// no accumulated state.
	ErrUnknownPatch = errors.New("engine: unknown patch id")

	// ErrRingCapacity indicates a ring buffer was constructed with a
	// non-positive capacity.
	ErrRingCapacity = errors.New("engine: ring capacity must be positive")
)
