// Package engine defines the per-patch evidence model and snapshot types.
package engine

import (
	"math"

	"github.com/Kyle-Wang0211/Aether3D-sub019/eeb"
	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
)

// Verdict is the externally supplied per-frame quality verdict.
type Verdict uint8

const (
	// VerdictGood: the frame contributes evidence.
	VerdictGood Verdict = iota
	// VerdictSuspect: the frame is counted as an error; evidence holds.
	VerdictSuspect
	// VerdictReject: the frame is discarded from accumulation but still
	// counted.
	VerdictReject
)

// VisualState is the coverage display ladder. The order is semantic:
// the display may only climb.
type VisualState uint8

const (
	// StateBlack: no usable coverage yet.
	StateBlack VisualState = iota
	// StateDarkGray: minimal coverage.
	StateDarkGray
	// StateLightGray: partial coverage.
	StateLightGray
	// StateWhite: near-complete coverage.
	StateWhite
	// StateOriginal: full coverage with strict soft-display support.
	StateOriginal
)

// visualNames renders visual states for the inspection format.
var visualNames = map[VisualState]string{
	StateBlack:     "black",
	StateDarkGray:  "darkGray",
	StateLightGray: "lightGray",
	StateWhite:     "white",
	StateOriginal:  "original",
}

// String renders the state name.
func (s VisualState) String() string {
	if n, ok := visualNames[s]; ok {
		return n
	}

	return "unknown"
}

// PatchEntry is the accumulated evidence state of one patch.
// Evidence is non-decreasing across successful updates.
type PatchEntry struct {
	Evidence         float64
	LastUpdateMs     int64
	ObservationCount uint64
	BestFrameID      string // empty when no good frame has landed yet
	ErrorCount       uint64
	ErrorStreak      uint32
	LastGoodUpdateMs int64
	Level            eeb.Level
}

// FrameInput is one frame's contribution to a patch.
type FrameInput struct {
	// Observation is the immutable per-frame measurement.
	Observation validity.Observation
	// GateQuality and SoftQuality are externally computed scalars in
	// [0,1].
	GateQuality float64
	SoftQuality float64
	// Verdict decides whether the frame contributes evidence.
	Verdict Verdict
	// Pairs carries externally computed pair metrics for the patch's
	// current window; missing entries are permitted.
	Pairs map[validity.PairKey]validity.PairMetrics
	// AggregatedGate and AggregatedSoft are the caller-specified session
	// display scalars in [0,1].
	AggregatedGate float64
	AggregatedSoft float64
}

// Snapshot is an immutable view of the engine state, safe to share
// across threads once constructed.
type Snapshot struct {
	Patches          map[string]PatchEntry
	GateDisplay      float64
	SoftDisplay      float64
	LastTotalDisplay float64
	Visual           VisualState
	ExportedAtMs     int64
	SchemaVersion    string
}

// canonicalScalar validates a display or quality scalar at ingest:
// finite, normal-or-zero, inside [0,1].
func canonicalScalar(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNonCanonicalNumber
	}
	if x != 0 && math.Abs(x) < math.SmallestNonzeroFloat64*float64(1<<52) {
		return ErrNonCanonicalNumber // subnormal
	}
	if x < 0 || x > 1 {
		return ErrNonCanonicalNumber
	}

	return nil
}
