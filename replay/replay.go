// Package replay implements journal recording and byte-exact replay.
package replay

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
	"github.com/Kyle-Wang0211/Aether3D-sub019/engine"
	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
)

// Sentinel errors for replay verification.
var (
	// ErrReplayMismatch indicates a checkpoint re-derivation diverged
	// from the recorded expectation.
	ErrReplayMismatch = errors.New("replay: re-derivation mismatch")

	// ErrBrokenChain indicates a checkpoint's prevDigest does not match
	// the digest of the preceding checkpoint.
	ErrBrokenChain = errors.New("replay: journal hash chain broken")
)

// MismatchError reports the first divergent checkpoint.
type MismatchError struct {
	// Index is the zero-based checkpoint index.
	Index int
	// Field names what diverged: "bytes" or "digest".
	Field string
}

// Error renders the mismatch position.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: checkpoint %d diverged on %s", e.Index, e.Field)
}

// Unwrap links the mismatch to ErrReplayMismatch for errors.Is.
func (e *MismatchError) Unwrap() error { return ErrReplayMismatch }

// Checkpoint is one journal record: the inputs since the previous
// checkpoint and the expected export they produced.
type Checkpoint struct {
	Frames         []engine.FrameInput
	ExportedAtMs   int64
	ExpectedBytes  []byte
	ExpectedDigest [digest.Size]byte
	// PrevDigest chains this checkpoint to its predecessor; the first
	// checkpoint carries 32 zero bytes.
	PrevDigest [digest.Size]byte
}

// Journal is a recorded trace: the threshold table and window capacity
// the session ran under, and its ordered checkpoints.
type Journal struct {
	Thresholds     validity.Thresholds
	WindowCapacity int
	Checkpoints    []Checkpoint
}

// Recorder drives a live engine while capturing the journal.
type Recorder struct {
	eng     *engine.Engine
	journal Journal
	pending []engine.FrameInput
	last    [digest.Size]byte
}

// NewRecorder returns a recorder over a fresh engine with the given
// per-patch window capacity (non-positive selects the engine default).
// The capacity is recorded in the journal so replay reconstructs the
// same windows.
func NewRecorder(th validity.Thresholds, windowCapacity int) (*Recorder, error) {
	if windowCapacity <= 0 {
		windowCapacity = engine.DefaultWindowCapacity
	}
	eng, err := engine.NewEngine(th, engine.WithWindowCapacity(windowCapacity))
	if err != nil {
		return nil, err
	}

	return &Recorder{
		eng:     eng,
		journal: Journal{Thresholds: th, WindowCapacity: windowCapacity},
	}, nil
}

// Process feeds one frame to the engine and records it for the next
// checkpoint. A frame the engine rejects is not recorded: replay must
// see exactly the accepted inputs.
func (r *Recorder) Process(in engine.FrameInput) error {
	if err := r.eng.ProcessObservation(in); err != nil {
		return err
	}
	r.pending = append(r.pending, in)

	return nil
}

// Checkpoint exports the engine state and appends a journal record
// carrying the frames since the previous checkpoint, the expected
// canonical bytes and digest, and the chain link.
func (r *Recorder) Checkpoint(exportedAtMs int64) error {
	snap := r.eng.Snapshot(exportedAtMs)
	raw, d, err := engine.ExportCanonical(snap)
	if err != nil {
		return err
	}

	r.journal.Checkpoints = append(r.journal.Checkpoints, Checkpoint{
		Frames:         r.pending,
		ExportedAtMs:   exportedAtMs,
		ExpectedBytes:  raw,
		ExpectedDigest: d,
		PrevDigest:     r.last,
	})
	r.pending = nil
	r.last = d

	return nil
}

// Journal returns the recorded trace.
func (r *Recorder) Journal() Journal { return r.journal }

// Replay verifies the journal's hash chain, then re-executes the whole
// pipeline on a fresh engine and asserts byte-exact identity of every
// checkpoint's canonical bytes and digest. The first divergence is
// returned as a MismatchError.
func Replay(j Journal) error {
	// 1) Chain verification before any recomputation.
	var prev [digest.Size]byte
	for i, cp := range j.Checkpoints {
		if cp.PrevDigest != prev {
			return fmt.Errorf("%w: checkpoint %d", ErrBrokenChain, i)
		}
		prev = cp.ExpectedDigest
	}

	// 2) Re-execute and compare.
	capacity := j.WindowCapacity
	if capacity <= 0 {
		capacity = engine.DefaultWindowCapacity
	}
	eng, err := engine.NewEngine(j.Thresholds, engine.WithWindowCapacity(capacity))
	if err != nil {
		return err
	}
	for i, cp := range j.Checkpoints {
		for _, in := range cp.Frames {
			if err = eng.ProcessObservation(in); err != nil {
				return err
			}
		}

		snap := eng.Snapshot(cp.ExportedAtMs)
		raw, d, err := engine.ExportCanonical(snap)
		if err != nil {
			return err
		}
		if !bytes.Equal(raw, cp.ExpectedBytes) {
			return &MismatchError{Index: i, Field: "bytes"}
		}
		if d != cp.ExpectedDigest {
			return &MismatchError{Index: i, Field: "digest"}
		}
	}

	return nil
}
