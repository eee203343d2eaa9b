// Package engine implements the evidence accumulator.
package engine

import (
	"sync"

	"github.com/Kyle-Wang0211/Aether3D-sub019/eeb"
	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
)

// patchState is the mutable per-patch record: the exported entry plus
// the observation window and pair-metric store feeding the validity
// model.
type patchState struct {
	entry  PatchEntry
	window *RingBuffer
	pairs  map[validity.PairKey]validity.PairMetrics
}

// Engine accumulates per-patch evidence for one capture session.
//
// All mutation happens under a single mutex: the engine has one logical
// owner, updates are applied atomically per observation, and observations
// are processed in call order. Reads happen on immutable Snapshots.
type Engine struct {
	mu sync.Mutex

	th       validity.Thresholds
	capacity int

	patches map[string]*patchState

	gateDisplay      float64
	softDisplay      float64
	lastTotalDisplay float64
	visual           VisualState
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithWindowCapacity sets the per-patch observation window size.
func WithWindowCapacity(n int) Option {
	return func(e *Engine) { e.capacity = n }
}

// NewEngine returns an empty engine classifying against th.
func NewEngine(th validity.Thresholds, opts ...Option) (*Engine, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		th:       th,
		capacity: DefaultWindowCapacity,
		patches:  make(map[string]*patchState),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.capacity <= 0 {
		return nil, ErrRingCapacity
	}

	return e, nil
}

// ProcessObservation applies one frame atomically: level escalation
// through the EEB predicate, counters, evidence accumulation by verdict,
// and the never-retreating session displays. Scalars are validated at
// ingest; on error no state changes.
func (e *Engine) ProcessObservation(in FrameInput) error {
	// 1) Ingest validation before taking the lock: a rejected frame must
	//    leave the engine untouched.
	for _, x := range []float64{in.GateQuality, in.SoftQuality, in.AggregatedGate, in.AggregatedSoft} {
		if err := canonicalScalar(x); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ps, err := e.patch(in.Observation.PatchID)
	if err != nil {
		return err
	}

	// 2) Extend the window and pair store, then escalate the level.
	ps.window.Push(in.Observation)
	for k, v := range in.Pairs {
		ps.pairs[k] = v
	}
	e.escalate(ps)

	// 3) Counters and verdict handling.
	ps.entry.ObservationCount++
	switch in.Verdict {
	case VerdictGood:
		// Evidence never decreases; best frame only on strict improvement.
		if in.GateQuality > ps.entry.Evidence {
			ps.entry.BestFrameID = in.Observation.ID
			ps.entry.Evidence = in.GateQuality
		}
		ps.entry.LastGoodUpdateMs = in.Observation.TimestampMs
		ps.entry.ErrorStreak = 0
	case VerdictSuspect:
		ps.entry.ErrorCount++
		ps.entry.ErrorStreak++
	case VerdictReject:
		// Discarded from accumulation; the count above still stands.
	}
	ps.entry.LastUpdateMs = in.Observation.TimestampMs

	// 4) Session displays never retreat.
	if in.AggregatedGate > e.gateDisplay {
		e.gateDisplay = in.AggregatedGate
	}
	if in.AggregatedSoft > e.softDisplay {
		e.softDisplay = in.AggregatedSoft
	}

	return nil
}

// escalate walks the patch level upward through the EEB predicate, one
// rung per satisfied validity tier. Downgrades are rejected by
// construction: only Allows-approved transitions apply.
func (e *Engine) escalate(ps *patchState) {
	window := ps.window.Items()

	// L0→L1 on a plausible observation.
	if ps.entry.Level == eeb.L0 {
		for _, o := range window {
			if validity.L1(o, e.th) == validity.OutcomeL1 {
				if eeb.Allows(eeb.L0, eeb.L1, eeb.NewValidObservation, false) {
					ps.entry.Level = eeb.L1
				}
				break
			}
		}
	}

	// L1→L2 on multi-view support.
	if ps.entry.Level == eeb.L1 {
		if validity.L2(window, ps.pairs, e.th) == validity.OutcomeL2 {
			if eeb.Allows(eeb.L1, eeb.L2, eeb.NewBaselineSatisfied, false) {
				ps.entry.Level = eeb.L2
			}
		}
	}

	// L2→L3 on photometric stability; the outcome picks core or strict.
	if ps.entry.Level == eeb.L2 {
		switch validity.L3(window, e.th) {
		case validity.OutcomeL3Strict:
			if eeb.Allows(eeb.L2, eeb.L3Strict, eeb.NewColorStabilitySatisfied, false) {
				ps.entry.Level = eeb.L3Strict
			}
		case validity.OutcomeL3Core:
			if eeb.Allows(eeb.L2, eeb.L3Core, eeb.NewColorStabilitySatisfied, false) {
				ps.entry.Level = eeb.L3Core
			}
		}
	}
}

// InheritLevel applies an epoch-migration inheritance to a patch carried
// over from a previous epoch. Only transitions the EEB predicate allows
// for the inheritance trigger apply; anything else returns false with
// state untouched.
func (e *Engine) InheritLevel(patchID string, to eeb.Level, crossEpoch bool) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ps, ok := e.patches[patchID]
	if !ok {
		return false, ErrUnknownPatch
	}
	if !eeb.Allows(ps.entry.Level, to, eeb.EpochMigrationInheritance, crossEpoch) {
		return false, nil
	}
	ps.entry.Level = to

	return true, nil
}

// UpdateVisual maps a coverage fraction onto the display ladder and
// applies it max-monotone. The top rung additionally requires the strict
// soft-display gate at the same moment. Coverage is validated at ingest.
func (e *Engine) UpdateVisual(coverage float64) (VisualState, error) {
	if err := canonicalScalar(coverage); err != nil {
		return StateBlack, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	candidate := StateBlack
	switch {
	case coverage >= coverageOriginal && e.softDisplay > softStrictThreshold:
		candidate = StateOriginal
	case coverage >= coverageWhite:
		candidate = StateWhite
	case coverage >= coverageLightGray:
		candidate = StateLightGray
	case coverage >= coverageDarkGray:
		candidate = StateDarkGray
	}

	if candidate > e.visual {
		e.visual = candidate
	}
	e.lastTotalDisplay = coverage

	return e.visual, nil
}

// Snapshot freezes the engine state. exportedAtMs is caller-supplied;
// the engine never consults a clock.
func (e *Engine) Snapshot(exportedAtMs int64) Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	patches := make(map[string]PatchEntry, len(e.patches))
	for id, ps := range e.patches {
		patches[id] = ps.entry
	}

	return Snapshot{
		Patches:          patches,
		GateDisplay:      e.gateDisplay,
		SoftDisplay:      e.softDisplay,
		LastTotalDisplay: e.lastTotalDisplay,
		Visual:           e.visual,
		ExportedAtMs:     exportedAtMs,
		SchemaVersion:    SchemaVersionString,
	}
}

// patch returns the state for id, creating it on first sight.
func (e *Engine) patch(id string) (*patchState, error) {
	if ps, ok := e.patches[id]; ok {
		return ps, nil
	}

	window, err := NewRingBuffer(e.capacity)
	if err != nil {
		return nil, err
	}
	ps := &patchState{
		window: window,
		pairs:  make(map[validity.PairKey]validity.PairMetrics),
	}
	e.patches[id] = ps

	return ps, nil
}
