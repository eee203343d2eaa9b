package record

import (
	"github.com/Kyle-Wang0211/Aether3D-sub019/canon"
	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
)

// Encode emits the record's canonical bytes in the fixed positional
// order and appends the decision hash computed over everything before it,
// for every schema version; Decode verifies that hash only under a strict
// schema. The hash is also written back to r.DecisionHash.
//
// Fail-closed validations: perFlowCounters length must equal
// flowBucketCount; under a strict schema a non-zero degradationLevel
// requires a present reason code.
func (r *Record) Encode() ([]byte, error) {
	// 1) Fail-closed structural checks before any byte is produced.
	if int(r.FlowBucketCount) != len(r.PerFlowCounters) {
		return nil, ErrArraySizeMismatch
	}
	if r.Strict() && r.DegradationLevel != 0 && r.DegradationReasonCode == nil {
		return nil, ErrDegradationMismatch
	}

	// 2) Positional body.
	w := canon.NewWriter(64 + 2*len(r.PerFlowCounters))
	w.U8(r.LayoutVersion)
	w.U16(r.SchemaVersion)
	w.U64(r.PolicyHash)
	w.U64(r.SessionStableID)
	w.U64(r.CandidateStableID)
	w.U8(uint8(r.Classification))
	w.I64(r.EEBDelta)
	w.U8(uint8(r.BuildMode))
	w.U8(uint8(r.GuidanceSignal))

	if r.HardFuseTrigger != nil {
		w.Presence(true)
		w.U8(*r.HardFuseTrigger)
	} else {
		w.Presence(false)
	}

	w.U8(r.DegradationLevel)
	if r.DegradationReasonCode != nil {
		w.Presence(true)
		w.U8(*r.DegradationReasonCode)
	} else {
		w.Presence(false)
	}

	w.I64(r.ValueScore)
	w.U8(r.FlowBucketCount)
	for _, c := range r.PerFlowCounters {
		w.U16(c)
	}

	if r.ThrottleStats != nil {
		w.Presence(true)
		w.U64(r.ThrottleStats.AcceptedTotal)
		w.U32(r.ThrottleStats.DroppedWindow)
		w.U32(r.ThrottleStats.DeferredWindow)
	} else {
		w.Presence(false)
	}

	body, err := w.Bytes()
	if err != nil {
		return nil, err
	}

	// 3) The decision hash commits to the body.
	r.DecisionHash = digest.Compute(body)

	out := make([]byte, 0, len(body)+digest.Size)
	out = append(out, body...)
	out = append(out, r.DecisionHash[:]...)

	return out, nil
}
