package record

import (
	"bytes"
	"encoding/binary"

	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
)

// reader is a positional big-endian cursor over a record buffer.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) remaining() int { return len(r.buf) - r.pos }

func (r *reader) u8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, ErrShortBuffer
	}
	v := r.buf[r.pos]
	r.pos++

	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2

	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4

	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, ErrShortBuffer
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8

	return v, nil
}

func (r *reader) presence() (bool, error) {
	v, err := r.u8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, ErrUnknownEnum
	}
}

// Decode parses the positional layout, rejecting unknown enum variants,
// short input, trailing bytes, and, under a strict schema, a decision
// hash that does not commit to the preceding bytes.
func Decode(data []byte) (*Record, error) {
	rd := &reader{buf: data}
	rec := &Record{}

	var err error
	if rec.LayoutVersion, err = rd.u8(); err != nil {
		return nil, err
	}
	if rec.SchemaVersion, err = rd.u16(); err != nil {
		return nil, err
	}
	if rec.PolicyHash, err = rd.u64(); err != nil {
		return nil, err
	}
	if rec.SessionStableID, err = rd.u64(); err != nil {
		return nil, err
	}
	if rec.CandidateStableID, err = rd.u64(); err != nil {
		return nil, err
	}

	raw, err := rd.u8()
	if err != nil {
		return nil, err
	}
	if !classificationValid(raw) {
		return nil, ErrUnknownEnum
	}
	rec.Classification = Classification(raw)

	delta, err := rd.u64()
	if err != nil {
		return nil, err
	}
	rec.EEBDelta = int64(delta)

	if raw, err = rd.u8(); err != nil {
		return nil, err
	}
	if !buildModeValid(raw) {
		return nil, ErrUnknownEnum
	}
	rec.BuildMode = BuildMode(raw)

	if raw, err = rd.u8(); err != nil {
		return nil, err
	}
	if !guidanceValid(raw) {
		return nil, ErrUnknownEnum
	}
	rec.GuidanceSignal = GuidanceSignal(raw)

	present, err := rd.presence()
	if err != nil {
		return nil, err
	}
	if present {
		v, err := rd.u8()
		if err != nil {
			return nil, err
		}
		rec.HardFuseTrigger = &v
	}

	if rec.DegradationLevel, err = rd.u8(); err != nil {
		return nil, err
	}
	if present, err = rd.presence(); err != nil {
		return nil, err
	}
	if present {
		v, err := rd.u8()
		if err != nil {
			return nil, err
		}
		rec.DegradationReasonCode = &v
	}

	score, err := rd.u64()
	if err != nil {
		return nil, err
	}
	rec.ValueScore = int64(score)

	if rec.FlowBucketCount, err = rd.u8(); err != nil {
		return nil, err
	}
	rec.PerFlowCounters = make([]uint16, rec.FlowBucketCount)
	for i := range rec.PerFlowCounters {
		if rec.PerFlowCounters[i], err = rd.u16(); err != nil {
			return nil, err
		}
	}

	if present, err = rd.presence(); err != nil {
		return nil, err
	}
	if present {
		ts := &ThrottleStats{}
		if ts.AcceptedTotal, err = rd.u64(); err != nil {
			return nil, err
		}
		if ts.DroppedWindow, err = rd.u32(); err != nil {
			return nil, err
		}
		if ts.DeferredWindow, err = rd.u32(); err != nil {
			return nil, err
		}
		rec.ThrottleStats = ts
	}

	// Trailing decision hash over everything before it.
	bodyLen := rd.pos
	if rd.remaining() < digest.Size {
		return nil, ErrShortBuffer
	}
	copy(rec.DecisionHash[:], rd.buf[rd.pos:rd.pos+digest.Size])
	rd.pos += digest.Size
	if rd.remaining() != 0 {
		return nil, ErrTrailingBytes
	}

	// Strict-schema gates: hash verification and degradation pairing.
	if rec.Strict() {
		want := digest.Compute(data[:bodyLen])
		if !bytes.Equal(want[:], rec.DecisionHash[:]) {
			return nil, ErrHashMismatch
		}
		if rec.DegradationLevel != 0 && rec.DegradationReasonCode == nil {
			return nil, ErrDegradationMismatch
		}
	}

	return rec, nil
}
