package engine

import "github.com/Kyle-Wang0211/Aether3D-sub019/validity"

// RingBuffer is a fixed-capacity FIFO window of observations. On
// overflow the oldest element is overwritten in place; the buffer never
// allocates after construction.
type RingBuffer struct {
	buf   []validity.Observation
	head  int // index of the oldest element
	count int
}

// NewRingBuffer returns a window holding at most capacity observations.
// Non-positive capacity is a construction error.
func NewRingBuffer(capacity int) (*RingBuffer, error) {
	if capacity <= 0 {
		return nil, ErrRingCapacity
	}

	return &RingBuffer{buf: make([]validity.Observation, capacity)}, nil
}

// Push appends o, overwriting the oldest element when full.
func (r *RingBuffer) Push(o validity.Observation) {
	if r.count < len(r.buf) {
		r.buf[(r.head+r.count)%len(r.buf)] = o
		r.count++
		return
	}
	// Full: the slot at head is the oldest; overwrite and advance.
	r.buf[r.head] = o
	r.head = (r.head + 1) % len(r.buf)
}

// Len returns the number of buffered observations.
func (r *RingBuffer) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *RingBuffer) Cap() int { return len(r.buf) }

// Items returns the buffered observations oldest-first as a fresh slice.
func (r *RingBuffer) Items() []validity.Observation {
	out := make([]validity.Observation, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}

	return out
}
