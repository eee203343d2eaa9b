// Package merkle implements the append-only audit hash tree.
package merkle

import (
	"sync"

	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
)

// HashSize is the node and leaf hash length in bytes.
const HashSize = 32

// Domain-separation prefixes per RFC 9162.
const (
	leafPrefix byte = 0x00
	nodePrefix byte = 0x01
)

// LeafHash returns SHA-256(0x00 ‖ data).
func LeafHash(data []byte) [HashSize]byte {
	buf := make([]byte, 0, 1+len(data))
	buf = append(buf, leafPrefix)
	buf = append(buf, data...)

	return digest.ComputeRaw(buf)
}

// NodeHash returns SHA-256(0x01 ‖ left ‖ right).
func NodeHash(left, right [HashSize]byte) [HashSize]byte {
	buf := make([]byte, 0, 1+2*HashSize)
	buf = append(buf, nodePrefix)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)

	return digest.ComputeRaw(buf)
}

// Log is the append-only binary hash tree. All state is guarded by a
// single mutex: appends and proof generation block until they hold
// exclusive access, so no operation can observe a half-applied update.
type Log struct {
	mu     sync.Mutex
	leaves [][HashSize]byte
	root   [HashSize]byte
}

// NewLog returns an empty log. The empty root is 32 zero bytes.
func NewLog() *Log {
	return &Log{}
}

// Append hashes data as a leaf and appends it, recomputing the root.
func (l *Log) Append(data []byte) {
	h := LeafHash(data)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.leaves = append(l.leaves, h)
	l.root = computeRoot(l.leaves)
}

// AppendHash appends a precomputed leaf hash. A slice of any other length
// is a precondition violation: the log is left untouched and ErrHashLength
// returned.
func (l *Log) AppendHash(h []byte) error {
	if len(h) != HashSize {
		return ErrHashLength
	}

	var leaf [HashSize]byte
	copy(leaf[:], h)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.leaves = append(l.leaves, leaf)
	l.root = computeRoot(l.leaves)

	return nil
}

// Root returns the current root hash; 32 zero bytes for an empty log.
func (l *Log) Root() [HashSize]byte {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.root
}

// Size returns the number of leaves.
func (l *Log) Size() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return uint64(len(l.leaves))
}

// computeRoot folds the leaf level upward. At each level pairs (2k,2k+1)
// hash into the next level; an unpaired tail is promoted unchanged. This
// matches the RFC's incremental construction.
func computeRoot(leaves [][HashSize]byte) [HashSize]byte {
	var zero [HashSize]byte
	if len(leaves) == 0 {
		return zero
	}

	level := make([][HashSize]byte, len(leaves))
	copy(level, leaves)

	for len(level) > 1 {
		next := make([][HashSize]byte, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, NodeHash(level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			next = append(next, level[len(level)-1])
		}
		level = next
	}

	return level[0]
}
