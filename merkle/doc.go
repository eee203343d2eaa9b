// Package merkle implements the append-only binary hash tree that anchors
// exported reports, with RFC-9162-style domain separation and inclusion
// proofs.
//
// What:
//
//   - Log: an exclusively owned, append-only sequence of 32-byte leaf
//     hashes with an incrementally recomputed root.
//   - LeafHash(data) = SHA-256(0x00 ‖ data); NodeHash(l,r) =
//     SHA-256(0x01 ‖ l ‖ r); the empty tree's root is 32 zero bytes.
//   - InclusionProof: the leaf-to-root sibling path; at each level an odd
//     tail is promoted unchanged, never self-paired.
//   - VerifyInclusion: folds a proof over a leaf hash and compares to a
//     root.
//   - Consistency proofs are reserved: generation requires historical
//     state the log does not retain, so the call returns ErrNotImplemented
//     deterministically.
//
// Concurrency:
//
//   - Every operation acquires the log's mutex; appends and proof
//     generation are mutually exclusive and block until the lock is held.
//     There is no lock-free fast path.
//
// Errors:
//
//   - ErrInvalidLeafIndex: proof requested for an index ≥ tree size.
//   - ErrHashLength: a precomputed hash of the wrong length (precondition
//     violation; state untouched).
//   - ErrNotImplemented: consistency-proof generation.
package merkle
