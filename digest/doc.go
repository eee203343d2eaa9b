// Package digest computes the domain-separated 256-bit content digest
// (the decision hash) over canonical byte streams.
//
// What:
//
//   - Compute: SHA-256 over DomainTag ‖ input. The tag is the locked
//     26-byte sequence "AETHER3D_DECISION_HASH_V1" followed by one zero
//     byte; its length and bytes are part of the contract, so any deviation
//     changes every digest by design.
//   - PreimageHex / PreimageLength: preimage introspection for debugging
//     and cross-platform fixtures.
//
// Why:
//
//   - Domain separation guarantees no digest from this system can collide
//     with any other SHA-256 use, and a single flipped preimage bit yields
//     a different digest.
//
// The hash function is crypto/sha256: the digest contract is locked to
// SHA-256 and forbids backends whose output could vary by platform.
//
// Errors:
//
//   - None. Compute is total over byte slices; empty input yields a fixed,
//     documented digest.
package digest
