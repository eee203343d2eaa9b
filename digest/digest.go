// Package digest implements the decision-hash computation.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the digest length in bytes.
const Size = 32

// TagSize is the locked domain-tag length in bytes.
const TagSize = 26

// domainTag is the locked 26-byte domain separator:
// ASCII "AETHER3D_DECISION_HASH_V1" followed by a single zero byte.
var domainTag = [TagSize]byte{
	0x41, 0x45, 0x54, 0x48, 0x45, 0x52, 0x33, 0x44, // AETHER3D
	0x5F, 0x44, 0x45, 0x43, 0x49, 0x53, 0x49, 0x4F, // _DECISIO
	0x4E, 0x5F, 0x48, 0x41, 0x53, 0x48, 0x5F, 0x56, // N_HASH_V
	0x31, 0x00, // 1 NUL
}

// DomainTag returns a copy of the locked domain separator.
func DomainTag() [TagSize]byte { return domainTag }

// Compute returns SHA-256(DomainTag ‖ input). Deterministic across
// platforms; 32 bytes always.
func Compute(input []byte) [Size]byte {
	h := sha256.New()
	h.Write(domainTag[:])
	h.Write(input)

	var out [Size]byte
	copy(out[:], h.Sum(nil))

	return out
}

// ComputeRaw returns SHA-256(input) with no domain tag. It exists for
// callers that apply their own domain separation bytes, such as the
// Merkle leaf/node prefixes.
func ComputeRaw(input []byte) [Size]byte {
	return sha256.Sum256(input)
}

// Preimage returns the exact byte sequence Compute hashes for input.
func Preimage(input []byte) []byte {
	p := make([]byte, 0, TagSize+len(input))
	p = append(p, domainTag[:]...)
	p = append(p, input...)

	return p
}

// PreimageHex renders the preimage as lowercase hex, for debugging and
// cross-platform fixture files.
func PreimageHex(input []byte) string {
	return hex.EncodeToString(Preimage(input))
}

// PreimageLength returns the preimage length in bytes: TagSize+len(input).
func PreimageLength(input []byte) int {
	return TagSize + len(input)
}
