// Package record implements the canonical decision-record wire format:
// the positional big-endian layout external consumers read, the closed
// enumerations it carries, and the hash-prefixed fixture files used to
// exchange canonical content between platforms.
//
// What:
//
//   - Record: the decision record with its fixed field order:
//     layoutVersion, schemaVersion, policyHash, stable ids,
//     classification, eebDelta, buildMode, guidanceSignal, the optional
//     hardFuseTrigger and degradation reason, valueScore, per-flow
//     counters, optional throttle stats, and the trailing 32-byte
//     decision hash.
//   - Encode: emits the canonical bytes; from schema v2.4 (0x0204) the
//     decision hash is mandatory and computed over the preceding bytes.
//   - Decode: codec-strict positional reader; unknown enum values, short
//     buffers, count mismatches, and hash mismatches are rejected.
//   - Fixture files: "# v=1 sha256=<hex> len=<bytes>\n" headers over
//     canonical content; readers verify the header before use.
//
// Versioning:
//
//   - Schema ≥ 0x0204 enables strict length validation, the mandatory
//     decision hash, and fail-closed degradation/reason pairing. Older
//     minor versions permit the relaxed behavior and expose it through
//     Record.Relaxed.
//
// Errors:
//
//   - ErrArraySizeMismatch, ErrDegradationMismatch, ErrUnknownEnum,
//     ErrShortBuffer, ErrHashMismatch, ErrBadFixtureHeader.
package record
