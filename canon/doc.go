// Package canon implements the canonical byte encoding that decision
// digests are computed over: an append-only big-endian builder with
// length-prefixed arrays, presence tags for optional fields, and
// fixed-width RFC-4122 identifiers.
//
// What:
//
//   - Writer: emits u8/u16/u32/u64/i32/i64 in big-endian two's-complement,
//     raw byte slices, fixed-length byte slices with fail-closed length
//     checks, presence tags (0x00 absent, 0x01 present), array counts, and
//     16-byte UUIDs in network order.
//   - ParseUUID: strict RFC-4122 parsing; malformed identifiers never reach
//     a digest.
//
// Why:
//
//   - Consumers read canonical streams positionally; any reordering or
//     width change would silently alter every digest downstream, so the
//     writer never reorders fields and every width is explicit at the call
//     site.
//
// Deterministic laws:
//
//   - n single-byte appends produce the same stream as one n-byte append.
//   - The writer is sticky on error: after the first failure every
//     subsequent append is a no-op and Bytes() refuses to return a stream.
//
// Errors:
//
//   - ErrLengthMismatch: a fixed-width field received the wrong byte count.
//   - ErrMalformedUUID: an identifier failed RFC-4122 parsing.
//   - ErrWriterFailed: Bytes() was called on a failed writer.
package canon
