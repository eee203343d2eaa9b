// Package replay re-executes a recorded trace of engine inputs and
// asserts byte-exact re-derivation of every canonical export and its
// decision digest.
//
// What:
//
//   - Journal: an ordered list of checkpoints, each carrying the frames
//     fed since the previous checkpoint, the caller-supplied export
//     timestamp, the expected canonical bytes, the expected digest, and
//     the previous checkpoint's digest as a hash-chain link.
//   - Recorder: builds a journal while driving a live engine, so the
//     expected values are captured at the moment they were produced.
//   - Replay: verifies the hash chain, re-runs a fresh engine over the
//     recorded inputs, and compares bytes and digests checkpoint by
//     checkpoint. The first divergent checkpoint is surfaced with the
//     field that differed.
//
// Replay consults no clock, no network, and no randomness: every
// timestamp is part of the recorded inputs.
//
// Errors:
//
//   - ErrReplayMismatch (wrapped by MismatchError with index and field).
//   - ErrBrokenChain: a checkpoint's prevDigest does not link.
package replay
