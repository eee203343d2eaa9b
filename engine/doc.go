// Package engine maintains the canonical per-patch evidence state: it
// accumulates observations, escalates evidence levels through the EEB
// predicate, keeps session displays monotone, and exports immutable
// snapshots as canonical bytes, digests, and audit-log leaves.
//
// What:
//
//   - Engine: a single-owner, mutex-guarded accumulator. Per frame it
//     takes an Observation, externally computed gate/soft qualities, and a
//     verdict, and applies the update rules atomically.
//   - PatchEntry: per-patch evidence, counters, best frame, and level.
//     Evidence never decreases across successful updates.
//   - Session displays: gateDisplay and softDisplay never retreat; the
//     visual state ladder black < darkGray < lightGray < white < original
//     is enforced max-monotone, with the top rung requiring both the
//     coverage and the strict soft-display thresholds simultaneously.
//   - Snapshot: an immutable export; canonical serialization through the
//     canon writer in a fixed field order, digested and optionally
//     appended to a Merkle log.
//   - Canonical JSON: an inspection rendering with lexicographically
//     sorted keys and fixed-point "%.6f" numbers; non-finite and
//     subnormal values are rejected at ingest, so they can never reach a
//     rendering.
//
// Concurrency:
//
//   - All mutation flows through one logical owner; ProcessObservation
//     and Snapshot may block on the exclusive-access acquisition and on
//     nothing else. Snapshots are safely shareable across threads.
//
// Errors:
//
//   - ErrNonCanonicalNumber: a quality or display scalar was NaN, ±Inf,
//     subnormal, or outside [0,1] at ingest.
//   - ErrUnknownPatch: an inheritance request referenced an absent patch.
package engine
