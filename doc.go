// Package aether3d is the deterministic, auditable evidence engine for a
// 3D-scene capture pipeline.
//
// 🚀 What is Aether3D's decision substrate?
//
//	A pure, bit-reproducible library that brings together:
//
//	  • Deterministic numerics: stable logistic, guarded transcendentals,
//	    Q16.16 fixed point, and a total order on float64
//	  • A multi-view validity model (L1/L2/L3) with a monotonic
//	    evidence-escalation state machine
//	  • Canonical big-endian serialization with domain-separated
//	    decision digests
//	  • An append-only Merkle audit log with inclusion proofs, feeding a
//	    hash-chained replayable journal
//
// ✨ Why this shape?
//
//   - Reproducible   — every export is byte-identical on every platform
//   - Auditable      — every digest anchors into a provable hash tree
//   - Pure           — no clocks, no randomness, no hidden state
//
// Under the hood, everything is organized by dependency order:
//
//	numkernel/ q16/   — the numeric kernel (no internal dependencies)
//	canon/ digest/    — canonical bytes and the decision hash
//	validity/ eeb/    — observation classification and level escalation
//	merkle/ engine/   — the audit log and the evidence accumulator
//	record/ report/   — external wire formats and audit reports
//	replay/           — byte-exact re-derivation of recorded traces
//
// Observations flow through the validity model into the engine; exported
// snapshots are serialized, digested, and appended to the audit log; the
// replay harness re-derives every digest from the recorded inputs.
package aether3d
