// Package eeb implements the Evidence Escalation Boundary: the monotonic
// level a patch has reached, and the pure transition predicate that
// governs every level change.
//
// What:
//
//   - Level: the totally ordered ladder L0 < L1 < L2 < L3Core < L3Strict.
//   - Trigger: the closed set of events that may justify an escalation.
//   - Allows(from, to, trigger, crossEpoch): the complete transition
//     relation as a boolean predicate with no hidden memory.
//
// Rules:
//
//   - Levels never downgrade and never skip rungs.
//   - L2 branches to either L3Core or L3Strict on color stability.
//   - Epoch-migration inheritance applies only to L1→L2, only across an
//     epoch boundary, and can never reach an L3 level.
//
// Errors:
//
//   - None. The predicate is total; a disallowed transition is false, not
//     an error.
package eeb
