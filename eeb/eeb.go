// Package eeb defines evidence levels, escalation triggers, and the
// transition predicate.
package eeb

// Level is a rung of the evidence-escalation ladder. The numeric order is
// the semantic order: higher values are strictly stronger evidence.
type Level uint8

const (
	// L0: no accepted evidence yet.
	L0 Level = iota
	// L1: at least one geometrically plausible observation.
	L1
	// L2: multi-view support established.
	L2
	// L3Core: photometric consistency without Lab coverage.
	L3Core
	// L3Strict: photometric consistency including Lab channels.
	L3Strict
)

// levelNames renders levels for diagnostics and canonical JSON.
var levelNames = map[Level]string{
	L0:       "L0",
	L1:       "L1",
	L2:       "L2",
	L3Core:   "L3_core",
	L3Strict: "L3_strict",
}

// String renders the level name.
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}

	return "unknown"
}

// IsValid reports whether l is one of the five defined rungs.
func (l Level) IsValid() bool { return l <= L3Strict }

// Trigger is the closed set of events that may justify an escalation.
type Trigger uint8

const (
	// NewValidObservation: a first plausible observation arrived.
	NewValidObservation Trigger = iota
	// NewBaselineSatisfied: a distinct-viewpoint baseline was established.
	NewBaselineSatisfied
	// NewColorStabilitySatisfied: photometric stability was established.
	NewColorStabilitySatisfied
	// EpochMigrationInheritance: a level carried across an epoch boundary.
	EpochMigrationInheritance
)

// triggerNames renders triggers for diagnostics.
var triggerNames = map[Trigger]string{
	NewValidObservation:        "newValidObservation",
	NewBaselineSatisfied:       "newBaselineSatisfied",
	NewColorStabilitySatisfied: "newColorStabilitySatisfied",
	EpochMigrationInheritance:  "epochMigrationInheritance",
}

// String renders the trigger name.
func (t Trigger) String() string {
	if s, ok := triggerNames[t]; ok {
		return s
	}

	return "unknown"
}

// Allows reports whether the transition from→to is legal under trigger,
// given whether the transition crosses an epoch boundary.
//
// The relation is pure: no downgrade, no rung skipping, inheritance only
// for L1→L2 across an epoch, and inheritance never reaches L3.
func Allows(from, to Level, trigger Trigger, crossEpoch bool) bool {
	// 1) Undefined rungs never transition.
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	// 2) Inheritance is the narrow exception: exactly L1→L2, and only
	//    when the transition actually crosses an epoch.
	if trigger == EpochMigrationInheritance {
		return crossEpoch && from == L1 && to == L2
	}

	// 3) Ordinary escalations: one named edge per trigger.
	switch {
	case from == L0 && to == L1:
		return trigger == NewValidObservation
	case from == L1 && to == L2:
		return trigger == NewBaselineSatisfied
	case from == L2 && (to == L3Core || to == L3Strict):
		return trigger == NewColorStabilitySatisfied
	default:
		return false
	}
}
