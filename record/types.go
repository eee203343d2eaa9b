// Package record defines the decision-record model and its closed
// enumerations.
package record

// StrictSchemaVersion is the schema tag from which strict length
// validation, the mandatory decision hash, and fail-closed degradation
// pairing apply.
const StrictSchemaVersion uint16 = 0x0204

// Classification is the decision outcome carried by a record.
type Classification uint8

const (
	// ClassificationPending: no decision yet.
	ClassificationPending Classification = 0
	// ClassificationRejected: the candidate was rejected.
	ClassificationRejected Classification = 1
	// ClassificationAccepted: the candidate was accepted.
	ClassificationAccepted Classification = 2
)

// classificationValid reports membership in the closed set.
func classificationValid(v uint8) bool { return v <= uint8(ClassificationAccepted) }

// GuidanceSignal is the capture-guidance hint attached to a decision.
type GuidanceSignal uint8

const (
	// GuidanceNone: no guidance.
	GuidanceNone GuidanceSignal = 0
	// GuidanceHold: hold the current pose.
	GuidanceHold GuidanceSignal = 1
	// GuidanceMoveCloser: reduce subject distance.
	GuidanceMoveCloser GuidanceSignal = 2
	// GuidanceMoveBack: increase subject distance.
	GuidanceMoveBack GuidanceSignal = 3
	// GuidanceSweep: sweep for additional viewpoints.
	GuidanceSweep GuidanceSignal = 4
)

func guidanceValid(v uint8) bool { return v <= uint8(GuidanceSweep) }

// BuildMode identifies the producing build flavor.
type BuildMode uint8

const (
	// BuildDebug: development build.
	BuildDebug BuildMode = 0
	// BuildRelease: production build.
	BuildRelease BuildMode = 1
	// BuildInstrumented: release build with shadow instrumentation.
	BuildInstrumented BuildMode = 2
)

func buildModeValid(v uint8) bool { return v <= uint8(BuildInstrumented) }

// OutputProfile selects how much explainability a consumer receives.
type OutputProfile uint8

const (
	// ProfileDecisionOnly: the decision and its hash.
	ProfileDecisionOnly OutputProfile = 0
	// ProfileFullExplainability: the decision plus full reasoning data.
	ProfileFullExplainability OutputProfile = 1
)

// OutputProfileFromRaw rejects values outside the closed set.
func OutputProfileFromRaw(v uint8) (OutputProfile, error) {
	if v > uint8(ProfileFullExplainability) {
		return 0, ErrUnknownEnum
	}

	return OutputProfile(v), nil
}

// GateRecommendation is the publish gate's verdict for a capture.
type GateRecommendation uint8

const (
	// GateAllowPublish: the capture may be published.
	GateAllowPublish GateRecommendation = 0
	// GateRecapture: the capture should be redone.
	GateRecapture GateRecommendation = 1
	// GateInsufficientData: no recommendation is possible yet.
	GateInsufficientData GateRecommendation = 2
)

// GateRecommendationFromRaw rejects values outside the closed set.
func GateRecommendationFromRaw(v uint8) (GateRecommendation, error) {
	if v > uint8(GateInsufficientData) {
		return 0, ErrUnknownEnum
	}

	return GateRecommendation(v), nil
}

// ThrottleStats is the optional throttle block: accepted total plus
// window drop/defer counters.
type ThrottleStats struct {
	AcceptedTotal  uint64
	DroppedWindow  uint32
	DeferredWindow uint32
}

// Record is one canonical decision record. Optional fields are pointers;
// absence encodes as a 0x00 presence tag.
type Record struct {
	LayoutVersion     uint8
	SchemaVersion     uint16
	PolicyHash        uint64
	SessionStableID   uint64
	CandidateStableID uint64
	Classification    Classification
	// EEBDelta is a Q16.16 fixed-point level delta carried as i64 raw
	// units.
	EEBDelta              int64
	BuildMode             BuildMode
	GuidanceSignal        GuidanceSignal
	HardFuseTrigger       *uint8
	DegradationLevel      uint8
	DegradationReasonCode *uint8
	ValueScore            int64
	FlowBucketCount       uint8
	PerFlowCounters       []uint16
	ThrottleStats         *ThrottleStats
	// DecisionHash is the trailing digest; populated by Encode and
	// verified by Decode for strict schemas.
	DecisionHash [32]byte
}

// Strict reports whether the record's schema demands strict validation
// and a mandatory decision hash.
func (r *Record) Strict() bool { return r.SchemaVersion >= StrictSchemaVersion }

// Relaxed reports the pre-v2.4 degradation mismatch state: a non-zero
// degradation level with no reason code present. Strict schemas fail
// closed on this instead.
func (r *Record) Relaxed() bool {
	return !r.Strict() && r.DegradationLevel != 0 && r.DegradationReasonCode == nil
}
