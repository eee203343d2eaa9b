package engine

// LayoutVersion is the canonical-export layout byte.
const LayoutVersion uint8 = 1

// SchemaVersionCode is the current canonical schema tag (v2.4).
const SchemaVersionCode uint16 = 0x0204

// SchemaVersionString is the inspection-format rendering of the schema.
const SchemaVersionString = "2.4"

// DefaultWindowCapacity is the per-patch observation window size used
// when the caller does not choose one.
const DefaultWindowCapacity = 16

// Coverage bands for the visual state ladder. A candidate state is the
// highest band whose threshold the coverage reaches.
const (
	coverageDarkGray  = 0.25
	coverageLightGray = 0.50
	coverageWhite     = 0.75
	coverageOriginal  = 0.95
)

// softStrictThreshold is the second gate on the top visual state: the
// session softDisplay must exceed it at the same time the coverage
// reaches the original band.
const softStrictThreshold = 0.90
