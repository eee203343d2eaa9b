package engine

import (
	"fmt"
	"math"
	"strings"
)

// RenderJSON renders a snapshot in the canonical inspection format:
// object keys in lexicographic order, every number as fixed-point
// "%.6f" (no scientific notation, −0.0 normalized to 0.000000), and
// integers rendered verbatim. Because every scalar was validated at
// ingest, no non-finite or subnormal value can appear here; the render
// re-checks anyway and fails closed.
func RenderJSON(s Snapshot) (string, error) {
	var b strings.Builder

	b.WriteByte('{')

	// Top-level keys, lexicographic:
	// exportedAtMs, gateDisplay, lastTotalDisplay, patches,
	// schemaVersion, softDisplay, visualState.
	fmt.Fprintf(&b, "%q:%d,", "exportedAtMs", s.ExportedAtMs)

	gate, err := canonicalNumber(s.GateDisplay)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%q:%s,", "gateDisplay", gate)

	last, err := canonicalNumber(s.LastTotalDisplay)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%q:%s,", "lastTotalDisplay", last)

	b.WriteString(`"patches":{`)
	for i, id := range sortedPatchIDs(s.Patches) {
		if i > 0 {
			b.WriteByte(',')
		}
		entry := s.Patches[id]
		if err = renderPatchJSON(&b, id, entry); err != nil {
			return "", err
		}
	}
	b.WriteString("},")

	fmt.Fprintf(&b, "%q:%q,", "schemaVersion", s.SchemaVersion)

	soft, err := canonicalNumber(s.SoftDisplay)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "%q:%s,", "softDisplay", soft)

	fmt.Fprintf(&b, "%q:%q", "visualState", s.Visual.String())
	b.WriteByte('}')

	return b.String(), nil
}

// renderPatchJSON emits one patch object with lexicographic keys:
// bestFrameId, errorCount, errorStreak, evidence, lastGoodUpdateMs,
// lastUpdateMs, level, observationCount.
func renderPatchJSON(b *strings.Builder, id string, entry PatchEntry) error {
	ev, err := canonicalNumber(entry.Evidence)
	if err != nil {
		return err
	}

	fmt.Fprintf(b, "%q:{", id)
	fmt.Fprintf(b, "%q:%q,", "bestFrameId", entry.BestFrameID)
	fmt.Fprintf(b, "%q:%d,", "errorCount", entry.ErrorCount)
	fmt.Fprintf(b, "%q:%d,", "errorStreak", entry.ErrorStreak)
	fmt.Fprintf(b, "%q:%s,", "evidence", ev)
	fmt.Fprintf(b, "%q:%d,", "lastGoodUpdateMs", entry.LastGoodUpdateMs)
	fmt.Fprintf(b, "%q:%d,", "lastUpdateMs", entry.LastUpdateMs)
	fmt.Fprintf(b, "%q:%q,", "level", entry.Level.String())
	fmt.Fprintf(b, "%q:%d", "observationCount", entry.ObservationCount)
	b.WriteByte('}')

	return nil
}

// canonicalNumber renders x as fixed-point "%.6f" with −0 normalized.
// Non-finite and subnormal values fail closed.
func canonicalNumber(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", ErrNonCanonicalNumber
	}
	if x != 0 && math.Abs(x) < 2.2250738585072014e-308 {
		return "", ErrNonCanonicalNumber // subnormal
	}
	if x == 0 {
		x = 0 // collapse −0.0
	}

	return fmt.Sprintf("%.6f", x), nil
}
