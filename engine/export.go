package engine

import (
	"github.com/Kyle-Wang0211/Aether3D-sub019/canon"
	"github.com/Kyle-Wang0211/Aether3D-sub019/digest"
	"github.com/Kyle-Wang0211/Aether3D-sub019/merkle"
	"github.com/Kyle-Wang0211/Aether3D-sub019/q16"
)

// ExportCanonical serializes a snapshot into its canonical bytes and the
// decision digest over them.
//
// The field order is fixed: layoutVersion, schemaVersion, exportedAtMs,
// patchCount, then each patch entry as idLen+idBytes, evidenceQ16,
// lastUpdateMs, observationCount, errorCount, errorStreak,
// lastGoodUpdateMs, level, and the bestFrameId presence tag with its
// bytes. Entries are emitted in lexicographic patchId order so identical
// states always serialize identically.
func ExportCanonical(s Snapshot) ([]byte, [digest.Size]byte, error) {
	w := canon.NewWriter(64 + 64*len(s.Patches))

	// Header.
	w.U8(LayoutVersion)
	w.U16(SchemaVersionCode)
	w.I64(s.ExportedAtMs)
	w.U32(uint32(len(s.Patches)))

	// Entries in canonical id order.
	for _, id := range sortedPatchIDs(s.Patches) {
		entry := s.Patches[id]
		writePatchEntry(w, id, entry)
	}

	raw, err := w.Bytes()
	if err != nil {
		return nil, [digest.Size]byte{}, err
	}

	return raw, digest.Compute(raw), nil
}

// writePatchEntry emits one canonical patch record.
func writePatchEntry(w *canon.Writer, id string, entry PatchEntry) {
	idBytes := []byte(id)
	w.Count(len(idBytes))
	w.WriteBytes(idBytes)

	// Evidence travels as Q16.16 so the wire value is integral and
	// platform-neutral; conversion rounds half-to-even.
	ev, _ := q16.FromFloat64(entry.Evidence)
	w.I64(int64(ev))

	w.I64(entry.LastUpdateMs)
	w.U64(entry.ObservationCount)
	w.U64(entry.ErrorCount)
	w.U32(entry.ErrorStreak)
	w.I64(entry.LastGoodUpdateMs)
	w.U8(uint8(entry.Level))

	if entry.BestFrameID == "" {
		w.Presence(false)
		return
	}
	w.Presence(true)
	best := []byte(entry.BestFrameID)
	w.Count(len(best))
	w.WriteBytes(best)
}

// ExportToLog serializes a snapshot, digests it, and appends the digest
// as leaf data of the audit log (the leaf hash is H(0x00 ‖ digest)). It
// returns the canonical bytes, the digest, and the log's new root.
func ExportToLog(s Snapshot, log *merkle.Log) ([]byte, [digest.Size]byte, [merkle.HashSize]byte, error) {
	raw, d, err := ExportCanonical(s)
	if err != nil {
		return nil, [digest.Size]byte{}, [merkle.HashSize]byte{}, err
	}
	log.Append(d[:])

	return raw, d, log.Root(), nil
}

// sortedPatchIDs returns the patch ids in lexicographic order using a
// fixed insertion sort.
func sortedPatchIDs(patches map[string]PatchEntry) []string {
	ids := make([]string, 0, len(patches))
	for id := range patches {
		ids = append(ids, id)
	}

	var i, j int
	var v string
	for i = 1; i < len(ids); i++ {
		v = ids[i]
		for j = i - 1; j >= 0 && ids[j] > v; j-- {
			ids[j+1] = ids[j]
		}
		ids[j+1] = v
	}

	return ids
}
