package canon

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
)

// UUIDSize is the RFC-4122 binary length.
const UUIDSize = 16

// ParseUUID parses id as an RFC-4122 UUID and returns its 16 bytes in
// network order (time_low, time_mid, time_hi_and_version, clock_seq_hi,
// clock_seq_low, node). Malformed input yields ErrMalformedUUID; nothing
// malformed may reach a digest.
func ParseUUID(id string) ([UUIDSize]byte, error) {
	var out [UUIDSize]byte

	u, err := uuid.FromString(id)
	if err != nil {
		return out, fmt.Errorf("%w: %q", ErrMalformedUUID, id)
	}
	copy(out[:], u.Bytes())

	return out, nil
}

// FormatUUID renders 16 network-order bytes in the canonical
// 8-4-4-4-12 hexadecimal form.
func FormatUUID(b [UUIDSize]byte) string {
	u, _ := uuid.FromBytes(b[:])

	return u.String()
}
