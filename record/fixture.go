package record

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
)

// fixtureVersion is the fixture header format version.
const fixtureVersion = 1

// WriteFixture writes canonical content to path under a hash-prefixed
// header of the form:
//
//	# v=1 sha256=<hex> len=<bytes>\n
//
// so readers can verify integrity before use.
func WriteFixture(path string, content []byte) error {
	sum := sha256.Sum256(content)
	header := fmt.Sprintf("# v=%d sha256=%s len=%d\n",
		fixtureVersion, hex.EncodeToString(sum[:]), len(content))

	out := make([]byte, 0, len(header)+len(content))
	out = append(out, header...)
	out = append(out, content...)

	return os.WriteFile(path, out, 0o600)
}

// ReadFixture reads path, verifies the header's version, digest, and
// length against the content, and returns the content. Any mismatch
// yields ErrBadFixtureHeader; the content is never returned unverified.
func ReadFixture(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record: read fixture: %w", err)
	}

	nl := bytes.IndexByte(raw, '\n')
	if nl < 0 {
		return nil, ErrBadFixtureHeader
	}
	header := string(raw[:nl])
	content := raw[nl+1:]

	var version, length int
	var hexSum string
	if _, err = fmt.Sscanf(header, "# v=%d sha256=%s len=%d", &version, &hexSum, &length); err != nil {
		return nil, ErrBadFixtureHeader
	}
	if version != fixtureVersion || length != len(content) {
		return nil, ErrBadFixtureHeader
	}

	sum := sha256.Sum256(content)
	if hexSum != hex.EncodeToString(sum[:]) {
		return nil, ErrBadFixtureHeader
	}

	return content, nil
}
