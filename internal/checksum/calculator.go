package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Calculator computes content digests as lowercase hex strings.
type Calculator interface {
	// CalculateRaw digests the bytes exactly as stored.
	CalculateRaw(content []byte) string

	// CalculateNormalized digests the content after text normalization, so
	// line-ending and trailing-whitespace differences do not change the result.
	CalculateNormalized(content []byte) string
}

// SHA256 is the Calculator used by dirmap. Normalization:
//  1. CRLF and lone CR become LF
//  2. Trailing spaces and tabs are stripped from every line
//  3. Trailing empty lines are dropped
//
// The zero value is ready to use and safe for concurrent use.
type SHA256 struct{}

// New returns a SHA-256 calculator.
func New() SHA256 {
	return SHA256{}
}

func (SHA256) CalculateRaw(content []byte) string {
	return hexDigest(content)
}

func (c SHA256) CalculateNormalized(content []byte) string {
	return hexDigest([]byte(normalizeText(string(content))))
}

func hexDigest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func normalizeText(content string) string {
	content = strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
