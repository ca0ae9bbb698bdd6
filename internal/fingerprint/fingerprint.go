// Package fingerprint derives short content-addressed names from image bytes.
//
// A fingerprint is the lowercase hexadecimal SHA-256 digest of the input,
// truncated to [Length] characters. Two images sharing a fingerprint map to
// the same file name; do not use a fingerprint where uniqueness matters.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Length is the number of hex characters kept from the digest.
const Length = 5

// Fingerprint returns the first Length hex characters of the SHA-256 digest
// of data. It is pure and total: equal inputs always produce equal outputs,
// and empty or nil input is accepted.
func Fingerprint(data []byte) string {
	return Truncated(data, Length)
}

// Truncated returns the first n hex characters of the SHA-256 digest of data.
// n is clamped to the range [1, 64].
func Truncated(data []byte, n int) string {
	sum := Sum(data)
	if n < 1 {
		n = 1
	}
	if n > len(sum) {
		n = len(sum)
	}
	return sum[:n]
}

// Sum returns the full lowercase hex SHA-256 digest of data.
func Sum(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}
