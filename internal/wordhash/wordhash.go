package wordhash

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"

	"lettra/internal/domain"
)

// ShortLen is how many hex characters of the digest are shown to the player.
const ShortLen = 8

// Sum returns the full lowercase hex BLAKE2b-256 digest of the word's
// letters. Stable across runs for the same word.
func Sum(w domain.Word) string {
	sum := blake2b.Sum256([]byte(strings.ToUpper(string(w))))
	return hex.EncodeToString(sum[:])
}

// Short returns the truncated digest used for display and resume prefixes.
func Short(w domain.Word) string {
	return Sum(w)[:ShortLen]
}

// HasPrefix reports whether the word's digest starts with prefix.
// Matching is case-insensitive.
func HasPrefix(w domain.Word, prefix string) bool {
	return strings.HasPrefix(Sum(w), strings.ToLower(prefix))
}
