package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256Hex returns the hex digest of text. Both password hashes and flag
// hashes go through here: deterministic, no salt, so equal inputs always
// produce equal digests (login matches on the digest itself).
func Sha256Hex(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
