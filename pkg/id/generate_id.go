package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID24 returns 24 hex characters (12 random bytes), used as the public
// identity of persisted records.
func NewID24() string {
	b := make([]byte, 12)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
