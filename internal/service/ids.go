package service

import (
	"crypto/rand"
	"encoding/hex"
)

// newID returns a 24-character random hex identifier.
func newID() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
