package db

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewShareToken mints an opaque share token for an evidence record. The
// "ev_" prefix makes tokens recognizable in logs and URLs.
func NewShareToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate share token: %w", err)
	}
	return "ev_" + hex.EncodeToString(buf), nil
}
