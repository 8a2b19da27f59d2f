package lib

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRandomToken generates a cryptographically secure random token
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// RandomColor returns a random card color as #rrggbb
func RandomColor() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "#3498db"
	}
	return fmt.Sprintf("#%02x%02x%02x", b[0], b[1], b[2])
}
