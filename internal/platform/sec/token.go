// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// MinTokenBytes is the smallest amount of entropy accepted for an opaque token.
const MinTokenBytes = 16

// GenerateSecureToken returns byteLength bytes from crypto/rand, hex encoded.
//
// The result is URL-safe and twice as long as byteLength.
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < MinTokenBytes {
		return "", fmt.Errorf("sec: token length %d is below the %d byte minimum", byteLength, MinTokenBytes)
	}

	buffer := make([]byte, byteLength)
	if _, err := rand.Read(buffer); err != nil {
		return "", fmt.Errorf("sec: failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buffer), nil
}

// HashToken returns the lowercase hex SHA-256 digest of value.
//
// Only suitable for high-entropy random tokens. Passwords go through bcrypt.
func HashToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
