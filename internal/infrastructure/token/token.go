// Package token generates opaque bearer tokens. Tokens carry no
// structure: validity is decided solely by the session row they key.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 bytes = 256 bits of entropy, well above the unguessability floor.
const rawLen = 32

func New() (string, error) {
	b := make([]byte, rawLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
