package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const inviteTokenBytes = 32

// GenerateInviteToken returns a URL-safe opaque credential: 32 random
// bytes, base64 URL encoded without padding.
func GenerateInviteToken() (string, error) {
	raw := make([]byte, inviteTokenBytes)

	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
