package tokens

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenerateInviteToken_IsUrlSafeWithoutPadding(t *testing.T) {
	token, err := GenerateInviteToken()

	assert.NoError(t, err)
	assert.False(t, strings.ContainsAny(token, "+/="))

	raw, err := base64.RawURLEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Equal(t, 32, len(raw))
}

func Test_GenerateInviteToken_LargeSampleHasNoCollisions(t *testing.T) {
	seen := make(map[string]struct{}, 10000)

	for i := 0; i < 10000; i++ {
		token, err := GenerateInviteToken()
		assert.NoError(t, err)

		_, duplicate := seen[token]
		assert.False(t, duplicate, "token collision at iteration %d", i)
		seen[token] = struct{}{}
	}
}
