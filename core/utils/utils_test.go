package utils

import (
	"honeydew-api/core/config"
	"honeydew-api/core/constants"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGenerateInviteCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateInviteCode()
		assert.Len(t, code, constants.InviteCodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(constants.InviteCodeAlphabet, r),
				"unexpected character %q in invite code", r)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should not all collide")
}

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)

	ttl := TokenRemainingTTL(claims)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, constants.TokenExpiry)
}

func TestValidateAndParseToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, VerifyPassword("hunter2hunter2", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
}

func TestRandomPicker_Bounds(t *testing.T) {
	picker := NewRandomPicker()
	for i := 0; i < 100; i++ {
		n := picker.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}
}
