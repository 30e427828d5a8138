package utils

import (
	"crypto/rand"
	"encoding/base64"
	"honeydew-api/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GenerateInviteCode returns a short shareable code for joining a group.
func GenerateInviteCode() string {
	code, err := gonanoid.Generate(constants.InviteCodeAlphabet, constants.InviteCodeLength)
	if err != nil {
		return ""
	}
	return code
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to nanoid if crypto/rand fails
		id, _ := gonanoid.Generate(constants.InviteCodeAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}
