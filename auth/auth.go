// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/ballotbox/election"
)

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateAdminKey creates an HMAC-based admin key for an election.
// This is deterministic and verifiable: the same election name and salt
// always produce the same key, so nothing needs to be stored.
func GenerateAdminKey(electionName, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(electionName))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the election
func ValidateAdminKey(electionName, adminKey, salt string) error {
	expected := GenerateAdminKey(electionName, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// KeyAuthorizer grants the admin role to callers presenting the election's
// admin key as their principal. This is the capability check the election
// controller runs first on every admin operation.
type KeyAuthorizer struct {
	Election string
	Salt     string
}

func (k KeyAuthorizer) IsAdmin(caller election.Principal) bool {
	return ValidateAdminKey(k.Election, string(caller), k.Salt) == nil
}
