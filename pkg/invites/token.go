// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// RandomTokenSource draws invitation tokens from crypto/rand.
type RandomTokenSource struct{}

func NewRandomTokenSource() *RandomTokenSource {
	return &RandomTokenSource{}
}

func (s *RandomTokenSource) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
