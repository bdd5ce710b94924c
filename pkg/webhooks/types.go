// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// IdentityPayload is the body the identity provider posts after a successful
// registration flow.
type IdentityPayload struct {
	ID     string         `json:"id"`
	Traits IdentityTraits `json:"traits"`
}

type IdentityTraits struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
