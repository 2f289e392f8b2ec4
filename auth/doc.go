// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin capability check and ID generation.

# Admin Keys

Admin keys use HMAC-SHA256 to create deterministic, verifiable keys:

	adminKey := auth.GenerateAdminKey(electionName, salt)
	err := auth.ValidateAdminKey(electionName, adminKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same election name and salt always produce the same key. This allows
validation without storing the key anywhere.

# Authorizer

KeyAuthorizer adapts the key check to the election.Authorizer interface.
Admin callers present the key itself as their principal, so holding the key
is holding the admin capability:

	authz := auth.KeyAuthorizer{Election: cfg.ElectionName, Salt: cfg.AdminKeySalt}
	ctrl := election.NewController(authz, sink)

# ID Generation

Random hex IDs:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
