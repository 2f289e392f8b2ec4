// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides HTTP helpers shared by all handlers: request
// logging, JSON encoding/decoding, error responses and CORS.
package middleware
