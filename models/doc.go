// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models defines the JSON request and response types for the
// ballotbox API.
package models
