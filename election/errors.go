// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Every failure here is a validation failure detected before any mutation.
// Callers never need to retry; the state is unchanged when one is returned.
var (
	ErrUnauthorized       = errors.New("caller lacks the required role")
	ErrInvalidPhase       = errors.New("operation not allowed in current phase")
	ErrAlreadyRegistered  = errors.New("voter is already registered")
	ErrDuplicateProposal  = errors.New("a proposal with that description already exists")
	ErrAlreadyVoted       = errors.New("voter has already voted")
	ErrNoSuchProposal     = errors.New("no proposal with that id")
	ErrNoProposals        = errors.New("election has no proposals")
	ErrPhaseAlreadyActive = errors.New("target phase is already active")
	ErrInvalidTransition  = errors.New("phase transition is not allowed")
	ErrTieDetected        = errors.New("two or more proposals are tied for the maximum vote count")
	ErrVoterNotFound      = errors.New("voter not found")
)
