// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements a single-election voting workflow: an
administrator registers eligible voters, voters submit proposals, a
single-choice vote is cast, and the result is tallied with explicit tie
detection.

# Workflow

An election moves through six phases in a fixed order:

	RegisteringVoters
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied

AdvancePhase only accepts the immediately following phase; skipping ahead,
moving backward, or re-entering the current phase all fail. The one cyclic
edge is Reset, which is legal only from VotesTallied and returns the
election to RegisteringVoters with cleared voters and proposals.

# Controller

All state lives inside a Controller created with NewController:

	ctrl := election.NewController(authorizer, sink)
	err := ctrl.RegisterVoter(adminKey, "alice")

Mutations are validated in full before any state changes, so every error
leaves the election exactly as it was. The controller serializes writers
behind a single lock; reads may run concurrently with each other but never
observe a partially applied operation.

# Collaborators

Who counts as the administrator is delegated to an Authorizer capability
check, and successful mutations are reported through an EventSink. Both are
intentionally abstract: the HTTP layer supplies an HMAC-key authorizer and a
SQL-backed journal, while tests use in-process stubs.

# Tally

Winner uses two passes over the proposals: one to find the maximum vote
count, one to count the proposals holding it. A tie (two or more at the
maximum) is an explicit error rather than an arbitrary pick.
*/
package election
