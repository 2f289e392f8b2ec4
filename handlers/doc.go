// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a struct holding the election controller and config:

  - ElectionHandler: admin operations (register voter, advance phase, reset)
  - VotingHandler: voter operations (register proposal, cast vote)
  - ResultsHandler: queries (summary, phase, proposals, winner, voter, events)

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(ctrl, cfg)

# Election Lifecycle

The election progresses through six phases, admin-driven:

	POST /election/voters → RegisterVoter (RegisteringVoters only)
	POST /election/phase  → AdvancePhase (next phase only)
	POST /election/reset  → Reset (VotesTallied only)

Admin operations require the X-Admin-Key header; the key itself is the
capability the controller's authorizer checks.

# Voting Flow

Registered voters identify themselves with the X-Principal header:

	POST /election/proposals → RegisterProposal (ProposalsRegistrationStarted)
	POST /election/votes     → CastVote (VotingSessionStarted)

# Error Mapping

Domain errors map to statuses in errors.go: Unauthorized → 401, unknown
voter/proposal → 404, every state-machine rejection (wrong phase, duplicate,
already voted, tie, ...) → 409. Failed calls never mutate election state.
*/
package handlers
