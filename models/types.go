package models

import "time"

// Request types

type RegisterVoterRequest struct {
	Principal string `json:"principal"`
}

type RegisterProposalRequest struct {
	Description string `json:"description"`
}

type CastVoteRequest struct {
	ProposalID uint `json:"proposal_id"`
}

type AdvancePhaseRequest struct {
	Target string `json:"target"`
}

// Response types

type RegisterVoterResponse struct {
	Principal string `json:"principal"`
	Message   string `json:"message"`
}

type RegisterProposalResponse struct {
	ProposalID uint `json:"proposal_id"`
}

type CastVoteResponse struct {
	ProposalID uint   `json:"proposal_id"`
	Message    string `json:"message"`
}

type PhaseResponse struct {
	Phase string `json:"phase"`
}

type AdvancePhaseResponse struct {
	Previous string `json:"previous"`
	Phase    string `json:"phase"`
}

type WinnerResponse struct {
	Winner string `json:"winner"`
}

type ElectionSummary struct {
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	Proposals        int    `json:"proposals"`
	RegisteredVoters int    `json:"registered_voters"`
}

// ProposalView exposes a proposal's id, description and running count.
// Individual votes are never exposed by voter identity.
type ProposalView struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	VoteCount   uint   `json:"vote_count"`
}

type VoterView struct {
	Principal       string `json:"principal"`
	IsRegistered    bool   `json:"is_registered"`
	HasVoted        bool   `json:"has_voted"`
	VotedProposalID uint   `json:"voted_proposal_id"`
}

type EventView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload"`
	EmittedAt time.Time `json:"emitted_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
