// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

// VotingHandler serves the registered-voter operations: proposal
// registration and vote casting. The caller identifies itself with the
// X-Principal header; authentication of that identity is the deployment's
// concern, not this service's.
type VotingHandler struct {
	ctrl *election.Controller
	cfg  cliparse.Config
}

func NewVotingHandler(ctrl *election.Controller, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ctrl: ctrl, cfg: cfg}
}

func voterCaller(w http.ResponseWriter, r *http.Request) (election.Principal, bool) {
	principal := r.Header.Get("X-Principal")
	if principal == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Principal header required")
		return "", false
	}
	return election.Principal(principal), true
}

// RegisterProposal handles POST /election/proposals
func (h *VotingHandler) RegisterProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := voterCaller(w, r)
	if !ok {
		return
	}

	var req models.RegisterProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	id, err := h.ctrl.RegisterProposal(caller, req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("proposal registered", "election", h.cfg.ElectionName, "proposal_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterProposalResponse{
		ProposalID: id,
	})
}

// CastVote handles POST /election/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := voterCaller(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.ctrl.CastVote(caller, req.ProposalID); err != nil {
		writeDomainError(w, err)
		return
	}

	// The voter's identity is deliberately left out of the log line
	slog.Info("vote cast", "election", h.cfg.ElectionName, "proposal_id", req.ProposalID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ProposalID: req.ProposalID,
		Message:    "Vote recorded",
	})
}
