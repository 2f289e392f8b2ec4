// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/eventlog"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

const defaultEventLimit = 200

// ResultsHandler serves the read-only surface: phase, proposals, winner,
// voter lookups and the event audit trail.
type ResultsHandler struct {
	ctrl    *election.Controller
	journal *eventlog.Journal
	cfg     cliparse.Config
}

func NewResultsHandler(ctrl *election.Controller, journal *eventlog.Journal, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ctrl: ctrl, journal: journal, cfg: cfg}
}

// GetElection handles GET /election
func (h *ResultsHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ElectionSummary{
		Name:             h.cfg.ElectionName,
		Phase:            h.ctrl.Phase().String(),
		Proposals:        len(h.ctrl.Proposals()),
		RegisteredVoters: h.ctrl.RegisteredVoters(),
	})
}

// GetPhase handles GET /election/phase
func (h *ResultsHandler) GetPhase(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PhaseResponse{
		Phase: h.ctrl.Phase().String(),
	})
}

// GetProposals handles GET /election/proposals
func (h *ResultsHandler) GetProposals(w http.ResponseWriter, r *http.Request) {
	proposals := h.ctrl.Proposals()

	views := make([]models.ProposalView, len(proposals))
	for i, p := range proposals {
		views[i] = models.ProposalView{
			ID:          p.ID,
			Description: p.Description,
			VoteCount:   p.VoteCount,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetWinner handles GET /election/winner
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	winner, err := h.ctrl.Winner()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		Winner: winner,
	})
}

// GetVoter handles GET /election/voters/{principal}
func (h *ResultsHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	principal := r.PathValue("principal")
	if principal == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "principal is required")
		return
	}

	voter, err := h.ctrl.GetVoter(election.Principal(principal))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterView{
		Principal:       principal,
		IsRegistered:    voter.IsRegistered,
		HasVoted:        voter.HasVoted,
		VotedProposalID: voter.VotedProposalID,
	})
}

// GetEvents handles GET /election/events
func (h *ResultsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.journal.List(limit)
	if err != nil {
		slog.Error("failed to query event journal", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	views := make([]models.EventView, len(entries))
	for i, e := range entries {
		var payload any
		if err := json.Unmarshal(e.Payload, &payload); err != nil {
			payload = string(e.Payload)
		}
		views[i] = models.EventView{
			ID:        e.ID,
			Name:      e.Name,
			Payload:   payload,
			EmittedAt: e.EmittedAt,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}
