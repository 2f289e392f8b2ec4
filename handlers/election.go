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

// ElectionHandler serves the admin operations: voter registration, phase
// transitions and reset. The admin capability is the X-Admin-Key header,
// passed through to the controller as the caller principal.
type ElectionHandler struct {
	ctrl *election.Controller
	cfg  cliparse.Config
}

func NewElectionHandler(ctrl *election.Controller, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{ctrl: ctrl, cfg: cfg}
}

// adminCaller extracts the admin capability from the request. Validation
// happens inside the controller's authorizer; an absent header is rejected
// here for a clearer message.
func adminCaller(w http.ResponseWriter, r *http.Request) (election.Principal, bool) {
	adminKey := r.Header.Get("X-Admin-Key")
	if adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return "", false
	}
	return election.Principal(adminKey), true
}

// RegisterVoter handles POST /election/voters
func (h *ElectionHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := adminCaller(w, r)
	if !ok {
		return
	}

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Principal == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "principal is required")
		return
	}

	if err := h.ctrl.RegisterVoter(caller, election.Principal(req.Principal)); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("voter registered", "election", h.cfg.ElectionName, "principal", req.Principal)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Principal: req.Principal,
		Message:   "Voter registered",
	})
}

// AdvancePhase handles POST /election/phase
func (h *ElectionHandler) AdvancePhase(w http.ResponseWriter, r *http.Request) {
	caller, ok := adminCaller(w, r)
	if !ok {
		return
	}

	var req models.AdvancePhaseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Target == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target is required")
		return
	}

	target, err := election.ParsePhase(req.Target)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	previous := h.ctrl.Phase()
	if err := h.ctrl.AdvancePhase(caller, target); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("phase advanced", "election", h.cfg.ElectionName, "previous", previous.String(), "phase", target.String())

	middleware.JSONResponse(w, http.StatusOK, models.AdvancePhaseResponse{
		Previous: previous.String(),
		Phase:    target.String(),
	})
}

// Reset handles POST /election/reset
func (h *ElectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	caller, ok := adminCaller(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.Reset(caller); err != nil {
		writeDomainError(w, err)
		return
	}

	slog.Info("election reset", "election", h.cfg.ElectionName)

	middleware.JSONResponse(w, http.StatusOK, models.PhaseResponse{
		Phase: h.ctrl.Phase().String(),
	})
}
