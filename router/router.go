// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/eventlog"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
)

func NewRouter(ctrl *election.Controller, journal *eventlog.Journal, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(ctrl, cfg)
	votingHandler := handlers.NewVotingHandler(ctrl, cfg)
	resultsHandler := handlers.NewResultsHandler(ctrl, journal, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election management (admin operations)
	mux.HandleFunc("POST /election/voters", middleware.WithLogging(electionHandler.RegisterVoter))
	mux.HandleFunc("POST /election/phase", middleware.WithLogging(electionHandler.AdvancePhase))
	mux.HandleFunc("POST /election/reset", middleware.WithLogging(electionHandler.Reset))

	// Voting operations (registered voters)
	mux.HandleFunc("POST /election/proposals", middleware.WithLogging(votingHandler.RegisterProposal))
	mux.HandleFunc("POST /election/votes", middleware.WithLogging(votingHandler.CastVote))

	// Results and state retrieval (public)
	mux.HandleFunc("GET /election", middleware.WithLogging(resultsHandler.GetElection))
	mux.HandleFunc("GET /election/phase", middleware.WithLogging(resultsHandler.GetPhase))
	mux.HandleFunc("GET /election/proposals", middleware.WithLogging(resultsHandler.GetProposals))
	mux.HandleFunc("GET /election/winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /election/voters/{principal}", middleware.WithLogging(resultsHandler.GetVoter))
	mux.HandleFunc("GET /election/events", middleware.WithLogging(resultsHandler.GetEvents))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	return mux
}
