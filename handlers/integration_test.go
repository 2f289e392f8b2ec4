// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Register voters A and B
// 2. Advance to proposal registration
// 3. A registers "X", B registers "Y"
// 4. Advance through to the voting session
// 5. Both vote for "X"
// 6. Advance through to VotesTallied
// 7. Winner is "X"
// 8. Every step landed in the event journal
func TestFullElectionWorkflow(t *testing.T) {
	cfg := testutil.GetTestConfig()
	_, journal := testutil.SetupTestJournal(t)
	authz := auth.KeyAuthorizer{Election: cfg.ElectionName, Salt: cfg.AdminKeySalt}
	ctrl := election.NewController(authz, journal)

	electionHandler := NewElectionHandler(ctrl, cfg)
	votingHandler := NewVotingHandler(ctrl, cfg)
	resultsHandler := NewResultsHandler(ctrl, journal, cfg)

	adminKey := testutil.TestAdminKey()
	admin := map[string]string{"X-Admin-Key": adminKey}

	// Step 1: Register voters A and B
	for _, principal := range []string{"A", "B"} {
		req := testutil.MakeRequest("POST", "/election/voters",
			models.RegisterVoterRequest{Principal: principal}, admin)
		w := httptest.NewRecorder()
		electionHandler.RegisterVoter(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Register voter %s failed: %d - %s", principal, w.Code, w.Body.String())
		}
	}

	advance := func(target string) {
		t.Helper()
		req := testutil.MakeRequest("POST", "/election/phase",
			models.AdvancePhaseRequest{Target: target}, admin)
		w := httptest.NewRecorder()
		electionHandler.AdvancePhase(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Advance to %s failed: %d - %s", target, w.Code, w.Body.String())
		}
	}

	// Step 2: Open proposal registration
	advance("ProposalsRegistrationStarted")

	// Step 3: A registers "X", B registers "Y"
	proposals := []struct{ principal, description string }{
		{"A", "X"},
		{"B", "Y"},
	}
	for _, p := range proposals {
		req := testutil.MakeRequest("POST", "/election/proposals",
			models.RegisterProposalRequest{Description: p.description},
			map[string]string{"X-Principal": p.principal})
		w := httptest.NewRecorder()
		votingHandler.RegisterProposal(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Register proposal %q failed: %d - %s", p.description, w.Code, w.Body.String())
		}
	}

	// Step 4: Close proposals, open voting
	advance("ProposalsRegistrationEnded")
	advance("VotingSessionStarted")

	// Step 5: Both vote for "X" (id 0)
	for _, principal := range []string{"A", "B"} {
		req := testutil.MakeRequest("POST", "/election/votes",
			models.CastVoteRequest{ProposalID: 0},
			map[string]string{"X-Principal": principal})
		w := httptest.NewRecorder()
		votingHandler.CastVote(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 5 - Vote from %s failed: %d - %s", principal, w.Code, w.Body.String())
		}
	}

	// Step 6: End voting and tally
	advance("VotingSessionEnded")
	advance("VotesTallied")

	// Step 7: Winner is "X"
	req := testutil.MakeRequest("GET", "/election/winner", nil, nil)
	w := httptest.NewRecorder()
	resultsHandler.GetWinner(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 7 - Winner query failed: %d - %s", w.Code, w.Body.String())
	}
	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if winner.Winner != "X" {
		t.Errorf("Step 7 - Expected winner X, got %q", winner.Winner)
	}

	// Step 8: The journal holds every emitted event:
	// 2 registrations + 2 proposals + 2 votes + 4 transitions
	entries, err := journal.List(100)
	if err != nil {
		t.Fatalf("Step 8 - Journal query failed: %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("Step 8 - Expected 10 journaled events, got %d", len(entries))
	}

	counts := map[string]int{}
	for _, e := range entries {
		counts[e.Name]++
	}
	if counts[election.EventVoterRegistered] != 2 ||
		counts[election.EventProposalRegistered] != 2 ||
		counts[election.EventVoteCast] != 2 ||
		counts[election.EventWorkflowStatusChanged] != 4 {
		t.Errorf("Step 8 - Unexpected event mix: %v", counts)
	}
}

// TestResetWorkflow runs an election to completion, resets it, and verifies
// the next election starts clean
func TestResetWorkflow(t *testing.T) {
	cfg := testutil.GetTestConfig()
	ctrl, _ := testutil.NewTestController(t)
	electionHandler := NewElectionHandler(ctrl, cfg)
	resultsHandler := newResultsHandler(t, ctrl)

	testutil.RegisterTestVoters(t, ctrl, "A", "B")
	testutil.AdvanceTo(t, ctrl, election.ProposalsRegistrationStarted)
	if _, err := ctrl.RegisterProposal("A", "X"); err != nil {
		t.Fatalf("RegisterProposal failed: %v", err)
	}
	testutil.AdvanceTo(t, ctrl, election.VotingSessionStarted)
	if err := ctrl.CastVote("A", 0); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	testutil.AdvanceTo(t, ctrl, election.VotesTallied)

	req := testutil.MakeRequest("POST", "/election/reset", nil,
		map[string]string{"X-Admin-Key": testutil.TestAdminKey()})
	w := httptest.NewRecorder()
	electionHandler.Reset(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Proposals are gone
	req = testutil.MakeRequest("GET", "/election/proposals", nil, nil)
	w = httptest.NewRecorder()
	resultsHandler.GetProposals(w, req)
	var proposals []models.ProposalView
	testutil.AssertJSON(t, w, &proposals)
	if len(proposals) != 0 {
		t.Errorf("Expected no proposals after reset, got %d", len(proposals))
	}

	// A's record is zeroed but still resolvable
	req = testutil.MakeRequest("GET", "/election/voters/A", nil, nil)
	req.SetPathValue("principal", "A")
	w = httptest.NewRecorder()
	resultsHandler.GetVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var voter models.VoterView
	testutil.AssertJSON(t, w, &voter)
	if voter.IsRegistered || voter.HasVoted || voter.VotedProposalID != 0 {
		t.Errorf("Expected zeroed voter record after reset, got %+v", voter)
	}
}
