// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "sync"

// Principal is an opaque caller identifier (voter or administrator).
type Principal string

// Voter is the per-principal ballot record. VotedProposalID is only
// meaningful while HasVoted is true.
type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID uint `json:"voted_proposal_id"`
}

// Proposal is a candidate option. Its id is its position in registration
// order, which is stable for the lifetime of the election.
type Proposal struct {
	Description string `json:"description"`
	VoteCount   uint   `json:"vote_count"`
}

// ProposalResult is a proposal together with its stable id, as exposed by
// queries. Individual votes are never exposed by proposal.
type ProposalResult struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	VoteCount   uint   `json:"vote_count"`
}

// Authorizer decides whether a caller holds the administrator capability.
type Authorizer interface {
	IsAdmin(caller Principal) bool
}

// Controller owns the state of a single election and enforces the phase
// state machine over it. All mutations are serialized behind one lock and
// validated in full before any state is touched, so a failing call leaves
// the election unchanged. Queries may run concurrently with each other.
type Controller struct {
	mu   sync.RWMutex
	auth Authorizer
	sink EventSink

	phase      Phase
	voters     map[Principal]*Voter
	voterOrder []Principal
	proposals  []Proposal
}

// NewController creates an election in the RegisteringVoters phase.
// A nil sink disables event emission; a nil authorizer rejects every
// admin operation.
func NewController(auth Authorizer, sink EventSink) *Controller {
	return &Controller{
		auth:   auth,
		sink:   sink,
		phase:  RegisteringVoters,
		voters: make(map[Principal]*Voter),
	}
}

// RegisterVoter adds a voter during the RegisteringVoters phase.
// Admin only.
func (c *Controller) RegisterVoter(caller, voter Principal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(caller) {
		return ErrUnauthorized
	}
	if c.phase != RegisteringVoters {
		return ErrInvalidPhase
	}
	if v, ok := c.voters[voter]; ok && v.IsRegistered {
		return ErrAlreadyRegistered
	}

	// A principal left over from a previous election (reset keeps the map
	// entry with IsRegistered=false) is re-registered in place.
	c.voters[voter] = &Voter{IsRegistered: true}
	c.voterOrder = append(c.voterOrder, voter)
	c.emit(voterRegistered(voter))
	return nil
}

// RegisterProposal appends a proposal during ProposalsRegistrationStarted
// and returns its id. The caller must be a registered voter. Descriptions
// are unique per election, compared case-sensitively.
func (c *Controller) RegisterProposal(caller Principal, description string) (uint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRegisteredVoter(caller) {
		return 0, ErrUnauthorized
	}
	if c.phase != ProposalsRegistrationStarted {
		return 0, ErrInvalidPhase
	}
	for _, p := range c.proposals {
		if p.Description == description {
			return 0, ErrDuplicateProposal
		}
	}

	c.proposals = append(c.proposals, Proposal{Description: description})
	id := uint(len(c.proposals) - 1)
	c.emit(proposalRegistered(id))
	return id, nil
}

// CastVote records the caller's single vote for a proposal during
// VotingSessionStarted.
func (c *Controller) CastVote(caller Principal, proposalID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isRegisteredVoter(caller) {
		return ErrUnauthorized
	}
	if c.phase != VotingSessionStarted {
		return ErrInvalidPhase
	}
	voter := c.voters[caller]
	if voter.HasVoted {
		return ErrAlreadyVoted
	}
	if proposalID >= uint(len(c.proposals)) {
		return ErrNoSuchProposal
	}

	voter.HasVoted = true
	voter.VotedProposalID = proposalID
	c.proposals[proposalID].VoteCount++
	c.emit(voteCast(caller, proposalID))
	return nil
}

// AdvancePhase moves the election to target, which must be exactly the next
// phase in the fixed order. Advancing to ProposalsRegistrationEnded also
// requires at least one registered proposal. Admin only.
func (c *Controller) AdvancePhase(caller Principal, target Phase) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(caller) {
		return ErrUnauthorized
	}
	if target == c.phase {
		return ErrPhaseAlreadyActive
	}
	if !target.Valid() || target != c.phase+1 {
		return ErrInvalidTransition
	}
	if target == ProposalsRegistrationEnded && len(c.proposals) == 0 {
		return ErrNoProposals
	}

	previous := c.phase
	c.phase = target
	c.emit(workflowStatusChanged(previous, target))
	return nil
}

// Reset ends a tallied election and returns to RegisteringVoters. Every
// voter record is cleared but stays in the known-voters index, so a
// principal's history of having been registered is forgotten while lookups
// still resolve. Proposals and the registration order are dropped entirely.
// Admin only, and only legal from VotesTallied.
func (c *Controller) Reset(caller Principal) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isAdmin(caller) {
		return ErrUnauthorized
	}
	if c.phase != VotesTallied {
		return ErrInvalidPhase
	}

	for _, principal := range c.voterOrder {
		if v := c.voters[principal]; v != nil && v.IsRegistered {
			*v = Voter{}
		}
	}
	c.voterOrder = nil
	c.proposals = nil

	previous := c.phase
	c.phase = RegisteringVoters
	c.emit(workflowStatusChanged(previous, RegisteringVoters))
	return nil
}

// Winner returns the description of the proposal with the unique maximum
// vote count. It fails with ErrTieDetected when two or more proposals share
// the maximum, and with ErrNoProposals when nothing was registered. Only
// legal once votes are tallied.
func (c *Controller) Winner() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.phase != VotesTallied {
		return "", ErrInvalidPhase
	}
	if len(c.proposals) == 0 {
		return "", ErrNoProposals
	}

	// Two passes: find the maximum, then count how many proposals hold it.
	// A single "first max wins" pass cannot distinguish a unique maximum
	// from a tied one.
	var maxVotes uint
	for _, p := range c.proposals {
		if p.VoteCount > maxVotes {
			maxVotes = p.VoteCount
		}
	}

	tied := 0
	winner := ""
	for _, p := range c.proposals {
		if p.VoteCount == maxVotes {
			tied++
			if winner == "" {
				winner = p.Description
			}
		}
	}
	if tied > 1 {
		return "", ErrTieDetected
	}
	return winner, nil
}

// Phase returns the current workflow phase.
func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Proposals returns all proposals in registration order with their ids.
func (c *Controller) Proposals() []ProposalResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]ProposalResult, len(c.proposals))
	for i, p := range c.proposals {
		results[i] = ProposalResult{
			ID:          uint(i),
			Description: p.Description,
			VoteCount:   p.VoteCount,
		}
	}
	return results
}

// GetVoter returns the record for a principal, or ErrVoterNotFound if the
// principal was never registered.
func (c *Controller) GetVoter(principal Principal) (Voter, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.voters[principal]
	if !ok {
		return Voter{}, ErrVoterNotFound
	}
	return *v, nil
}

// RegisteredVoters returns the number of currently registered voters.
func (c *Controller) RegisteredVoters() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.voterOrder)
}

func (c *Controller) isAdmin(caller Principal) bool {
	return c.auth != nil && c.auth.IsAdmin(caller)
}

func (c *Controller) isRegisteredVoter(caller Principal) bool {
	v, ok := c.voters[caller]
	return ok && v.IsRegistered
}

func (c *Controller) emit(e Event) {
	if c.sink != nil {
		c.sink.Emit(e)
	}
}
