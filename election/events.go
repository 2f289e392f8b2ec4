// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// Event names emitted by the controller.
const (
	EventVoterRegistered       = "VoterRegistered"
	EventProposalRegistered    = "ProposalRegistered"
	EventVoteCast              = "VoteCast"
	EventWorkflowStatusChanged = "WorkflowStatusChanged"
)

// Event is a domain notification produced after a successful mutation.
type Event struct {
	Name       string
	OccurredAt time.Time
	Payload    map[string]any
}

// EventSink receives domain events, fire-and-forget. A failing sink must
// swallow its own errors: emission is best-effort and never rolls back the
// mutation that produced the event. Emit is called with the controller's
// lock held and must not call back into the controller.
type EventSink interface {
	Emit(e Event)
}

func newEvent(name string, payload map[string]any) Event {
	return Event{Name: name, OccurredAt: time.Now().UTC(), Payload: payload}
}

func voterRegistered(p Principal) Event {
	return newEvent(EventVoterRegistered, map[string]any{
		"principal": string(p),
	})
}

func proposalRegistered(id uint) Event {
	return newEvent(EventProposalRegistered, map[string]any{
		"proposal_id": id,
	})
}

func voteCast(p Principal, id uint) Event {
	return newEvent(EventVoteCast, map[string]any{
		"voter":       string(p),
		"proposal_id": id,
	})
}

func workflowStatusChanged(previous, next Phase) Event {
	return newEvent(EventWorkflowStatusChanged, map[string]any{
		"previous": previous.String(),
		"next":     next.String(),
	})
}
