// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/middleware"
)

// writeDomainError maps election errors to HTTP statuses. Everything the
// state machine rejects is a conflict with the election's current state;
// only role and lookup failures differ.
func writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusConflict
	switch {
	case errors.Is(err, election.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, election.ErrVoterNotFound), errors.Is(err, election.ErrNoSuchProposal):
		status = http.StatusNotFound
	}
	middleware.ErrorResponse(w, status, err.Error())
}
