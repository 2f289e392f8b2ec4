// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all API routes using Go 1.22+ method routing.

Routes are grouped by concern:

  - Admin: POST /election/voters, /election/phase, /election/reset
  - Voting: POST /election/proposals, /election/votes
  - Queries: GET /election, /election/phase, /election/proposals,
    /election/winner, /election/voters/{principal}, /election/events

All routes are wrapped with request logging middleware.
*/
package router
