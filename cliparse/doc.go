// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over environment variables; a .env file (loaded by
main before parsing) feeds the environment for development.

Required settings:

  - DATABASE_URL (-d): connection string for the event journal
  - ADMIN_KEY_SALT (-admin-salt): secret for the admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ELECTION_NAME (-election): name of the hosted election (default: general)
*/
package cliparse
