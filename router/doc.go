// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the noteboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ledger, journal, metrics)

# Endpoints

Health:

	GET /health

Notes:

	POST /notes              - Add a note as the acting user
	POST /notes/{index}/vote - Upvote or downvote (repeat to undo)
	GET  /notes/view         - Every note as the acting user sees it

Acting user:

	GET  /session/user - Current user and the fixed user list
	POST /session/user - Switch the acting user

Observability:

	GET /events  - Journal of this session's mutations
	GET /metrics - Prometheus metrics

Every route except /health and /metrics is wrapped with request logging
and request metrics.
*/
package router
