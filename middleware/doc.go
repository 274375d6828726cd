// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /notes/view", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request ID comes from X-Request-ID or a new UUID
and is echoed in the response header; handlers read it with RequestID.

# Metrics

WithMetrics counts requests and observes latency under the matched route
pattern:

	middleware.WithMetrics(m, handler)

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse and validate request bodies (validator tags on models):

	var req models.AddNoteRequest
	if !middleware.ParseAndValidate(w, r, &req) {
		return
	}
*/
package middleware
