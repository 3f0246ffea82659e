// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the public and admin JSON API endpoints.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// respondJSON encodes v as the response body with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// respondError writes a JSON error body. Internal details stay in the logs;
// the client sees only the message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondInternalError logs the failure and returns a generic 500.
func respondInternalError(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	respondError(w, http.StatusInternalServerError, "Internal Server Error")
}

// decodeJSON decodes the request body into dst, rejecting unknown fields so
// client typos fail loudly instead of silently dropping data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
