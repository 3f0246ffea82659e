// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"net/http"

	"coverpress/internal/cache"
)

// cacheRecorder buffers a response so a successful body can be stored after
// the handler returns. Headers and status pass through untouched.
type cacheRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (cr *cacheRecorder) WriteHeader(status int) {
	cr.status = status
	cr.ResponseWriter.WriteHeader(status)
}

func (cr *cacheRecorder) Write(b []byte) (int, error) {
	cr.body.Write(b)
	return cr.ResponseWriter.Write(b)
}

// ResponseCache serves public GET responses from Valkey when a fresh copy
// exists and stores successful responses on miss. Non-GET requests and
// non-200 responses are never cached.
func ResponseCache(rc *cache.ResponseCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cache.RequestKey(r.URL.Path, r.URL.RawQuery)
			if body, ok := rc.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			rec := &cacheRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status == http.StatusOK {
				rc.Set(r.Context(), key, rec.body.Bytes())
			}
		})
	}
}
