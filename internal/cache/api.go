// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api.go provides a Valkey-backed cache for public API responses. Encoded
// JSON bodies are stored keyed by request path and query so repeat reads
// skip the database entirely. Admin writes clear the whole namespace
// rather than tracking which endpoints a change affects.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// apiKeyPrefix is the Valkey key prefix for cached API responses.
	apiKeyPrefix = "api:"

	// DefaultResponseTTL is how long a cached response stays fresh.
	DefaultResponseTTL = 5 * time.Minute
)

// ResponseCache manages public API response caching in Valkey.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given Valkey
// client. A nil client disables caching; all gets miss and sets are no-ops.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// RequestKey builds the cache key for a request. The query string is part
// of the key because pagination and filters change the response.
func RequestKey(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// Get retrieves a cached response body. Returns false on miss or error;
// cache failures degrade to a database read, never to a request failure.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc.client == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, apiKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores an encoded response body with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc.client == nil {
		return
	}
	if err := rc.client.Set(ctx, apiKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
// Content edits can affect lists, details, related items, and the
// navigation at once, so a full clear is the safe and simple policy.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	if rc.client == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, apiKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
}
