// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "api:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	// Verify connection.
	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestRequestKey(t *testing.T) {
	if got := RequestKey("/api/blogs", ""); got != "/api/blogs" {
		t.Errorf("no query: got %q", got)
	}
	if got := RequestKey("/api/blogs", "page=2&search=teen"); got != "/api/blogs?page=2&search=teen" {
		t.Errorf("with query: got %q", got)
	}
}

func TestResponseCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	data, ok := rc.Get(ctx, "/api/blogs")
	if ok {
		t.Error("expected cache miss")
	}
	if data != nil {
		t.Error("expected nil data on miss")
	}

	// Set.
	body := []byte(`{"results":[],"total_count":0}`)
	rc.Set(ctx, "/api/blogs", body)

	// Hit.
	data, ok = rc.Get(ctx, "/api/blogs")
	if !ok {
		t.Error("expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("data mismatch: got %q, want %q", data, body)
	}
}

func TestResponseCacheQueryIsPartOfKey(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, 1*time.Minute)

	ctx := context.Background()
	rc.Set(ctx, RequestKey("/api/blogs", "page=1"), []byte("one"))
	rc.Set(ctx, RequestKey("/api/blogs", "page=2"), []byte("two"))

	data, ok := rc.Get(ctx, RequestKey("/api/blogs", "page=2"))
	if !ok || string(data) != "two" {
		t.Errorf("page=2: got %q, %v", data, ok)
	}
}

func TestResponseCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResponseCache(client, 1*time.Minute)

	ctx := context.Background()

	rc.Set(ctx, "/api/blogs", []byte("a"))
	rc.Set(ctx, "/api/homepage", []byte("b"))
	rc.Set(ctx, "/api/site-config", []byte("c"))

	rc.InvalidateAll(ctx)

	for _, key := range []string{"/api/blogs", "/api/homepage", "/api/site-config"} {
		if _, ok := rc.Get(ctx, key); ok {
			t.Errorf("expected miss for %q after InvalidateAll", key)
		}
	}
}

// A nil client disables caching without panicking anywhere.
func TestResponseCacheNilClient(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	ctx := context.Background()

	rc.Set(ctx, "/api/blogs", []byte("x"))
	if _, ok := rc.Get(ctx, "/api/blogs"); ok {
		t.Error("nil client must always miss")
	}
	rc.InvalidateAll(ctx)
}

func TestNewResponseCacheDefaultTTL(t *testing.T) {
	rc := NewResponseCache(nil, 0)
	if rc.ttl != DefaultResponseTTL {
		t.Errorf("expected DefaultResponseTTL (%v), got %v", DefaultResponseTTL, rc.ttl)
	}
}
