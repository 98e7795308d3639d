package cache

import (
	"context"
	"testing"
	"time"

	"github.com/everbuy/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}

	ctx := context.Background()
	if err := SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("set on disabled cache failed: %v", err)
	}
	var dest map[string]int
	found, err := GetJSON(ctx, "k", &dest)
	if err != nil || found {
		t.Fatalf("expected miss on disabled cache, got found=%v err=%v", found, err)
	}
	deleted, err := InvalidateCatalog(ctx)
	if err != nil || deleted != 0 {
		t.Fatalf("expected noop invalidation, got %d %v", deleted, err)
	}
	if err := Close(); err != nil {
		t.Fatalf("close disabled cache failed: %v", err)
	}
}

func TestListingKeyIsCatalogScoped(t *testing.T) {
	key := ListingKey("Phone ", "all", "featured")
	if key != "catalog:listing|phone |all|featured" {
		t.Fatalf("unexpected listing key: %q", key)
	}
	if ListingKey("WATCH", "all", "name") != ListingKey("watch", "all", "name") {
		t.Fatalf("listing key should ignore search case")
	}
}

func TestNormalizePrefixAndBuildKey(t *testing.T) {
	cases := map[string]string{
		"":        "eb",
		"  ":      "eb",
		"shop:":   "shop",
		" store ": "store",
	}
	for raw, want := range cases {
		if got := normalizePrefix(raw); got != want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", raw, got, want)
		}
	}

	prev := redisPrefix
	redisPrefix = "eb"
	t.Cleanup(func() { redisPrefix = prev })
	if got := buildKey(" catalog:listing|a "); got != "eb:catalog:listing|a" {
		t.Fatalf("unexpected built key: %q", got)
	}
	if got := buildKey(""); got != "eb" {
		t.Fatalf("empty key should map to prefix, got %q", got)
	}
}
