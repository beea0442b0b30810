package dashboard

import (
	"errors"
	"testing"
	"time"
)

func TestChartCacheMemoizes(t *testing.T) {
	cache := NewChartCache(time.Minute)
	calls := 0
	render := func() (string, error) {
		calls++
		return "<div>chart</div>", nil
	}

	for i := 0; i < 3; i++ {
		html, err := cache.GetOrRender("stock:light:abc", render)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if html != "<div>chart</div>" {
			t.Fatalf("unexpected html %q", html)
		}
	}
	if calls != 1 {
		t.Fatalf("expected one render, got %d", calls)
	}
}

func TestChartCacheExpires(t *testing.T) {
	cache := NewChartCache(10 * time.Millisecond)
	calls := 0
	render := func() (string, error) {
		calls++
		return "x", nil
	}

	if _, err := cache.GetOrRender("k", render); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := cache.GetOrRender("k", render); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected re-render after expiry, got %d calls", calls)
	}
}

func TestChartCacheDoesNotStoreErrors(t *testing.T) {
	cache := NewChartCache(time.Minute)
	boom := errors.New("render failed")
	calls := 0

	_, err := cache.GetOrRender("k", func() (string, error) {
		calls++
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}

	html, err := cache.GetOrRender("k", func() (string, error) {
		calls++
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "recovered" || calls != 2 {
		t.Fatalf("expected retry after failure, got %q after %d calls", html, calls)
	}
}

func TestChartCacheZeroTTLDisablesCaching(t *testing.T) {
	cache := NewChartCache(0)
	calls := 0
	render := func() (string, error) {
		calls++
		return "x", nil
	}

	for i := 0; i < 2; i++ {
		if _, err := cache.GetOrRender("k", render); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected no caching with zero ttl, got %d calls", calls)
	}
}

func TestDatasetHashDeterministic(t *testing.T) {
	type payload struct {
		Name  string
		Value int
	}
	a := datasetHash(payload{Name: "Aspirin", Value: 12})
	b := datasetHash(payload{Name: "Aspirin", Value: 12})
	c := datasetHash(payload{Name: "Aspirin", Value: 13})

	if a != b {
		t.Fatalf("hash not deterministic: %s vs %s", a, b)
	}
	if a == c {
		t.Fatal("distinct payloads hashed identically")
	}
}
