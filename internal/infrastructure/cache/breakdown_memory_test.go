package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fplytics/fpl-insights/internal/domain/attribution"
	platformcache "github.com/fplytics/fpl-insights/internal/platform/cache"
)

func TestMemoryBreakdownCache_GetOrLoad(t *testing.T) {
	t.Parallel()

	store := platformcache.NewStore(time.Minute)
	c := NewMemoryBreakdownCache(store)
	ctx := context.Background()

	loads := 0
	loader := func(context.Context) (attribution.Breakdown, error) {
		loads++
		return attribution.Breakdown{PlayerID: 7, Total: 12}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrLoad(ctx, "breakdown:7:1:3", loader)
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if got.PlayerID != 7 || got.Total != 12 {
			t.Fatalf("unexpected breakdown: %+v", got)
		}
	}
	if loads != 1 {
		t.Fatalf("expected a single load, got %d", loads)
	}
}

func TestMemoryBreakdownCache_LoaderErrorNotCached(t *testing.T) {
	t.Parallel()

	store := platformcache.NewStore(time.Minute)
	c := NewMemoryBreakdownCache(store)
	ctx := context.Background()

	calls := 0
	boom := errors.New("boom")
	loader := func(context.Context) (attribution.Breakdown, error) {
		calls++
		if calls == 1 {
			return attribution.Breakdown{}, boom
		}
		return attribution.Breakdown{PlayerID: 1}, nil
	}

	if _, err := c.GetOrLoad(ctx, "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	got, err := c.GetOrLoad(ctx, "k", loader)
	if err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}
	if got.PlayerID != 1 {
		t.Fatalf("second call must recompute, got %+v", got)
	}
}
