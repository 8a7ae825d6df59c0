package ui

import (
	"context"
	"sync"
	"testing"
)

func TestControlIDPrefersSupplied(t *testing.T) {
	t.Parallel()

	got, err := ControlID(WithScope(context.Background()), KindInput, "  email ")
	if err != nil {
		t.Fatalf("control id: %v", err)
	}
	if got != "email" {
		t.Fatalf("id = %q, want email", got)
	}
}

func TestControlIDUniqueUnderConcurrentRenders(t *testing.T) {
	t.Parallel()

	ctx := WithScope(context.Background())
	const workers = 32
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ControlID(ctx, KindSwitch, "")
			if err != nil {
				t.Errorf("control id: %v", err)
				return
			}
			ids <- got
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for got := range ids {
		if seen[got] {
			t.Fatalf("duplicate id %q", got)
		}
		seen[got] = true
	}
	if len(seen) != workers {
		t.Fatalf("ids = %d, want %d", len(seen), workers)
	}
}

func TestClaimOnce(t *testing.T) {
	t.Parallel()

	ctx := WithScope(context.Background())
	if !claimOnce(ctx, "k") || claimOnce(ctx, "k") {
		t.Fatalf("claimOnce should succeed exactly once per scope")
	}
	if !claimOnce(context.Background(), "k") || !claimOnce(context.Background(), "k") {
		t.Fatalf("claimOnce without scope should always succeed")
	}
}

func TestParseControlSize(t *testing.T) {
	t.Parallel()

	for _, size := range ControlSizes() {
		got, err := ParseControlSize(size.String())
		if err != nil || got != size {
			t.Fatalf("ParseControlSize(%s) = %v, %v", size, got, err)
		}
	}
	if _, err := ParseControlSize("xl"); err == nil {
		t.Fatalf("expected error for xl")
	}
	if ControlSize(7).Valid() {
		t.Fatalf("ControlSize(7) reported valid")
	}
}
