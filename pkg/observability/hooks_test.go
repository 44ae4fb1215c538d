package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPlacementHooks{}
	p.OnComputeStart(ctx, "A", "diamond")
	p.OnComputeComplete(ctx, "A", "diamond", 2, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "placement")
	c.OnCacheMiss(ctx, "placement")
	c.OnCacheSet(ctx, "placement", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Placement() should return NoopPlacementHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customPlacement := &testPlacementHooks{}
	SetPlacementHooks(customPlacement)
	if Placement() != customPlacement {
		t.Error("SetPlacementHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Placement().(NoopPlacementHooks); !ok {
		t.Error("Reset() should restore NoopPlacementHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlacementHooks{}
	SetPlacementHooks(custom)

	// Setting nil should be ignored
	SetPlacementHooks(nil)

	if Placement() != custom {
		t.Error("SetPlacementHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPlacementHooks struct{ NoopPlacementHooks }
type testCacheHooks struct{ NoopCacheHooks }
