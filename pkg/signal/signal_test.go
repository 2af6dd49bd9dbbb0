package signal_test

import (
	"testing"

	"github.com/flui-ui/flui/pkg/signal"
)

func TestGetSetOutsideScopeIsPlainReadWrite(t *testing.T) {
	id := signal.New(1)
	if got := signal.Get[int](id); got != 1 {
		t.Fatalf("Get = %v, want 1", got)
	}
	signal.Set(id, 2)
	if got := signal.Get[int](id); got != 2 {
		t.Fatalf("Get after Set = %v, want 2", got)
	}
}

func TestUpdateAppliesTransform(t *testing.T) {
	id := signal.New(10)
	signal.Update(id, func(v int) int { return v + 5 })
	if got := signal.Get[int](id); got != 15 {
		t.Fatalf("Get after Update = %v, want 15", got)
	}
}

func TestScopeInvalidatesOnWriteAfterRead(t *testing.T) {
	id := signal.New("a")
	invalidated := 0
	scope := signal.BeginScope(func() { invalidated++ })
	_ = signal.Get[string](id)
	scope.End()

	signal.Set(id, "b")
	if invalidated != 1 {
		t.Fatalf("expected exactly one invalidation after a dependent write, got %d", invalidated)
	}

	// A second write without an intervening read-within-scope must not
	// invalidate again: each scope's dependency is consumed on write and
	// must be re-established by its next build.
	signal.Set(id, "c")
	if invalidated != 1 {
		t.Fatalf("expected no further invalidation without a re-read, got %d", invalidated)
	}
}

func TestScopeNotInvalidatedWithoutRead(t *testing.T) {
	id := signal.New(0)
	invalidated := 0
	scope := signal.BeginScope(func() { invalidated++ })
	// No Get call inside the scope.
	scope.End()

	signal.Set(id, 1)
	if invalidated != 0 {
		t.Fatalf("expected no invalidation for a scope that never read the signal, got %d", invalidated)
	}
}

func TestForgetStopsFutureInvalidation(t *testing.T) {
	id := signal.New(0)
	invalidated := 0
	scope := signal.BeginScope(func() { invalidated++ })
	_ = signal.Get[int](id)
	scope.End()
	scope.Forget()

	signal.Set(id, 1)
	if invalidated != 0 {
		t.Fatalf("expected Forget to prevent further invalidation, got %d", invalidated)
	}
}

func TestAddListenerFiresSynchronouslyOnWrite(t *testing.T) {
	id := signal.New(0)
	var seen int
	unsub := signal.AddListener(id, func(v int) { seen = v })
	signal.Set(id, 42)
	if seen != 42 {
		t.Fatalf("expected listener to observe 42, got %v", seen)
	}
	unsub()
	signal.Set(id, 43)
	if seen != 42 {
		t.Fatalf("expected unsubscribed listener to not fire, still 42, got %v", seen)
	}
}

func TestNestedScopesOnlyInvalidateTheOneThatRead(t *testing.T) {
	a := signal.New(1)
	b := signal.New(2)
	var invalidatedA, invalidatedB bool

	outer := signal.BeginScope(func() { invalidatedA = true })
	_ = signal.Get[int](a)
	inner := signal.BeginScope(func() { invalidatedB = true })
	_ = signal.Get[int](b)
	inner.End()
	outer.End()

	signal.Set(b, 20)
	if invalidatedB != true || invalidatedA != false {
		t.Fatalf("expected only the inner scope's dependency to invalidate it, got A=%v B=%v", invalidatedA, invalidatedB)
	}
}
