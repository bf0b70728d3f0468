package store

import (
	"context"
	"testing"
)

func TestMemoryPutGetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, _ := m.Get(ctx, "sid", KeyPaymentCompleted); ok {
		t.Fatal("Get on empty store reported presence")
	}

	if err := m.Put(ctx, "sid", KeyPaymentCompleted, "true"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := m.Get(ctx, "sid", KeyPaymentCompleted)
	if err != nil || !ok || got != "true" {
		t.Fatalf("Get = (%q, %v, %v), want (true, true, nil)", got, ok, err)
	}

	// Keys are scoped per session.
	if _, ok, _ := m.Get(ctx, "other-sid", KeyPaymentCompleted); ok {
		t.Fatal("key leaked across sessions")
	}

	if err := m.Put(ctx, "sid", KeyPaymentCompleted, "false"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if got, _, _ := m.Get(ctx, "sid", KeyPaymentCompleted); got != "false" {
		t.Fatalf("Get after overwrite = %q, want false", got)
	}

	if err := m.Remove(ctx, "sid", KeyPaymentCompleted); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "sid", KeyPaymentCompleted); ok {
		t.Fatal("key still present after Remove")
	}

	// Removing an absent key is fine.
	if err := m.Remove(ctx, "sid", "missing"); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}
}
