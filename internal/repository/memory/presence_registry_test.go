package memory

import (
	"testing"

	"github.com/google/uuid"
)

func TestPresenceRegistryLastWriterWins(t *testing.T) {
	r := NewPresenceRegistry()
	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	r.Set(userID, first)
	r.Set(userID, second)

	conn, ok := r.Get(userID)
	if !ok || conn != second {
		t.Fatalf("Get = (%v, %v), want (%v, true)", conn, ok, second)
	}
}

func TestPresenceRegistryRemoveIfCurrent(t *testing.T) {
	r := NewPresenceRegistry()
	userID := uuid.New()
	current := uuid.New()
	stale := uuid.New()

	r.Set(userID, current)

	if r.RemoveIfCurrent(userID, stale) {
		t.Fatal("stale connection must not remove the entry")
	}
	if _, ok := r.Get(userID); !ok {
		t.Fatal("entry should survive a stale removal")
	}

	if !r.RemoveIfCurrent(userID, current) {
		t.Fatal("current connection should remove the entry")
	}
	if _, ok := r.Get(userID); ok {
		t.Fatal("entry should be gone")
	}

	if r.RemoveIfCurrent(userID, current) {
		t.Fatal("second removal must report false")
	}
}

func TestPresenceRegistryGetUnknown(t *testing.T) {
	r := NewPresenceRegistry()
	if conn, ok := r.Get(uuid.New()); ok || conn != uuid.Nil {
		t.Fatalf("Get = (%v, %v), want (Nil, false)", conn, ok)
	}
}
