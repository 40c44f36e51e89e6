package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestRoomIdIsOrderIndependent(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	if RoomId(a, b) != RoomId(b, a) {
		t.Fatal("both participants must derive the same room id")
	}

	want := a.String() + "_" + b.String()
	if got := RoomId(b, a); got != want {
		t.Errorf("RoomId = %q, want smaller id first: %q", got, want)
	}
}

func TestRoomIdSelf(t *testing.T) {
	a := uuid.New()
	want := a.String() + "_" + a.String()
	if got := RoomId(a, a); got != want {
		t.Errorf("RoomId = %q, want %q", got, want)
	}
}
