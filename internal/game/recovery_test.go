package game

import (
	"slices"
	"testing"

	"github.com/aaronzipp/gridscore/internal/store"
)

func TestDisconnectReassignsSlots(t *testing.T) {
	rooms := store.NewRoomStore()
	s := configured(t, 3, 3, 3, "a", "b")
	room, err := rooms.Create("beef", "a", s)
	if err != nil {
		t.Fatal(err)
	}
	room.Clients = append(room.Clients, "b", "c")

	room.Lock()
	removed, reassigned := Disconnect(rooms, room, "a")
	room.Unlock()

	if removed {
		t.Fatal("room removed while clients remain")
	}
	if reassigned != 2 {
		t.Fatalf("expected 2 slots reassigned, got %d", reassigned)
	}
	if !slices.Equal(room.Clients, []string{"b", "c"}) {
		t.Fatalf("unexpected clients %v", room.Clients)
	}
	for i, p := range s.Players {
		if p.ClientID != "b" {
			t.Fatalf("slot %d still controlled by %q", i, p.ClientID)
		}
		if p.TurnOrder != i+1 {
			t.Fatalf("slot %d turn order changed to %d", i, p.TurnOrder)
		}
	}
	if !rooms.Exists("beef") {
		t.Fatal("room dropped from store")
	}
}

func TestDisconnectLastClientRemovesRoom(t *testing.T) {
	rooms := store.NewRoomStore()
	room, _ := rooms.Create("cafe", "a", NewSession())

	room.Lock()
	removed, _ := Disconnect(rooms, room, "a")
	closed := room.Closed()
	room.Unlock()

	if !removed || !closed {
		t.Fatalf("expected room removed and closed, got removed=%v closed=%v", removed, closed)
	}
	if rooms.Exists("cafe") {
		t.Fatal("room still registered")
	}
}

func TestDisconnectUnknownClient(t *testing.T) {
	rooms := store.NewRoomStore()
	room, _ := rooms.Create("f00d", "a", NewSession())

	room.Lock()
	removed, reassigned := Disconnect(rooms, room, "zz")
	room.Unlock()

	if removed || reassigned != 0 || len(room.Clients) != 1 {
		t.Fatalf("unexpected change for non-member: removed=%v reassigned=%d clients=%v", removed, reassigned, room.Clients)
	}
}

func TestReassignSlots(t *testing.T) {
	s := configured(t, 2, 2, 4, "a", "b")
	if n := ReassignSlots(s, "b", "a"); n != 2 {
		t.Fatalf("expected 2 slots moved, got %d", n)
	}
	if n := ReassignSlots(s, "b", "a"); n != 0 {
		t.Fatalf("expected nothing left to move, got %d", n)
	}
}
