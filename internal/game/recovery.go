package game

import (
	"github.com/aaronzipp/gridscore/internal/models"
	"github.com/aaronzipp/gridscore/internal/store"
)

// Disconnect removes clientID from room (must be called with the room's write
// lock held). When it was the last client the room is deleted from rooms and
// closed, and removed is true. Otherwise every slot the client controlled is
// handed to the first remaining client, and reassigned counts those slots.
func Disconnect(rooms *store.RoomStore, room *models.Room, clientID string) (removed bool, reassigned int) {
	if !room.HasClient(clientID) {
		return false, 0
	}
	if len(room.Clients) == 1 {
		rooms.Delete(room.ID)
		room.Close()
		return true, 0
	}

	room.RemoveClient(clientID)
	return false, ReassignSlots(room.Session, clientID, room.Clients[0])
}

// ReassignSlots moves every slot controlled by from to the client to
func ReassignSlots(s *models.Session, from, to string) int {
	n := 0
	for _, p := range s.Players {
		if p.ClientID == from {
			p.ClientID = to
			n++
		}
	}
	return n
}
