package handlers

import (
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/render"
)

// Disconnect removes c from its room. The last client out removes the room;
// otherwise its turn slots pass to the room's first remaining client.
func (ctx *Context) Disconnect(c *Client) {
	if c.RoomID == "" {
		return
	}
	roomID := c.RoomID
	c.RoomID = ""

	room, exists := ctx.Rooms.Get(roomID)
	if !exists {
		return
	}

	room.Lock()
	defer room.Unlock()
	room.RemoveSubscriber(c.Send)
	if room.Closed() {
		return
	}

	removed, reassigned := game.Disconnect(ctx.Rooms, room, c.ID)
	if removed {
		log.Info().Str("room_id", room.ID).Str("client_id", c.ID).Msg("last client left, room removed")
		broadcast.Publish(room, broadcast.EventSendHome, nil)
		return
	}

	log.Info().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Int("reassigned_slots", reassigned).
		Int("client_count", len(room.Clients)).
		Msg("client left room")
	broadcast.Publish(room, broadcast.EventPlayerLeft, render.Count(room))
	broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
	broadcast.Publish(room, broadcast.EventUpdateColours, render.Colours(room))
}

// CloseAll removes every room and sends its subscribers home
func (ctx *Context) CloseAll() {
	rooms := ctx.Rooms.Drain()
	for _, room := range rooms {
		room.Lock()
		room.Close()
		broadcast.Publish(room, broadcast.EventSendHome, nil)
		room.Unlock()
	}
	log.Info().Int("rooms", len(rooms)).Msg("registry torn down")
}
