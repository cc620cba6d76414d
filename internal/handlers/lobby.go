package handlers

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/render"
)

// hostSetup creates a room with c as its first client
func (ctx *Context) hostSetup(c *Client, p HostSetupPayload) {
	if c.RoomID != "" {
		sendErr(c, "ALREADY_IN_ROOM", "already in room "+c.RoomID)
		return
	}
	roomID := strings.TrimSpace(p.Host)
	if roomID == "" {
		roomID = c.HostCode
	}

	room, err := ctx.Rooms.Create(roomID, c.ID, game.NewSession())
	if err != nil {
		log.Debug().Err(err).Str("room_id", roomID).Str("client_id", c.ID).Msg("host setup rejected")
		sendErr(c, "ROOM_EXISTS", "room "+roomID+" already exists")
		return
	}

	room.Lock()
	defer room.Unlock()
	broadcast.AddClientLocked(room, c.Send, c.ID)
	c.RoomID = room.ID

	log.Info().Str("room_id", room.ID).Str("client_id", c.ID).Msg("room created")
	broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
	broadcast.Publish(room, broadcast.EventUpdateColours, render.Colours(room))
}

// joinLobby adds c to an existing room, or sends it home if there is none
func (ctx *Context) joinLobby(c *Client, p JoinLobbyPayload) {
	roomID := strings.TrimSpace(p.Join)
	room, err := ctx.Rooms.Find(roomID)
	if err != nil {
		log.Info().Str("room_id", roomID).Str("client_id", c.ID).Msg("join: room not found")
		sendHome(c)
		return
	}

	room.Lock()
	defer room.Unlock()
	if room.Closed() {
		sendHome(c)
		return
	}
	if c.RoomID == room.ID {
		return
	}
	if c.RoomID != "" {
		sendErr(c, "ALREADY_IN_ROOM", "already in room "+c.RoomID)
		return
	}

	room.Clients = append(room.Clients, c.ID)
	broadcast.AddClientLocked(room, c.Send, c.ID)
	c.RoomID = room.ID

	log.Info().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Int("client_count", len(room.Clients)).
		Msg("client joined room")
	broadcast.Publish(room, broadcast.EventPlayerJoined, render.Count(room))
	broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
	broadcast.Publish(room, broadcast.EventUpdateColours, render.Colours(room))
}
