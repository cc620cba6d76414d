package handlers

import (
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/render"
)

// gameSetup replaces the room's session with a freshly configured game
func (ctx *Context) gameSetup(c *Client, p GameSetupPayload) {
	room := ctx.lockMemberRoom(c, p.Host, EventGameSetup)
	if room == nil {
		return
	}
	defer room.Unlock()

	session, err := game.Configure(game.Setup{
		Rows:        int(p.Rows),
		Cols:        int(p.Cols),
		PlayerCount: int(p.PlayerCount),
		TargetScore: float64(p.TargetScore),
	}, room.Clients, ctx.Intn)
	if err != nil {
		rejected(room, c, EventGameSetup, err)
		sendErr(c, "INVALID_SETUP", err.Error())
		return
	}
	room.Session = session

	log.Info().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Int("rows", session.Rows).
		Int("cols", session.Cols).
		Int("players", len(session.Players)).
		Float64("target_score", session.TargetScore).
		Msg("game configured")
	broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
	broadcast.Publish(room, broadcast.EventUpdateColours, render.Colours(room))
}

// colourSelected claims a palette colour for a player slot
func (ctx *Context) colourSelected(c *Client, p ColourSelectedPayload) {
	room := ctx.lockMemberRoom(c, p.Host, EventColourSelected)
	if room == nil {
		return
	}
	defer room.Unlock()

	before := room.Session.Stage
	if err := game.PickColour(room.Session, int(p.Turn), p.Colour); err != nil {
		rejected(room, c, EventColourSelected, err)
		return
	}

	broadcast.Publish(room, broadcast.EventUpdateColours, render.Colours(room))
	if room.Session.Stage != before {
		log.Info().Str("room_id", room.ID).Str("stage", string(room.Session.Stage)).Msg("all colours claimed")
		broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
	}
}

// gameStarted moves a fully coloured session into play
func (ctx *Context) gameStarted(c *Client, p GameStartedPayload) {
	room := ctx.lockMemberRoom(c, p.Host, EventGameStarted)
	if room == nil {
		return
	}
	defer room.Unlock()

	if err := game.Start(room.Session); err != nil {
		rejected(room, c, EventGameStarted, err)
		return
	}
	log.Info().Str("room_id", room.ID).Str("client_id", c.ID).Msg("game started")
	broadcast.Publish(room, broadcast.EventUpdateRoom, render.Room(room))
}

// movePlayed applies one move; only accepted moves are broadcast
func (ctx *Context) movePlayed(c *Client, p MovePlayedPayload) {
	if p.Row == nil || p.Col == nil {
		sendErr(c, "BAD_PAYLOAD", EventMovePlayed+": row and col are required")
		return
	}
	room := ctx.lockMemberRoom(c, p.Host, EventMovePlayed)
	if room == nil {
		return
	}
	defer room.Unlock()

	if err := game.PlayMove(room.Session, c.ID, int(*p.Row), int(*p.Col)); err != nil {
		rejected(room, c, EventMovePlayed, err)
		return
	}

	view := render.Room(room)
	if view.Complete && view.Winner != nil {
		log.Info().
			Str("room_id", room.ID).
			Int("winner", view.Winner.WinnerTurnOrder).
			Bool("tie", view.Winner.IsTie).
			Msg("game complete")
	}
	broadcast.Publish(room, broadcast.EventUpdateRoom, view)
}
