package handlers

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/models"
)

// Inbound event names
const (
	EventHostSetup      = "host_setup"
	EventJoinLobby      = "join_lobby"
	EventGameSetup      = "game_setup"
	EventColourSelected = "colour_selected"
	EventGameStarted    = "game_started"
	EventMovePlayed     = "move_played"
)

// Client is one live connection. ID identifies it as a player, HostCode is
// the room id offered to it should it host, and RoomID is the room it is in.
// A Client is only touched by the goroutine reading its connection.
type Client struct {
	ID       string
	HostCode string
	RoomID   string
	Send     chan models.Message
}

// NewClient creates a client with a fresh player id
func NewClient(hostCode string) *Client {
	return &Client{
		ID:       uuid.NewString(),
		HostCode: hostCode,
		Send:     make(chan models.Message, game.SubscriberBufferSize),
	}
}

// Dispatch handles one inbound event from c to completion
func (ctx *Context) Dispatch(c *Client, in InMsg) {
	log.Debug().Str("client_id", c.ID).Str("event", in.Event).Msg("event received")

	switch in.Event {
	case EventHostSetup:
		var p HostSetupPayload
		if decode(c, in, &p) {
			ctx.hostSetup(c, p)
		}
	case EventJoinLobby:
		var p JoinLobbyPayload
		if decode(c, in, &p) {
			ctx.joinLobby(c, p)
		}
	case EventGameSetup:
		var p GameSetupPayload
		if decode(c, in, &p) {
			ctx.gameSetup(c, p)
		}
	case EventColourSelected:
		var p ColourSelectedPayload
		if decode(c, in, &p) {
			ctx.colourSelected(c, p)
		}
	case EventGameStarted:
		var p GameStartedPayload
		if decode(c, in, &p) {
			ctx.gameStarted(c, p)
		}
	case EventMovePlayed:
		var p MovePlayedPayload
		if decode(c, in, &p) {
			ctx.movePlayed(c, p)
		}
	default:
		sendErr(c, "UNKNOWN_EVENT", "unknown event: "+in.Event)
	}
}

func decode(c *Client, in InMsg, v any) bool {
	if len(in.Data) == 0 {
		sendErr(c, "BAD_PAYLOAD", in.Event+": missing data")
		return false
	}
	if err := json.Unmarshal(in.Data, v); err != nil {
		log.Debug().Err(err).Str("client_id", c.ID).Str("event", in.Event).Msg("bad payload")
		sendErr(c, "BAD_PAYLOAD", in.Event+": "+err.Error())
		return false
	}
	return true
}
