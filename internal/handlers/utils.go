package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/models"
)

// lockMemberRoom finds roomID and write-locks it for an event sent by c.
// A missing room sends c home; a sender outside the room is ignored. On
// success the caller must Unlock the returned room.
func (ctx *Context) lockMemberRoom(c *Client, roomID, event string) *models.Room {
	room, err := ctx.Rooms.Find(roomID)
	if err != nil {
		log.Debug().Str("room_id", roomID).Str("client_id", c.ID).Str("event", event).Msg("room not found")
		sendHome(c)
		return nil
	}
	room.Lock()
	if room.Closed() {
		room.Unlock()
		sendHome(c)
		return nil
	}
	if !room.HasClient(c.ID) {
		room.Unlock()
		log.Debug().Str("room_id", roomID).Str("client_id", c.ID).Str("event", event).
			Str("reason", "not a member").Msg("event rejected")
		return nil
	}
	return room
}

func sendTo(c *Client, event string, payload any) {
	broadcast.Send(c.Send, broadcast.NewMessage(event, payload))
}

func sendErr(c *Client, code, msg string) {
	sendTo(c, broadcast.EventError, ErrPayload{Code: code, Msg: msg})
}

func sendHome(c *Client) {
	sendTo(c, broadcast.EventSendHome, nil)
}

func rejected(room *models.Room, c *Client, event string, err error) {
	log.Debug().
		Str("room_id", room.ID).
		Str("client_id", c.ID).
		Str("event", event).
		Str("reason", err.Error()).
		Msg("event rejected")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write json response")
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
