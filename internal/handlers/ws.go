package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/models"
)

const (
	readTimeout    = 120 * time.Second
	writeTimeout   = 10 * time.Second
	maxFrameLength = 4096
)

// HandleWebSocket upgrades a connection, assigns its ids and serves its events
func (ctx *Context) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := ctx.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	c := NewClient(game.GetUniqueHostCode(ctx.Rooms))
	log.Info().Str("client_id", c.ID).Str("host_code", c.HostCode).Msg("client connected")

	go writePump(ws, c.Send)
	sendTo(c, broadcast.EventConnected, ConnectedPayload{Player: c.ID, Host: c.HostCode})
	ctx.readPump(ws, c)
}

// readPump processes inbound frames in arrival order until the peer goes away
func (ctx *Context) readPump(ws *websocket.Conn, c *Client) {
	defer func() {
		ctx.Disconnect(c)
		close(c.Send)
		_ = ws.Close()
		log.Info().Str("client_id", c.ID).Msg("client disconnected")
	}()

	ws.SetReadLimit(maxFrameLength)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("client_id", c.ID).Msg("websocket read error")
			}
			return
		}

		var in InMsg
		if err := json.Unmarshal(data, &in); err != nil {
			sendErr(c, "BAD_JSON", "invalid json")
			continue
		}
		ctx.Dispatch(c, in)
	}
}

// writePump drains the client's queue onto the socket and keeps it alive
func writePump(ws *websocket.Conn, send <-chan models.Message) {
	ticker := time.NewTicker(game.HeartbeatInterval)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()

	for {
		select {
		case msg, ok := <-send:
			_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			frame, err := json.Marshal(OutMsg{Event: msg.Event, Data: msg.Data})
			if err != nil {
				log.Error().Err(err).Str("event", msg.Event).Msg("encode frame")
				continue
			}
			if err := ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
