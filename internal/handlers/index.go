package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/aaronzipp/gridscore/internal/config"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	Rooms    *store.RoomStore
	Config   config.Config
	Intn     func(n int) int // randomness for turn order shuffles
	upgrader websocket.Upgrader
}

// NewContext wires handlers to the room registry and configuration
func NewContext(rooms *store.RoomStore, cfg config.Config) *Context {
	ctx := &Context{
		Rooms:  rooms,
		Config: cfg,
		Intn:   game.CryptoIntn,
	}
	ctx.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || cfg.OriginAllowed(origin)
		},
	}
	return ctx
}

// HandleHealth reports liveness and the number of open rooms
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"rooms":  ctx.Rooms.Len(),
	})
}
