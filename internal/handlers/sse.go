package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/aaronzipp/gridscore/internal/broadcast"
	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/models"
	"github.com/aaronzipp/gridscore/internal/render"
)

// HandleWatch streams a room's broadcasts as Server-Sent Events for spectators
func (ctx *Context) HandleWatch(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	room, exists := ctx.Rooms.Get(roomID)
	if !exists {
		log.Debug().Str("room_id", roomID).Msg("watch: room not found")
		writeEvent(w, broadcast.NewMessage(broadcast.EventSendHome, nil))
		flusher.Flush()
		return
	}

	watcherID := "watch-" + uuid.NewString()
	ch := make(chan models.Message, game.SubscriberBufferSize)

	room.Lock()
	if room.Closed() {
		room.Unlock()
		writeEvent(w, broadcast.NewMessage(broadcast.EventSendHome, nil))
		flusher.Flush()
		return
	}
	broadcast.AddClientLocked(room, ch, watcherID)
	initial := broadcast.NewMessage(broadcast.EventUpdateRoom, render.Room(room))
	room.Unlock()
	defer broadcast.RemoveClient(room, ch)

	log.Debug().Str("room_id", roomID).Str("watcher", watcherID).Msg("watcher connected")
	writeEvent(w, initial)
	flusher.Flush()

	ticker := time.NewTicker(game.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("room_id", roomID).Str("watcher", watcherID).Msg("watcher disconnected")
			return
		case msg := <-ch:
			writeEvent(w, msg)
			flusher.Flush()
			if msg.Event == broadcast.EventSendHome {
				return
			}
		case <-ticker.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, msg models.Message) {
	data := msg.Data
	if data == nil {
		data = []byte("{}")
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, data)
}
