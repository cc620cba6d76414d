package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	qrcode "github.com/skip2/go-qrcode"
)

const shareCodeSize = 256

// JoinURL is the link a second device opens to join roomID
func (ctx *Context) JoinURL(roomID string) string {
	return ctx.Config.PublicURL + "/lobby/join" + roomID
}

// HandleShareCode renders a QR code of the room's join link
func (ctx *Context) HandleShareCode(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")
	if !ctx.Rooms.Exists(roomID) {
		jsonError(w, "Room not found", http.StatusNotFound)
		return
	}

	png, err := qrcode.Encode(ctx.JoinURL(roomID), qrcode.Medium, shareCodeSize)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("encode share code")
		jsonError(w, "Could not render share code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}
