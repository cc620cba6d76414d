package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/render"
)

// HandleResults returns the scoreboard of a room and, once the board is
// full, its winner
func (ctx *Context) HandleResults(w http.ResponseWriter, r *http.Request) {
	room, err := ctx.Rooms.Find(chi.URLParam(r, "roomID"))
	if err != nil {
		jsonError(w, "Room not found", http.StatusNotFound)
		return
	}

	room.RLock()
	view := render.Results(room)
	room.RUnlock()

	writeJSON(w, http.StatusOK, view)
}

// HandleEstimate suggests a target score for a board size and player count
func (ctx *Context) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rows, errRows := strconv.Atoi(q.Get("rows"))
	cols, errCols := strconv.Atoi(q.Get("cols"))
	players, errPlayers := strconv.Atoi(q.Get("players"))
	if errRows != nil || errCols != nil || errPlayers != nil ||
		rows < 1 || rows > game.MaxBoardDimension ||
		cols < 1 || cols > game.MaxBoardDimension ||
		players < 1 {
		jsonError(w, "rows, cols and players must be positive integers", http.StatusBadRequest)
		return
	}
	players = min(players, game.MaxPlayers)

	writeJSON(w, http.StatusOK, map[string]any{
		"rows":        rows,
		"cols":        cols,
		"players":     players,
		"targetScore": game.EstimateTarget(rows, cols, players),
	})
}
