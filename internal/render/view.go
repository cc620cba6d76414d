package render

import (
	"sort"

	"github.com/aaronzipp/gridscore/internal/game"
	"github.com/aaronzipp/gridscore/internal/models"
)

// RoomView is the full session snapshot sent as update_room
type RoomView struct {
	Rows        int                `json:"rows"`
	Cols        int                `json:"cols"`
	Board       [][]int            `json:"boardState"`
	CurrentTurn int                `json:"currentPlayersTurn"`
	Players     []models.Player    `json:"players"`
	TargetScore float64            `json:"targetScore"`
	Stage       models.Stage       `json:"stage"`
	ClientCount int                `json:"clientCount"`
	Complete    bool               `json:"complete"`
	Winner      *game.WinnerResult `json:"winner,omitempty"`
	Preview     [][]int            `json:"preview,omitempty"`
}

// ColoursView is the colour negotiation state sent as update_colours
type ColoursView struct {
	Players          []models.Player `json:"players"`
	AvailableColours []string        `json:"availableColours"`
	ClientCount      int             `json:"clientCount"`
	Stage            models.Stage    `json:"stage"`
}

// CountView carries the number of clients connected to a room
type CountView struct {
	ClientCount int `json:"clientCount"`
}

// ResultsView is the scoreboard of a room, players ordered by turn
type ResultsView struct {
	RoomID      string             `json:"roomId"`
	TargetScore float64            `json:"targetScore"`
	Stage       models.Stage       `json:"stage"`
	Complete    bool               `json:"complete"`
	Players     []models.Player    `json:"players"`
	Winner      *game.WinnerResult `json:"winner,omitempty"`
}

// Room builds the update_room snapshot (must be called with lock held)
func Room(room *models.Room) RoomView {
	s := room.Session
	view := RoomView{
		Rows:        s.Rows,
		Cols:        s.Cols,
		Board:       s.CopyBoard(),
		CurrentTurn: s.CurrentTurn,
		Players:     s.CopyPlayers(),
		TargetScore: s.TargetScore,
		Stage:       s.Stage,
		ClientCount: len(room.Clients),
		Complete:    s.Stage == models.StageComplete,
	}
	if view.Complete {
		view.Winner = winner(view.Players, s.TargetScore)
	} else if s.Stage == models.StagePlaying {
		view.Preview = game.PreviewScores(s.CurrentTurn, s.Board)
	}
	return view
}

// Colours builds the update_colours payload (must be called with lock held)
func Colours(room *models.Room) ColoursView {
	s := room.Session
	available := make([]string, len(s.AvailableColours))
	copy(available, s.AvailableColours)
	return ColoursView{
		Players:          s.CopyPlayers(),
		AvailableColours: available,
		ClientCount:      len(room.Clients),
		Stage:            s.Stage,
	}
}

// Count builds a client count payload (must be called with lock held)
func Count(room *models.Room) CountView {
	return CountView{ClientCount: len(room.Clients)}
}

// Results builds the scoreboard (must be called with lock held)
func Results(room *models.Room) ResultsView {
	s := room.Session
	players := s.CopyPlayers()
	view := ResultsView{
		RoomID:      room.ID,
		TargetScore: s.TargetScore,
		Stage:       s.Stage,
		Complete:    s.Stage == models.StageComplete,
		Players:     players,
	}
	if view.Complete {
		// winner tie-breaks follow slot order, so decide before sorting
		view.Winner = winner(players, s.TargetScore)
	}
	sort.SliceStable(view.Players, func(i, j int) bool {
		return view.Players[i].TurnOrder < view.Players[j].TurnOrder
	})
	return view
}

func winner(players []models.Player, target float64) *game.WinnerResult {
	result, ok := game.DetermineWinner(players, target)
	if !ok {
		return nil
	}
	return &result
}
