package game

import (
	"errors"
	"math"

	"github.com/aaronzipp/gridscore/internal/models"
)

var (
	ErrWrongStage        = errors.New("action not allowed in current stage")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrOccupied          = errors.New("cell occupied")
	ErrColourUnavailable = errors.New("colour unavailable")
	ErrPlayerNotFound    = errors.New("player slot not found")
	ErrColoursPending    = errors.New("not every player has a colour")
	ErrInvalidSetup      = errors.New("invalid game setup")
)

// Setup holds the host's game configuration
type Setup struct {
	Rows        int
	Cols        int
	PlayerCount int
	TargetScore float64
}

// NewSession returns the default empty session of a freshly hosted room
func NewSession() *models.Session {
	return &models.Session{
		Rows:             DefaultRows,
		Cols:             DefaultCols,
		Board:            models.NewBoard(DefaultRows, DefaultCols),
		CurrentTurn:      1,
		TargetScore:      DefaultTargetScore,
		Stage:            models.StageSetup,
		AvailableColours: fullPalette(),
	}
}

// Configure builds a fresh session for setup. Turn orders 1..PlayerCount are
// shuffled across the slots and clients are handed out round-robin, so one
// client may control several slots. intn is the shuffle's randomness source.
func Configure(setup Setup, clients []string, intn func(n int) int) (*models.Session, error) {
	if setup.Rows < 1 || setup.Rows > MaxBoardDimension ||
		setup.Cols < 1 || setup.Cols > MaxBoardDimension ||
		setup.PlayerCount < 1 || len(clients) == 0 ||
		math.IsNaN(setup.TargetScore) || math.IsInf(setup.TargetScore, 0) {
		return nil, ErrInvalidSetup
	}
	count := min(setup.PlayerCount, MaxPlayers)

	order := ShuffledTurnOrder(count, intn)
	players := make([]*models.Player, count)
	for i, turn := range order {
		players[i] = &models.Player{
			ClientID:  clients[i%len(clients)],
			TurnOrder: turn,
			Colour:    models.ColourUnassigned,
		}
	}

	return &models.Session{
		Rows:             setup.Rows,
		Cols:             setup.Cols,
		Board:            models.NewBoard(setup.Rows, setup.Cols),
		Players:          players,
		CurrentTurn:      1,
		TargetScore:      setup.TargetScore,
		Stage:            models.StageSetup,
		AvailableColours: fullPalette(),
	}, nil
}

// PickColour assigns colour to the slot with turnOrder if the colour is still
// available. Once as many colours are claimed as there are players, a session
// in Setup moves to Playing.
func PickColour(s *models.Session, turnOrder int, colour string) error {
	idx := -1
	for i, c := range s.AvailableColours {
		if c == colour {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrColourUnavailable
	}
	p := s.PlayerByTurn(turnOrder)
	if p == nil {
		return ErrPlayerNotFound
	}

	p.Colour = colour
	s.AvailableColours = append(s.AvailableColours[:idx], s.AvailableColours[idx+1:]...)

	claimed := len(Palette) - len(s.AvailableColours)
	if s.Stage.Before(models.StagePlaying) && len(s.Players) > 0 && claimed >= len(s.Players) {
		s.Stage = models.StagePlaying
	}
	return nil
}

// Start moves a Setup session whose players all hold a colour to Playing
func Start(s *models.Session) error {
	if s.Stage != models.StageSetup || len(s.Players) == 0 {
		return ErrWrongStage
	}
	for _, p := range s.Players {
		if !p.HasColour() {
			return ErrColoursPending
		}
	}
	s.Stage = models.StagePlaying
	return nil
}

// PlayMove places the current turn's marker at (row, col) for clientID.
// The check and the mutation must run under the room's write lock.
func PlayMove(s *models.Session, clientID string, row, col int) error {
	if s.Stage != models.StagePlaying {
		return ErrWrongStage
	}
	var p *models.Player
	for _, candidate := range s.Players {
		if candidate.TurnOrder == s.CurrentTurn && candidate.ClientID == clientID {
			p = candidate
			break
		}
	}
	if p == nil {
		return ErrNotYourTurn
	}
	if !s.InBounds(row, col) {
		return ErrOutOfBounds
	}
	if s.Board[row][col] != 0 {
		return ErrOccupied
	}

	s.Board[row][col] = s.CurrentTurn
	p.Score += float64(ScoreMove(row, col, s.CurrentTurn, s.Board))
	s.CurrentTurn = s.CurrentTurn%len(s.Players) + 1
	if IsComplete(s.Board) {
		s.Stage = models.StageComplete
	}
	return nil
}

// IsComplete reports whether no cell is empty
func IsComplete(board [][]int) bool {
	for _, row := range board {
		for _, v := range row {
			if v == 0 {
				return false
			}
		}
	}
	return true
}

func fullPalette() []string {
	colours := make([]string, len(Palette))
	copy(colours, Palette)
	return colours
}
