package models

// Session is the mutable game state of one room. Board cells hold 0 when
// empty, otherwise the TurnOrder of the occupying player.
type Session struct {
	Rows             int
	Cols             int
	Board            [][]int
	Players          []*Player // slot order; TurnOrder is a permutation of 1..len(Players)
	CurrentTurn      int       // 1-indexed
	TargetScore      float64
	Stage            Stage
	AvailableColours []string // unclaimed palette colours, palette order
}

// NewBoard allocates a rows x cols grid of zeros.
func NewBoard(rows, cols int) [][]int {
	board := make([][]int, rows)
	for i := range board {
		board[i] = make([]int, cols)
	}
	return board
}

// PlayerByTurn returns the slot with the given turn order, or nil.
func (s *Session) PlayerByTurn(turn int) *Player {
	for _, p := range s.Players {
		if p.TurnOrder == turn {
			return p
		}
	}
	return nil
}

// InBounds reports whether (row, col) lies on the board.
func (s *Session) InBounds(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// CopyBoard returns a deep copy of the board.
func (s *Session) CopyBoard() [][]int {
	cp := make([][]int, len(s.Board))
	for i, row := range s.Board {
		cp[i] = make([]int, len(row))
		copy(cp[i], row)
	}
	return cp
}

// CopyPlayers returns value copies of the player slots.
func (s *Session) CopyPlayers() []Player {
	cp := make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp[i] = *p
	}
	return cp
}
