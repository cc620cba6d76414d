package game

// direction is a unit step on the board; sign is +1 for vertical runs, -1 for horizontal
type direction struct {
	dRow, dCol int
	sign       int
}

var directions = [4]direction{
	{dRow: -1, dCol: 0, sign: 1},  // up
	{dRow: 1, dCol: 0, sign: 1},   // down
	{dRow: 0, dCol: -1, sign: -1}, // left
	{dRow: 0, dCol: 1, sign: -1},  // right
}

// cellValue is the positional worth of a cell: (row+1)*(col+1)
func cellValue(row, col int) int {
	return (row + 1) * (col + 1)
}

// ScoreMove returns the score of player placing at (row, col) on board.
// The base is the cell's own value. Each axis direction then contributes the
// run of cells owned by a single opponent adjacent to the move: vertical runs
// add their cell values, horizontal runs subtract them. A run stops at the
// first empty cell, own cell, or cell of a different owner.
func ScoreMove(row, col, player int, board [][]int) int {
	score := cellValue(row, col)
	for _, d := range directions {
		score += d.sign * runValue(row, col, player, d, board)
	}
	return score
}

func runValue(row, col, player int, d direction, board [][]int) int {
	owner := 0
	total := 0
	for r, c := row+d.dRow, col+d.dCol; inBoard(r, c, board); r, c = r+d.dRow, c+d.dCol {
		v := board[r][c]
		if owner == 0 {
			if v == 0 || v == player {
				return 0
			}
			owner = v
		} else if v != owner {
			break
		}
		total += cellValue(r, c)
	}
	return total
}

func inBoard(row, col int, board [][]int) bool {
	return row >= 0 && row < len(board) && col >= 0 && col < len(board[row])
}

// PreviewScores returns, for every empty cell, the score player would earn
// by playing there. Occupied cells are 0.
func PreviewScores(player int, board [][]int) [][]int {
	preview := make([][]int, len(board))
	for r := range board {
		preview[r] = make([]int, len(board[r]))
		for c, v := range board[r] {
			if v == 0 {
				preview[r][c] = ScoreMove(r, c, player, board)
			}
		}
	}
	return preview
}

// EstimateTarget suggests a target score: the sum of every cell value shared
// evenly between players, rounded to one decimal.
func EstimateTarget(rows, cols, players int) float64 {
	if rows <= 0 || cols <= 0 || players <= 0 {
		return 0
	}
	sum := 0
	for i := 1; i <= rows; i++ {
		for j := 1; j <= cols; j++ {
			sum += i * j
		}
	}
	return roundTenth(float64(sum) / float64(players))
}
