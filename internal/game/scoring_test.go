package game

import "testing"

func TestScoreMoveEmptyBoard(t *testing.T) {
	board := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	if got := ScoreMove(0, 0, 1, board); got != 1 {
		t.Fatalf("expected base score 1, got %d", got)
	}
	if got := ScoreMove(4, 4, 1, board); got != 25 {
		t.Fatalf("expected base score 25, got %d", got)
	}
}

func TestScoreMoveOwnNeighbourIgnored(t *testing.T) {
	// Own marker to the left, opponent below.
	board := [][]int{
		{1, 1},
		{0, 2},
	}
	// base (1*2) + below (2*2); the left neighbour is player 1's own cell
	if got := ScoreMove(0, 1, 1, board); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}

	board = [][]int{{1, 1}}
	if got := ScoreMove(0, 1, 1, board); got != 2 {
		t.Fatalf("expected base score 2 with only an own neighbour, got %d", got)
	}
}

func TestScoreMoveVerticalRunAdds(t *testing.T) {
	board := [][]int{{1}, {2}, {2}}
	// base 1 + (2*1) + (3*1)
	if got := ScoreMove(0, 0, 1, board); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestScoreMoveHorizontalRunSubtracts(t *testing.T) {
	board := [][]int{{1, 2, 2, 0}}
	// base 1 - 2 - 3
	if got := ScoreMove(0, 0, 1, board); got != -4 {
		t.Fatalf("expected -4, got %d", got)
	}
}

func TestScoreMoveRunStopsAtDifferentOwner(t *testing.T) {
	cases := []struct {
		name string
		row  []int
	}{
		{"third player", []int{1, 2, 3, 2}},
		{"own cell", []int{1, 2, 1, 2}},
		{"empty cell", []int{1, 2, 0, 2}},
	}
	for _, tc := range cases {
		board := [][]int{tc.row}
		// base 1 - 2; nothing past the interruption counts
		if got := ScoreMove(0, 0, 1, board); got != -1 {
			t.Fatalf("%s: expected -1, got %d", tc.name, got)
		}
	}
}

func TestScoreMoveAllDirections(t *testing.T) {
	board := [][]int{
		{0, 2, 0},
		{2, 1, 3},
		{0, 3, 0},
	}
	// base 4, up +2, down +6, left -2, right -6
	if got := ScoreMove(1, 1, 1, board); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestScoreMoveDoesNotMutateBoard(t *testing.T) {
	board := [][]int{{0, 2}, {3, 0}}
	ScoreMove(0, 0, 1, board)
	if board[0][0] != 0 || board[0][1] != 2 || board[1][0] != 3 || board[1][1] != 0 {
		t.Fatalf("board mutated: %v", board)
	}
}

func TestPreviewScores(t *testing.T) {
	board := [][]int{
		{0, 2, 0},
		{1, 0, 0},
	}
	preview := PreviewScores(1, board)
	if len(preview) != 2 || len(preview[0]) != 3 {
		t.Fatalf("expected 2x3 preview, got %v", preview)
	}
	if preview[0][1] != 0 || preview[1][0] != 0 {
		t.Fatalf("occupied cells should preview 0, got %v", preview)
	}
	for r := range board {
		for c := range board[r] {
			if board[r][c] != 0 {
				continue
			}
			if want := ScoreMove(r, c, 1, board); preview[r][c] != want {
				t.Fatalf("preview[%d][%d] = %d, want %d", r, c, preview[r][c], want)
			}
		}
	}
}

func TestEstimateTarget(t *testing.T) {
	if got := EstimateTarget(5, 5, 2); got != 112.5 {
		t.Fatalf("expected 112.5, got %v", got)
	}
	if got := EstimateTarget(3, 3, 7); got != 5.1 {
		t.Fatalf("expected 5.1, got %v", got)
	}
	if got := EstimateTarget(0, 3, 2); got != 0 {
		t.Fatalf("expected 0 for an empty board, got %v", got)
	}
}
