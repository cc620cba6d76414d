package game

import (
	"math"

	"github.com/aaronzipp/gridscore/internal/models"
)

// WinnerResult is the outcome of comparing final scores to the target
type WinnerResult struct {
	IsTie           bool `json:"isTie"`
	WinnerTurnOrder int  `json:"winner"`
	TiedTurnOrder   int  `json:"tier,omitempty"` // first other slot sharing the best delta
}

// DetermineWinner picks the slot whose score is closest to target. The first
// slot in player order wins ties; only the first other slot sharing the same
// distance is reported. ok is false when there are no players.
func DetermineWinner(players []models.Player, target float64) (result WinnerResult, ok bool) {
	if len(players) == 0 {
		return WinnerResult{}, false
	}

	best := 0
	bestDelta := math.Abs(players[0].Score - target)
	for i := 1; i < len(players); i++ {
		if d := math.Abs(players[i].Score - target); d < bestDelta {
			best, bestDelta = i, d
		}
	}

	result.WinnerTurnOrder = players[best].TurnOrder
	for i := best + 1; i < len(players); i++ {
		if math.Abs(players[i].Score-target) == bestDelta {
			result.IsTie = true
			result.TiedTurnOrder = players[i].TurnOrder
			break
		}
	}
	return result, true
}
