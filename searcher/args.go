package searcher

import (
	"fmt"

	"gambit/game"
)

// Hyperparameters for MCTS

// CSquared is the squared exploration constant: C = 1 in
// q/n + C*sqrt(2*ln(N)/n).
const CSquared = 2.0

// Scores are absolute, from White's perspective, whichever side a node
// belongs to.
const (
	WhiteWinScore = 1.0
	BlackWinScore = -WhiteWinScore
	DrawScore     = 0.5
)

func scoreDelta(result game.Result) float64 {
	switch result {
	case game.WhiteWin:
		return WhiteWinScore
	case game.BlackWin:
		return BlackWinScore
	case game.Draw:
		return DrawScore
	default:
		panic(fmt.Sprintf("no score for game result %v", result))
	}
}
