package searcher

import "gambit/game"

// Variant selects the rollout weighting scheme.
type Variant int

const (
	// PolicyBase applies every tactical weight.
	PolicyBase Variant = iota
	// PolicyNoDevelopment drops the development-square bonus.
	PolicyNoDevelopment
)

// Rollout move weights. Each move starts at the base weight, collects the
// bonuses and penalties that apply, and is clamped at zero.
const (
	baseWeight            = 1.0
	captureBonus          = 10.0
	inCheckBonus          = 5.0
	givesCheckBonus       = 5.0
	walksIntoCheckPenalty = -20.0
	pinnedPenalty         = -5.0
	castlingBonus         = 5.0
	developmentBonus      = 3.0
)

// moveWeights scores the legal moves of state for rollout sampling. States
// without tactical predicates get uniform weights.
func moveWeights(state game.State, moves []game.Move, variant Variant) []float64 {
	weights := make([]float64, len(moves))

	tactical, ok := state.(game.TacticalState)
	if !ok {
		for i := range weights {
			weights[i] = baseWeight
		}
		return weights
	}

	inCheck := tactical.InCheck()
	for i, move := range moves {
		w := baseWeight
		if tactical.IsCapture(move) {
			w += captureBonus
		}
		if inCheck {
			w += inCheckBonus
		}
		if tactical.GivesCheck(move) {
			w += givesCheckBonus
		}
		if tactical.WalksIntoCheck(move) {
			w += walksIntoCheckPenalty
		}
		if tactical.LeavesPinned(move) {
			w += pinnedPenalty
		}
		if tactical.IsCastling(move) {
			w += castlingBonus
		}
		if variant == PolicyBase && tactical.IsDevelopment(move) {
			w += developmentBonus
		}
		if w < 0 {
			w = 0
		}
		weights[i] = w
	}
	return weights
}

// sample picks an index with probability proportional to its weight. A
// degenerate total falls back to a uniform pick.
func sample(weights []float64, r Rand) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return r.Intn(len(weights))
	}

	target := r.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1 // Float round-off
}

// rollout plays weighted random moves from state until the game is over and
// returns its result.
func rollout(state game.State, variant Variant, r Rand, collector MetricsCollector) game.Result {
	depth := 0
	moves := state.LegalMoves()
	for len(moves) > 0 {
		weights := moveWeights(state, moves, variant)
		state = state.Apply(moves[sample(weights, r)])
		moves = state.LegalMoves()
		depth++
	}
	collector.AddRolloutMoves(depth)
	return state.Result()
}
