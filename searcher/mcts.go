package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gambit/game"
)

type Option func(mcts *MCTS)

// MCTS finds moves by Monte Carlo tree search: repeated UCT selection,
// a single uniform-random expansion, a weighted rollout to the end of the
// game, and absolute score backup. Each decision builds a fresh tree; a
// searcher is sequential and must not be shared across goroutines.
type MCTS struct {
	iterations int
	variant    Variant
	rng        Rand
	metrics    MetricsCollector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithPolicy(variant Variant) Option {
	return func(m *MCTS) {
		m.variant = variant
	}
}

// WithRand substitutes the source of randomness for expansion and rollouts.
func WithRand(rng Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSeed makes every search of this searcher reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = seededRand(seed)
	}
}

func WithMetrics(collector MetricsCollector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		variant: PolicyBase,
		rng:     defaultRand(),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.iterations <= 0 {
		panic("Must specify search iterations")
	}
	return m
}

// FindMove searches from state with the configured iteration budget and
// returns the most visited move.
func (m *MCTS) FindMove(state game.State) (game.Move, error) {
	return m.findMove(state, m.iterations)
}

// FindMoveN overrides the configured budget for a single search.
func (m *MCTS) FindMoveN(state game.State, iterations int) (game.Move, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("search needs a positive iteration budget, got %d", iterations)
	}
	return m.findMove(state, iterations)
}

func (m *MCTS) findMove(state game.State, iterations int) (game.Move, error) {
	m.metrics.Start()
	start := time.Now()

	t := newTree(state)
	if len(t.root().untried) == 0 {
		return nil, fmt.Errorf("no legal moves: game is over (%s)", state.Result())
	}

	for i := 0; i < iterations; i++ {
		m.simulate(t, state)
		m.metrics.AddIteration()
	}

	move := t.bestMove()
	log.Debug().
		Int("iterations", iterations).
		Dur("elapsed", time.Since(start)).
		Str("move", move.String()).
		Msg("search complete")
	return move, nil
}

// simulate runs one search iteration: walk down, expand, play out, back up.
func (m *MCTS) simulate(t *tree, state game.State) {
	id, leafState := selectThenExpand(t, state, m.rng)
	result := rollout(leafState, m.variant, m.rng, m.metrics)
	t.backup(id, result)
}

// selectThenExpand walks the tree by UCT while nodes are fully expanded,
// then expands one untried move uniformly at random. A terminal node comes
// back as is; its own result backs up with a zero-length rollout.
func selectThenExpand(t *tree, state game.State, r Rand) (nodeID, game.State) {
	id := nodeID(0)
	for {
		n := t.at(id)
		if len(n.untried) > 0 {
			i := r.Intn(len(n.untried))
			childState := state.Apply(n.untried[i])
			return t.expand(id, i, childState), childState
		}
		if len(n.children) == 0 { // Terminal node
			return id, state
		}
		id = t.pickChild(id)
		state = state.Apply(t.at(id).move)
	}
}
