package searcher

import (
	"fmt"

	"gambit/game"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

// countdownState is a scripted game that ends after a fixed number of
// plies, with the same branching factor at every position.
type countdownState struct {
	plies  int
	branch int
	result game.Result
	turn   game.Color
}

func (s countdownState) Turn() game.Color {
	return s.turn
}

func (s countdownState) LegalMoves() []game.Move {
	if s.plies == 0 {
		return nil
	}
	moves := make([]game.Move, s.branch)
	for i := range moves {
		moves[i] = mockMove{id: i}
	}
	return moves
}

func (s countdownState) Apply(game.Move) game.State {
	return countdownState{
		plies:  s.plies - 1,
		branch: s.branch,
		result: s.result,
		turn:   s.turn.Other(),
	}
}

func (s countdownState) Result() game.Result {
	if s.plies == 0 {
		return s.result
	}
	return game.NoResult
}

// stubRand replays scripted values.
type stubRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *stubRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *stubRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}
