package engine

import (
	"fmt"

	"gambit/board"
	"gambit/game"
	"gambit/opening"
	"gambit/searcher"
)

// DefaultIterations is the search budget per move when the caller does not
// configure one.
const DefaultIterations = 50

// Source tells where a selected move came from.
type Source string

const (
	SourceBook   Source = "book"
	SourceSearch Source = "search"
)

type SelectorOption func(selector *MoveSelector)

func WithBook(book *opening.Book) SelectorOption {
	return func(s *MoveSelector) {
		if book != nil {
			s.book = book
		}
	}
}

func WithSearcher(mcts *searcher.MCTS) SelectorOption {
	return func(s *MoveSelector) {
		if mcts != nil {
			s.mcts = mcts
		}
	}
}

// MoveSelector picks moves for the side to move: the book reply while the
// game still follows a prepared line, a fresh Monte Carlo search otherwise.
type MoveSelector struct {
	book *opening.Book
	mcts *searcher.MCTS
}

func NewMoveSelector(options ...SelectorOption) *MoveSelector {
	s := &MoveSelector{}
	for _, option := range options {
		option(s)
	}
	if s.book == nil {
		s.book = opening.NewBook()
	}
	if s.mcts == nil {
		s.mcts = searcher.NewMCTS(searcher.WithIterations(DefaultIterations))
	}
	return s
}

// SelectMove returns a move for the side to move and where it came from.
// A book hit never falls through: if the stored reply does not parse
// against the position, that is a broken book and the error surfaces.
func (s *MoveSelector) SelectMove(pos *board.Position) (game.Move, Source, error) {
	return s.selectMove(pos, s.mcts.FindMove)
}

// SelectMoveN is SelectMove with a one-off search budget.
func (s *MoveSelector) SelectMoveN(pos *board.Position, iterations int) (game.Move, Source, error) {
	return s.selectMove(pos, func(state game.State) (game.Move, error) {
		return s.mcts.FindMoveN(state, iterations)
	})
}

func (s *MoveSelector) selectMove(pos *board.Position, search func(game.State) (game.Move, error)) (game.Move, Source, error) {
	if san, ok := s.book.Lookup(pos.History()); ok {
		move, err := pos.ParseSAN(san)
		if err != nil {
			return nil, SourceBook, fmt.Errorf("book reply %q does not apply: %w", san, err)
		}
		return move, SourceBook, nil
	}

	move, err := search(pos)
	if err != nil {
		return nil, SourceSearch, err
	}
	return move, SourceSearch, nil
}

func (s *MoveSelector) Book() *opening.Book {
	return s.book
}
