// Package board adapts github.com/notnil/chess to the game interfaces the
// searcher plays against.
package board

import (
	"fmt"

	"github.com/notnil/chess"

	"gambit/game"
)

// Move is a single chess move together with its standard algebraic notation.
type Move struct {
	mv  *chess.Move
	san string
}

func (m Move) String() string {
	return m.san
}

// Position is an immutable chess position. Apply clones the underlying game,
// so positions can be shared freely between tree nodes.
type Position struct {
	g *chess.Game
}

// NewGame returns the standard starting position.
func NewGame() *Position {
	return &Position{g: chess.NewGame()}
}

// FromFEN builds a position from Forsyth-Edwards notation.
func FromFEN(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse FEN %q: %w", fen, err)
	}
	return &Position{g: chess.NewGame(opt)}, nil
}

func (p *Position) Turn() game.Color {
	if p.g.Position().Turn() == chess.White {
		return game.White
	}
	return game.Black
}

// LegalMoves returns the legal moves in the generator's stable order, each
// annotated with its SAN rendering for this position.
func (p *Position) LegalMoves() []game.Move {
	pos := p.g.Position()
	valid := pos.ValidMoves()
	moves := make([]game.Move, len(valid))
	for i, mv := range valid {
		moves[i] = Move{mv: mv, san: chess.AlgebraicNotation{}.Encode(pos, mv)}
	}
	return moves
}

func (p *Position) Apply(mv game.Move) game.State {
	m := ownMove(mv)
	next := p.g.Clone()
	if err := next.Move(m.mv); err != nil {
		panic(fmt.Sprintf("illegal move %s: %v", m.san, err))
	}
	return &Position{g: next}
}

func (p *Position) Result() game.Result {
	switch p.g.Outcome() {
	case chess.WhiteWon:
		return game.WhiteWin
	case chess.BlackWon:
		return game.BlackWin
	case chess.Draw:
		return game.Draw
	default:
		return game.NoResult
	}
}

// InCheck reports whether the side to move is in check. The move generator
// tags checking moves as it produces them, so the last played move carries
// the answer. A position loaded straight from FEN has no move history and
// reports false.
func (p *Position) InCheck() bool {
	moves := p.g.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

func (p *Position) IsCapture(mv game.Move) bool {
	m := ownMove(mv)
	return m.mv.HasTag(chess.Capture) || m.mv.HasTag(chess.EnPassant)
}

func (p *Position) GivesCheck(mv game.Move) bool {
	return ownMove(mv).mv.HasTag(chess.Check)
}

// WalksIntoCheck is always false here: ValidMoves yields fully legal moves,
// never one that exposes the mover's own king.
func (p *Position) WalksIntoCheck(game.Move) bool {
	return false
}

func (p *Position) LeavesPinned(mv game.Move) bool {
	pos := p.g.Position()
	return pinnedToKing(pos.Board(), ownMove(mv).mv.S1(), pos.Turn())
}

func (p *Position) IsCastling(mv game.Move) bool {
	m := ownMove(mv)
	return m.mv.HasTag(chess.KingSideCastle) || m.mv.HasTag(chess.QueenSideCastle)
}

func (p *Position) IsDevelopment(mv game.Move) bool {
	switch ownMove(mv).mv.S2() {
	case chess.C3, chess.F3, chess.G3, chess.C6, chess.F6, chess.G6:
		return true
	}
	return false
}

// History returns the SAN of every move played so far, in order.
func (p *Position) History() []string {
	moves := p.g.Moves()
	positions := p.g.Positions()
	san := make([]string, len(moves))
	for i, mv := range moves {
		san[i] = chess.AlgebraicNotation{}.Encode(positions[i], mv)
	}
	return san
}

// ParseSAN resolves a SAN string against this position. The returned move
// carries the canonical SAN rendering, not the input spelling.
func (p *Position) ParseSAN(san string) (game.Move, error) {
	pos := p.g.Position()
	mv, err := chess.AlgebraicNotation{}.Decode(pos, san)
	if err != nil {
		return nil, fmt.Errorf("parse move %q: %w", san, err)
	}
	return Move{mv: mv, san: chess.AlgebraicNotation{}.Encode(pos, mv)}, nil
}

func (p *Position) FEN() string {
	return p.g.FEN()
}

// Draw renders the board as ASCII art for console play.
func (p *Position) Draw() string {
	return p.g.Position().Board().Draw()
}

func ownMove(mv game.Move) Move {
	m, ok := mv.(Move)
	if !ok {
		panic(fmt.Sprintf("foreign move %v", mv))
	}
	return m
}
