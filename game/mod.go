package game

// Color identifies a side. White moves first.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Result is the outcome of a finished game. NoResult means the game is
// still being played.
type Result int

const (
	NoResult Result = iota
	WhiteWin
	BlackWin
	Draw
)

func (r Result) String() string {
	switch r {
	case WhiteWin:
		return "1-0"
	case BlackWin:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Turn() Color
	// LegalMoves returns every playable move, in a stable order. An empty
	// slice means the game is over.
	LegalMoves() []Move
	// Apply plays a move returned by LegalMoves and returns the resulting
	// state. Panics on a move the state never produced.
	Apply(Move) State
	Result() Result
}

// TacticalState is implemented by states that can describe the tactical
// features of their legal moves. Rollout weighting degrades to uniform for
// states without it.
type TacticalState interface {
	State
	// InCheck reports whether the side to move is in check.
	InCheck() bool
	IsCapture(Move) bool
	GivesCheck(Move) bool
	// WalksIntoCheck reports whether the move exposes the mover's own king.
	// Generators that only yield fully legal moves never produce one.
	WalksIntoCheck(Move) bool
	// LeavesPinned reports whether the move starts from a square that
	// shields the mover's king from an enemy slider.
	LeavesPinned(Move) bool
	IsCastling(Move) bool
	// IsDevelopment reports whether the move lands on one of the minor
	// piece development squares (c3, f3, g3, c6, f6, g6).
	IsDevelopment(Move) bool
}
