package board

import "github.com/notnil/chess"

// pinnedToKing reports whether the piece on from shields its own king from
// an enemy slider. It walks the king's rank, file, or diagonal through from:
// the piece must be the first thing the king sees, and the next piece past
// it must be an enemy slider that moves along that line.
func pinnedToKing(b *chess.Board, from chess.Square, us chess.Color) bool {
	king, ok := kingSquare(b, us)
	if !ok || from == king {
		return false
	}

	df := sign(int(from.File()) - int(king.File()))
	dr := sign(int(from.Rank()) - int(king.Rank()))
	straight := df == 0 || dr == 0
	diagonal := abs(int(from.File())-int(king.File())) == abs(int(from.Rank())-int(king.Rank()))
	if !straight && !diagonal {
		return false
	}

	f, r := int(king.File())+df, int(king.Rank())+dr
	for f != int(from.File()) || r != int(from.Rank()) {
		if b.Piece(square(f, r)) != chess.NoPiece {
			return false
		}
		f, r = f+df, r+dr
	}

	f, r = f+df, r+dr
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		piece := b.Piece(square(f, r))
		if piece == chess.NoPiece {
			f, r = f+df, r+dr
			continue
		}
		if piece.Color() == us {
			return false
		}
		switch piece.Type() {
		case chess.Queen:
			return true
		case chess.Rook:
			return straight
		case chess.Bishop:
			return !straight
		default:
			return false
		}
	}
	return false
}

func kingSquare(b *chess.Board, us chess.Color) (chess.Square, bool) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := b.Piece(sq)
		if piece.Type() == chess.King && piece.Color() == us {
			return sq, true
		}
	}
	return chess.A1, false
}

func square(file, rank int) chess.Square {
	return chess.Square(rank*8 + file)
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
