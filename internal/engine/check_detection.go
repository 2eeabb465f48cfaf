package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// inCheck returns true if the given colour's king is attacked.
// A side without a king on the board is never in check.
func (p *position) inCheck(colour chess.Colour) bool {
	king, ok := p.board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(&p.board, king, colour.Opposite())
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// It looks outward from the square for each piece shape, which gives the
// same answer as asking whether any piece of that colour has a
// movement-rule move onto it. Pawn pushes and castling never attack.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn sits one rank behind, from its point of view
	pawn := chess.MakeTile(byColour, chess.Pawn)
	pawnDir := -chess.ColourOffset(byColour)
	for _, df := range []int{-1, 1} {
		if from, ok := sq.Offset(df, pawnDir); ok && board.At(from) == pawn {
			return true
		}
	}

	if attackedByStep(board, sq, chess.MakeTile(byColour, chess.Knight), knightOffsets) {
		return true
	}
	if attackedByStep(board, sq, chess.MakeTile(byColour, chess.King), kingOffsets) {
		return true
	}

	queen := chess.MakeTile(byColour, chess.Queen)
	if attackedByRay(board, sq, chess.MakeTile(byColour, chess.Bishop), queen, diagonalDirs) {
		return true
	}
	return attackedByRay(board, sq, chess.MakeTile(byColour, chess.Rook), queen, straightDirs)
}

func attackedByStep(board *chess.Board, sq chess.Square, attacker chess.Tile, offsets [][2]int) bool {
	for _, offset := range offsets {
		if from, ok := sq.Offset(offset[0], offset[1]); ok && board.At(from) == attacker {
			return true
		}
	}
	return false
}

func attackedByRay(board *chess.Board, sq chess.Square, slider, queen chess.Tile, dirs [][2]int) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			if tile, occupied := board.Get(from); occupied {
				if tile == slider || tile == queen {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
