package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables shared by move generation and attack detection.
var (
	knightOffsets   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs    = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirections = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// pseudoLegalMoves returns the destinations the piece on from could reach by
// its movement rules alone, ignoring whether its own king is left attacked.
// An empty square yields no moves.
func (p *position) pseudoLegalMoves(from chess.Square) []chess.Square {
	tile, ok := p.board.Get(from)
	if !ok {
		return nil
	}

	switch tile.Piece {
	case chess.Pawn:
		return p.pawnMoves(from, tile.Colour)
	case chess.Knight:
		return p.stepMoves(from, tile.Colour, knightOffsets)
	case chess.Bishop:
		return p.slidingMoves(from, tile.Colour, diagonalDirs)
	case chess.Rook:
		return p.slidingMoves(from, tile.Colour, straightDirs)
	case chess.Queen:
		return p.slidingMoves(from, tile.Colour, queenDirections)
	case chess.King:
		moves := p.stepMoves(from, tile.Colour, kingOffsets)
		return append(moves, p.castlingMoves(from, tile.Colour)...)
	}
	return nil
}

// canLandOn reports whether a piece of colour may finish on sq:
// the square is empty or holds an opposing piece.
func (p *position) canLandOn(sq chess.Square, colour chess.Colour) bool {
	target, occupied := p.board.Get(sq)
	return !occupied || target.Colour != colour
}

// stepMoves handles the single-step pieces (knight, king).
func (p *position) stepMoves(from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var moves []chess.Square
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if ok && p.canLandOn(to, colour) {
			moves = append(moves, to)
		}
	}
	return moves
}

// slidingMoves walks each ray until the edge or a blocker. An opposing
// blocker is included as a capture, an own piece is not.
func (p *position) slidingMoves(from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var moves []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target, occupied := p.board.Get(to)
			if occupied {
				if target.Colour != colour {
					moves = append(moves, to)
				}
				break // Blocked
			}
			moves = append(moves, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

func (p *position) pawnMoves(from chess.Square, colour chess.Colour) []chess.Square {
	var moves []chess.Square
	dir := chess.ColourOffset(colour)

	// Forward pushes never capture
	if one, ok := from.Offset(0, dir); ok && p.board.IsEmpty(one) {
		moves = append(moves, one)
		if from.Rank() == chess.PawnRank(colour) {
			if two, ok := from.Offset(0, 2*dir); ok && p.board.IsEmpty(two) {
				moves = append(moves, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		to, ok := from.Offset(df, dir)
		if !ok {
			continue
		}
		target, occupied := p.board.Get(to)
		if occupied && target.Colour != colour {
			moves = append(moves, to)
		} else if !occupied && p.canCaptureEnPassant(colour, from, to) {
			moves = append(moves, to)
		}
	}
	return moves
}
