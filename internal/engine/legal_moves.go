package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// legalMoves filters the pseudo-legal moves of the piece on from down to
// those that do not leave its own king attacked.
func (p *position) legalMoves(from chess.Square) []chess.Square {
	tile, ok := p.board.Get(from)
	if !ok {
		return nil
	}

	var legal []chess.Square
	for _, to := range p.pseudoLegalMoves(from) {
		if p.tryMove(from, to, tile.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// tryMove makes a move on a copied position and checks if it leaves the king in check.
func (p *position) tryMove(from, to chess.Square, colour chess.Colour) bool {
	scratch := *p
	scratch.applyMove(from, to)
	return !scratch.inCheck(colour)
}

// hasLegalMoves returns true if the given colour has at least one legal move.
func (p *position) hasLegalMoves(colour chess.Colour) bool {
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.SquareFromIndex(i)
		tile, ok := p.board.Get(from)
		if !ok || tile.Colour != colour {
			continue
		}
		for _, to := range p.pseudoLegalMoves(from) {
			if p.tryMove(from, to, colour) {
				return true
			}
		}
	}
	return false
}

// allLegalMoves lists every legal move of the side to move, in board order.
// A move onto the last rank by a pawn appears once per promotion piece.
func (p *position) allLegalMoves() []Move {
	var moves []Move
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.SquareFromIndex(i)
		tile, ok := p.board.Get(from)
		if !ok || tile.Colour != p.toMove {
			continue
		}
		for _, to := range p.legalMoves(from) {
			if reachesLastRank(tile, to) {
				for _, piece := range chess.PromotionPieces {
					moves = append(moves, Move{From: from, To: to, Promotion: piece})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
