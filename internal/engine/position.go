package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// position is everything the rules need to know about a point in a game.
// It is a plain value: assigning it copies the board too.
type position struct {
	board        chess.Board
	toMove       chess.Colour
	castling     chess.CastlingRights
	enPassant    chess.Square
	hasEnPassant bool
	halfmove     uint
	fullmove     uint
}

// newPosition builds a position from a setup description.
func newPosition(setup chess.Setup) position {
	pos := position{
		toMove:   setup.ToMove,
		castling: setup.Castling,
		halfmove: setup.HalfmoveClock,
		fullmove: setup.MoveNumber,
	}
	if setup.Board != nil {
		pos.board = *setup.Board
	}
	if setup.EnPassant != nil {
		pos.enPassant = *setup.EnPassant
		pos.hasEnPassant = true
	}
	if pos.fullmove == 0 {
		pos.fullmove = 1
	}
	return pos
}

// isEnPassantTarget reports whether sq is the current en passant target.
func (p *position) isEnPassantTarget(sq chess.Square) bool {
	return p.hasEnPassant && p.enPassant == sq
}

// passTurn hands the move to the other side.
func (p *position) passTurn() {
	if p.toMove == chess.Black {
		p.fullmove++
	}
	p.toMove = p.toMove.Opposite()
}
