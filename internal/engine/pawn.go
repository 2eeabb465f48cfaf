package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// isEnPassantCapture reports whether a move from -> to by tile takes a pawn
// en passant: a pawn moving diagonally onto the empty en passant target.
func (p *position) isEnPassantCapture(tile chess.Tile, from, to chess.Square) bool {
	return tile.Piece == chess.Pawn &&
		from.File() != to.File() &&
		p.canCaptureEnPassant(tile.Colour, from, to)
}

// canCaptureEnPassant reports whether a pawn of colour on from may take en
// passant on to. The target must be empty and an opposing pawn must stand
// on the victim square; a hand-built setup may name a target that fails
// either test.
func (p *position) canCaptureEnPassant(colour chess.Colour, from, to chess.Square) bool {
	return p.isEnPassantTarget(to) &&
		p.board.IsEmpty(to) &&
		p.board.At(enPassantVictim(from, to)) == chess.MakeTile(colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn taken en passant: beside
// the destination, on the capturing pawn's rank.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.NewSquare(to.File(), from.Rank())
}

// doublePushTarget returns the square a double pawn push passed over.
func doublePushTarget(tile chess.Tile, from, to chess.Square) (chess.Square, bool) {
	if tile.Piece != chess.Pawn || abs(to.Rank()-from.Rank()) != 2 {
		return chess.Square{}, false
	}
	return chess.NewSquare(from.File(), (from.Rank()+to.Rank())/2), true
}

// reachesLastRank reports whether a pawn has arrived where it must promote.
func reachesLastRank(tile chess.Tile, to chess.Square) bool {
	return tile.Piece == chess.Pawn && to.Rank() == chess.LastRank(tile.Colour)
}
