package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves returns the castling destinations open to the king on from.
// A side may castle when it still holds the right, king and rook stand on
// their home squares, every square between them is empty, the king is not
// in check, and neither the square it crosses nor the one it lands on is
// attacked.
func (p *position) castlingMoves(from chess.Square, colour chess.Colour) []chess.Square {
	home := chess.HomeRank(colour)
	if from != chess.NewSquare(chess.KingFile, home) {
		return nil
	}
	if !p.castling.Kingside(colour) && !p.castling.Queenside(colour) {
		return nil
	}
	enemy := colour.Opposite()
	if isSquareAttacked(&p.board, from, enemy) {
		return nil
	}

	var moves []chess.Square
	if p.castling.Kingside(colour) && p.castlingPathClear(colour, chess.KingsideRookFile) {
		cross := chess.NewSquare(chess.KingFile+1, home)
		dest := chess.NewSquare(chess.KingFile+2, home)
		if !isSquareAttacked(&p.board, cross, enemy) && !isSquareAttacked(&p.board, dest, enemy) {
			moves = append(moves, dest)
		}
	}
	if p.castling.Queenside(colour) && p.castlingPathClear(colour, chess.QueensideRookFile) {
		cross := chess.NewSquare(chess.KingFile-1, home)
		dest := chess.NewSquare(chess.KingFile-2, home)
		if !isSquareAttacked(&p.board, cross, enemy) && !isSquareAttacked(&p.board, dest, enemy) {
			moves = append(moves, dest)
		}
	}
	return moves
}

// castlingPathClear checks the rook is at home and nothing stands between
// it and the king.
func (p *position) castlingPathClear(colour chess.Colour, rookFile int) bool {
	home := chess.HomeRank(colour)
	if p.board.At(chess.NewSquare(rookFile, home)) != chess.MakeTile(colour, chess.Rook) {
		return false
	}
	step := 1
	if rookFile < chess.KingFile {
		step = -1
	}
	for file := chess.KingFile + step; file != rookFile; file += step {
		if !p.board.IsEmpty(chess.NewSquare(file, home)) {
			return false
		}
	}
	return true
}

// isCastle reports whether a king move from -> to is a castling move.
func isCastle(tile chess.Tile, from, to chess.Square) bool {
	return tile.Piece == chess.King && abs(to.File()-from.File()) == 2
}

// castlingRookSquares returns where the rook starts and ends for a castling
// king move. The rook lands on the square the king crossed.
func castlingRookSquares(kingFrom, kingTo chess.Square) (rookFrom, rookTo chess.Square) {
	rank := kingFrom.Rank()
	if kingTo.File() > kingFrom.File() {
		return chess.NewSquare(chess.KingsideRookFile, rank), chess.NewSquare(kingFrom.File()+1, rank)
	}
	return chess.NewSquare(chess.QueensideRookFile, rank), chess.NewSquare(kingFrom.File()-1, rank)
}

// updateCastlingRights removes the rights a move from -> to gives up: every
// right of a moving king, and the right tied to a rook home square that is
// left or captured on.
func (p *position) updateCastlingRights(tile chess.Tile, from, to chess.Square) {
	if tile.Piece == chess.King {
		p.castling.ClearColour(tile.Colour)
	}
	p.castling.ClearRookSquare(from)
	p.castling.ClearRookSquare(to)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
