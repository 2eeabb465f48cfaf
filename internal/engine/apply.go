package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// applyMove moves the piece on from to to and resolves every side effect:
// en passant removal, rook relocation on castling, castling rights, the en
// passant target and the halfmove clock.
//
// The move is assumed pseudo-legal. The same resolver serves both the
// legality simulation and the committed move, so the two cannot disagree.
//
// When a pawn reaches its last rank the turn is not passed and
// applyMove returns true; the caller must finish the move with promote.
func (p *position) applyMove(from, to chess.Square) (promotion bool) {
	tile := p.board.At(from)
	_, captured := p.board.Get(to)

	if p.isEnPassantCapture(tile, from, to) {
		p.board.Remove(enPassantVictim(from, to))
		captured = true
	}

	if isCastle(tile, from, to) {
		rookFrom, rookTo := castlingRookSquares(from, to)
		rook, _ := p.board.Remove(rookFrom)
		p.board.Set(rookTo, rook)
	}

	p.board.Remove(from)
	p.board.Set(to, tile)

	p.updateCastlingRights(tile, from, to)

	p.hasEnPassant = false
	if target, ok := doublePushTarget(tile, from, to); ok {
		p.enPassant = target
		p.hasEnPassant = true
	}

	if tile.Piece == chess.Pawn || captured {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	if reachesLastRank(tile, to) {
		return true
	}
	p.passTurn()
	return false
}

// promote replaces the pawn on sq with piece and passes the turn.
func (p *position) promote(sq chess.Square, piece chess.Piece) {
	p.board.Set(sq, chess.MakeTile(p.toMove, piece))
	p.passTurn()
}

// play applies a full move, including its promotion choice. A promotion
// move without a piece is finished as a queen.
func (p *position) play(m Move) {
	if p.applyMove(m.From, m.To) {
		piece := m.Promotion
		if piece == chess.NoPiece {
			piece = chess.Queen
		}
		p.promote(m.To, piece)
	}
}
