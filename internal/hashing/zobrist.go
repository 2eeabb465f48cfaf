// Package hashing provides Zobrist position keys and a node-count cache
// keyed by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Position is the read-only view of a position needed to hash it.
type Position interface {
	Tile(sq chess.Square) (chess.Tile, bool)
	Turn() chess.Colour
	CastlingRights() chess.CastlingRights
	EnPassantTarget() (chess.Square, bool)
}

// Zobrist keys for pieces, castling, en passant, and side to move.
var (
	zobristPiece     [2 * chess.NumPieceValues][chess.NumSquares]uint64
	zobristCastle    [16]uint64 // indexed by castlingIndex
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64 // XORed in when Black is to move
)

func init() {
	// Fixed seed so keys are stable between runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func pieceIndex(t chess.Tile) int {
	return int(t.Colour)*int(chess.NumPieceValues) + int(t.Piece)
}

func castlingIndex(c chess.CastlingRights) int {
	idx := 0
	if c.WhiteKingside {
		idx |= 1
	}
	if c.WhiteQueenside {
		idx |= 2
	}
	if c.BlackKingside {
		idx |= 4
	}
	if c.BlackQueenside {
		idx |= 8
	}
	return idx
}

// Zobrist computes the Zobrist key of a position. The move clocks are not
// part of the key.
func Zobrist(p Position) uint64 {
	var key uint64

	for i := 0; i < chess.NumSquares; i++ {
		if tile, ok := p.Tile(chess.SquareFromIndex(i)); ok {
			key ^= zobristPiece[pieceIndex(tile)][i]
		}
	}

	if p.Turn() == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[castlingIndex(p.CastlingRights())]

	if ep, ok := p.EnPassantTarget(); ok {
		key ^= zobristEnPassant[ep.File()]
	}

	return key
}
