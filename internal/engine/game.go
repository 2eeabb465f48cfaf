// Package engine implements the rules of chess: legal move generation,
// move application with castling, en passant and promotion, and the game
// state machine.
package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is a chess game in progress. It is not safe for concurrent use.
//
// Every mutating method is atomic: when it returns an error the game is
// unchanged.
type Game struct {
	pos position

	promoting       bool
	promotionSquare chess.Square
}

// NewGame creates a game from the standard starting position.
func NewGame() *Game {
	return NewGameFromSetup(chess.InitialSetup())
}

// NewGameFromSetup creates a game from an arbitrary position.
// The setup is copied; later changes to it do not affect the game.
// A pawn already standing on its last rank is not treated as a pending
// promotion.
func NewGameFromSetup(setup chess.Setup) *Game {
	return &Game{pos: newPosition(setup)}
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	return &clone
}

// checkSource classifies the piece on from for the side to move.
func (g *Game) checkSource(from chess.Square) error {
	tile, ok := g.pos.board.Get(from)
	if !ok {
		return &errors.MoveError{Err: errors.ErrNoTile, From: from.String()}
	}
	if tile.Colour != g.pos.toMove {
		return &errors.MoveError{Err: errors.ErrNotCurrentTurn, From: from.String()}
	}
	return nil
}

// LegalMoves returns the squares the piece on from may legally move to.
// It fails with ErrNoTile for an empty square and ErrNotCurrentTurn for a
// piece of the side not on move. While a promotion is pending the set is
// empty.
func (g *Game) LegalMoves(from chess.Square) (MoveSet, error) {
	if err := g.checkSource(from); err != nil {
		return MoveSet{}, err
	}
	if g.promoting {
		return MoveSet{}, nil
	}
	return newMoveSet(g.pos.legalMoves(from)), nil
}

// AllLegalMoves lists every legal move of the side to move. Pawn moves to
// the last rank appear once per promotion piece. It is empty while a
// promotion is pending.
func (g *Game) AllLegalMoves() []Move {
	if g.promoting {
		return nil
	}
	return g.pos.allLegalMoves()
}

// MovePiece moves the piece on from to to, resolving castling and en
// passant. A pawn reaching its last rank leaves the game in
// PromotionRequired until CompletePromotion is called.
//
// Errors are *errors.MoveError values wrapping ErrNoTile,
// ErrNotCurrentTurn, ErrInvalidMove or ErrPromotionPending.
func (g *Game) MovePiece(from, to chess.Square) error {
	if err := g.validate(from, to); err != nil {
		return err
	}
	if g.pos.applyMove(from, to) {
		g.promoting = true
		g.promotionSquare = to
	}
	return nil
}

// Play applies a complete move, promotion included. A pawn move to the
// last rank must name a promotion piece and no other move may.
func (g *Game) Play(m Move) error {
	if err := g.validate(m.From, m.To); err != nil {
		return err
	}
	promotes := reachesLastRank(g.pos.board.At(m.From), m.To)
	if promotes != (m.Promotion != chess.NoPiece) || (promotes && !m.Promotion.CanPromoteTo()) {
		return &errors.MoveError{Err: errors.ErrInvalidMove, From: m.From.String(), To: m.To.String()}
	}
	g.pos.play(m)
	return nil
}

func (g *Game) validate(from, to chess.Square) error {
	if err := g.checkSource(from); err != nil {
		return err
	}
	if g.promoting {
		return &errors.MoveError{Err: errors.ErrPromotionPending, From: from.String(), To: to.String()}
	}
	for _, legal := range g.pos.legalMoves(from) {
		if legal == to {
			return nil
		}
	}
	return &errors.MoveError{Err: errors.ErrInvalidMove, From: from.String(), To: to.String()}
}

// CompletePromotion replaces the pawn awaiting promotion with piece and
// passes the turn.
//
// It panics if no promotion is pending, if piece is not a knight,
// bishop, rook or queen, or if the pawn was taken off the promotion square
// through Board.
func (g *Game) CompletePromotion(piece chess.Piece) {
	if !g.promoting {
		panic("engine: CompletePromotion called with no promotion pending")
	}
	if !piece.CanPromoteTo() {
		panic(fmt.Sprintf("engine: cannot promote to %v", piece))
	}
	if g.pos.board.At(g.promotionSquare) != chess.MakeTile(g.pos.toMove, chess.Pawn) {
		panic(fmt.Sprintf("engine: no pawn awaiting promotion on %v", g.promotionSquare))
	}
	g.pos.promote(g.promotionSquare, piece)
	g.promoting = false
}

// State returns the current game state.
func (g *Game) State() State {
	if g.promoting {
		return PromotionRequired{Square: g.promotionSquare}
	}
	return g.pos.deriveState()
}

// Turn returns the side to move. It does not change while a promotion is
// pending.
func (g *Game) Turn() chess.Colour {
	return g.pos.toMove
}

// Board gives direct access to the board. Changes made through it bypass
// every rule check. While a promotion is pending the pawn must stay on the
// promotion square until CompletePromotion is called.
func (g *Game) Board() *chess.Board {
	return &g.pos.board
}

// Tile returns the content of sq. The second result is false if it is empty.
func (g *Game) Tile(sq chess.Square) (chess.Tile, bool) {
	return g.pos.board.Get(sq)
}

// CastlingRights returns the remaining castling rights.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.pos.castling
}

// EnPassantTarget returns the square a pawn passed over on the previous
// move, if any.
func (g *Game) EnPassantTarget() (chess.Square, bool) {
	return g.pos.enPassant, g.pos.hasEnPassant
}

// HalfmoveClock returns the number of moves since the last capture or pawn move.
func (g *Game) HalfmoveClock() uint {
	return g.pos.halfmove
}

// MoveNumber returns the fullmove number, starting at 1 and incremented
// after each Black move.
func (g *Game) MoveNumber() uint {
	return g.pos.fullmove
}

// Setup returns a description of the current position.
func (g *Game) Setup() chess.Setup {
	board := g.pos.board
	setup := chess.Setup{
		Board:         &board,
		ToMove:        g.pos.toMove,
		Castling:      g.pos.castling,
		HalfmoveClock: g.pos.halfmove,
		MoveNumber:    g.pos.fullmove,
	}
	if g.pos.hasEnPassant {
		ep := g.pos.enPassant
		setup.EnPassant = &ep
	}
	return setup
}
