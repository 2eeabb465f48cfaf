package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// State is the status of a game. Exactly one variant applies at a time:
// Normal, Check, Checkmate, Stalemate or PromotionRequired.
// It is derived from the position whenever it is asked for.
type State interface {
	fmt.Stringer
	// IsTerminal reports whether the game has ended.
	IsTerminal() bool
	state()
}

// Normal means the side to move is not in check and has a legal move.
type Normal struct{}

// Check means Colour, the side to move, is in check but can escape.
type Check struct {
	Colour chess.Colour
}

// Checkmate means Colour, the side to move, is in check with no legal move.
type Checkmate struct {
	Colour chess.Colour
}

// Stalemate means the side to move is not in check and has no legal move.
type Stalemate struct{}

// PromotionRequired means the pawn on Square must be promoted before play
// can continue.
type PromotionRequired struct {
	Square chess.Square
}

func (Normal) state()            {}
func (Check) state()             {}
func (Checkmate) state()         {}
func (Stalemate) state()         {}
func (PromotionRequired) state() {}

func (Normal) IsTerminal() bool            { return false }
func (Check) IsTerminal() bool             { return false }
func (Checkmate) IsTerminal() bool         { return true }
func (Stalemate) IsTerminal() bool         { return true }
func (PromotionRequired) IsTerminal() bool { return false }

func (Normal) String() string    { return "Normal" }
func (s Check) String() string   { return fmt.Sprintf("Check(%v)", s.Colour) }
func (Stalemate) String() string { return "Stalemate" }

func (s Checkmate) String() string {
	return fmt.Sprintf("Checkmate(%v)", s.Colour)
}

func (s PromotionRequired) String() string {
	return fmt.Sprintf("PromotionRequired(%v)", s.Square)
}

// deriveState computes the state of the side to move.
func (p *position) deriveState() State {
	colour := p.toMove
	check := p.inCheck(colour)
	moves := p.hasLegalMoves(colour)

	switch {
	case check && !moves:
		return Checkmate{Colour: colour}
	case check:
		return Check{Colour: colour}
	case !moves:
		return Stalemate{}
	default:
		return Normal{}
	}
}
