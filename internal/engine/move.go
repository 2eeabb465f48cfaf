package engine

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a complete move: source, destination and, for a pawn reaching
// its last rank, the piece it becomes.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Piece // NoPiece unless promoting
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoPiece {
		s += string(chess.B(m.Promotion).Letter())
	}
	return s
}

// ParseMove parses long algebraic notation such as "g1f3" or "a7a8n".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.Wrapf(errors.ErrInvalidMove, "parse move %q", s)
	}
	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		piece, ok := promotionLetters[s[4]]
		if !ok {
			return Move{}, errors.Wrapf(errors.ErrInvalidMove, "parse move %q: bad promotion piece", s)
		}
		m.Promotion = piece
	}
	return m, nil
}

var promotionLetters = map[byte]chess.Piece{
	'q': chess.Queen,
	'r': chess.Rook,
	'b': chess.Bishop,
	'n': chess.Knight,
}

// MoveSet is the set of destination squares a piece may legally move to.
// The zero MoveSet is empty.
type MoveSet struct {
	squares map[chess.Square]struct{}
}

func newMoveSet(squares []chess.Square) MoveSet {
	set := MoveSet{squares: make(map[chess.Square]struct{}, len(squares))}
	for _, sq := range squares {
		set.squares[sq] = struct{}{}
	}
	return set
}

// Contains reports whether sq is in the set.
func (s MoveSet) Contains(sq chess.Square) bool {
	_, ok := s.squares[sq]
	return ok
}

// Len returns the number of squares in the set.
func (s MoveSet) Len() int {
	return len(s.squares)
}

// IsEmpty reports whether the set has no squares.
func (s MoveSet) IsEmpty() bool {
	return len(s.squares) == 0
}

// Sorted returns the squares in board order, a1 first.
func (s MoveSet) Sorted() []chess.Square {
	squares := maps.Keys(s.squares)
	slices.SortFunc(squares, func(a, b chess.Square) int {
		return a.Index() - b.Index()
	})
	return squares
}

// Strings returns the sorted squares in algebraic notation.
func (s MoveSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, sq := range sorted {
		out[i] = sq.String()
	}
	return out
}
