package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Sq parses algebraic notation and calls t.Fatal if it is malformed.
func Sq(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("bad test square %q: %v", s, err)
	}
	return sq
}

// Squares parses each name with Sq.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, len(names))
	for i, name := range names {
		out[i] = Sq(t, name)
	}
	return out
}

// SquareNames returns the algebraic names of squares, in order.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
