package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. Every Square value is on the board:
// NewSquare panics on out-of-range input and ParseSquare reports an error,
// so code holding a Square never needs to re-check its bounds.
type Square struct {
	file int8
	rank int8
}

// NewSquare creates the square at file and rank, both in [0, 7], where file 0
// is the a-file and rank 0 is the first rank.
// It panics if either coordinate is out of range; callers must validate raw input.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize {
		panic(fmt.Sprintf("chess: file must be in the range [0, 7], got %d", file))
	}
	if rank < 0 || rank >= BoardSize {
		panic(fmt.Sprintf("chess: rank must be in the range [0, 7], got %d", rank))
	}
	return Square{file: int8(file), rank: int8(rank)}
}

// SquareFromIndex creates a square from its index rank*8+file.
// It panics if i is outside [0, 63].
func SquareFromIndex(i int) Square {
	if i < 0 || i >= NumSquares {
		panic(fmt.Sprintf("chess: square index must be in the range [0, 63], got %d", i))
	}
	return Square{file: int8(i % BoardSize), rank: int8(i / BoardSize)}
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file letter and rank digit",
			Got:      fmt.Sprintf("%d characters", len(s)),
		}
	}
	file, rank := s[0], s[1]
	if file < FileBase || file >= FileBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Square{file: int8(file - FileBase), rank: int8(rank - RankBase)}, nil
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s.file)
}

// Rank returns the rank index, 0 for the first rank.
func (s Square) Rank() int {
	return int(s.rank)
}

// FileChar returns the lowercase file letter.
func (s Square) FileChar() byte {
	return byte(FileBase + s.file)
}

// RankChar returns the rank digit.
func (s Square) RankChar() byte {
	return byte(RankBase + s.rank)
}

// Index returns rank*8+file.
func (s Square) Index() int {
	return int(s.rank)*BoardSize + int(s.file)
}

// Offset returns the square df files and dr ranks away.
// The second result is false when that square is off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	file := int(s.file) + df
	rank := int(s.rank) + dr
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Square{}, false
	}
	return Square{file: int8(file), rank: int8(rank)}, true
}

// String returns the square in algebraic notation.
func (s Square) String() string {
	return string([]byte{s.FileChar(), s.RankChar()})
}
