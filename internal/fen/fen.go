// Package fen reads and writes Forsyth-Edwards Notation position descriptions.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Initial is the FEN string for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Field names used in parse errors.
const (
	FieldPlacement = "piece placement"
	FieldTurn      = "side to move"
	FieldCastling  = "castling"
	FieldEnPassant = "en passant"
	FieldHalfmove  = "halfmove clock"
	FieldFullmove  = "fullmove number"
)

var fieldNames = []string{FieldPlacement, FieldTurn, FieldCastling, FieldEnPassant, FieldHalfmove, FieldFullmove}

// FEN piece characters (always English).
var fenPieceChars = map[byte]chess.Piece{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// PositionReader is the read-only view of a position that Format needs.
type PositionReader interface {
	Tile(sq chess.Square) (chess.Tile, bool)
	Turn() chess.Colour
	CastlingRights() chess.CastlingRights
	EnPassantTarget() (chess.Square, bool)
}

// ClockReader is implemented by positions that track the move clocks.
// Format writes "0 1" for readers that do not.
type ClockReader interface {
	HalfmoveClock() uint
	MoveNumber() uint
}

// Parse reads all six FEN fields into a Setup.
// Errors are *errors.ParseError values wrapping errors.ErrInvalidFEN.
func Parse(s string) (chess.Setup, error) {
	parts := strings.Fields(s)
	if len(parts) != len(fieldNames) {
		return chess.Setup{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    s,
			Expected: fmt.Sprintf("%d fields", len(fieldNames)),
			Got:      fmt.Sprintf("%d", len(parts)),
		}
	}

	setup := chess.Setup{Board: chess.NewBoard()}
	if err := parsePiecePlacement(setup.Board, parts[0]); err != nil {
		return chess.Setup{}, withInput(err, s)
	}

	var err error
	if setup.ToMove, err = parseSideToMove(parts[1]); err != nil {
		return chess.Setup{}, withInput(err, s)
	}
	if setup.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return chess.Setup{}, withInput(err, s)
	}
	if setup.EnPassant, err = parseEnPassant(parts[3], setup.ToMove); err != nil {
		return chess.Setup{}, withInput(err, s)
	}
	if setup.HalfmoveClock, err = parseClock(parts[4], FieldHalfmove, 0); err != nil {
		return chess.Setup{}, withInput(err, s)
	}
	if setup.MoveNumber, err = parseClock(parts[5], FieldFullmove, 1); err != nil {
		return chess.Setup{}, withInput(err, s)
	}
	return setup, nil
}

// MustParse is like Parse but panics on error. It is meant for
// positions fixed at compile time.
func MustParse(s string) chess.Setup {
	setup, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return setup
}

func withInput(err error, input string) error {
	if pe, ok := err.(*errors.ParseError); ok {
		pe.Input = input
	}
	return err
}

func fieldError(field string, column int, expected, got string) *errors.ParseError {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Column:   column,
		Expected: expected,
		Got:      got,
	}
}

// parsePiecePlacement parses the piece placement field, eighth rank first.
func parsePiecePlacement(board *chess.Board, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		column := i + 1
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fieldError(FieldPlacement, column, "8 squares per rank", fmt.Sprintf("%d on rank %d", file, rank+1))
			}
			rank--
			file = 0
			if rank < 0 {
				return fieldError(FieldPlacement, column, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return fieldError(FieldPlacement, column, "8 squares per rank", fmt.Sprintf("%d on rank %d", file, rank+1))
			}
		default:
			lower := c
			colour := chess.Black
			if c >= 'A' && c <= 'Z' {
				lower = c + ('a' - 'A')
				colour = chess.White
			}
			piece, ok := fenPieceChars[lower]
			if !ok {
				return fieldError(FieldPlacement, column, "piece letter, digit or /", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fieldError(FieldPlacement, column, "8 squares per rank", fmt.Sprintf("more on rank %d", rank+1))
			}
			board.Set(chess.NewSquare(file, rank), chess.MakeTile(colour, piece))
			file++
		}
	}

	if rank != 0 || file != chess.BoardSize {
		return fieldError(FieldPlacement, len(placement), "8 full ranks", fmt.Sprintf("ending at rank %d file %d", rank+1, file))
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s string) (chess.Colour, error) {
	switch s {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fieldError(FieldTurn, 1, "w or b", s)
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(s string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if s == "-" {
		return rights, nil
	}

	for i := 0; i < len(s); i++ {
		var flag *bool
		switch s[i] {
		case 'K':
			flag = &rights.WhiteKingside
		case 'Q':
			flag = &rights.WhiteQueenside
		case 'k':
			flag = &rights.BlackKingside
		case 'q':
			flag = &rights.BlackQueenside
		default:
			return chess.CastlingRights{}, fieldError(FieldCastling, i+1, "K, Q, k, q or -", fmt.Sprintf("%q", s[i]))
		}
		if *flag {
			return chess.CastlingRights{}, fieldError(FieldCastling, i+1, "each right once", fmt.Sprintf("repeated %q", s[i]))
		}
		*flag = true
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field.
// The target lies behind a pawn the opponent just pushed two squares: on
// the sixth rank when White is to move, the third when Black is.
func parseEnPassant(s string, toMove chess.Colour) (*chess.Square, error) {
	if s == "-" {
		return nil, nil
	}
	sq, err := chess.ParseSquare(s)
	if err != nil {
		return nil, fieldError(FieldEnPassant, 1, "square or -", s)
	}
	mover := toMove.Opposite()
	if want := chess.PawnRank(mover) + chess.ColourOffset(mover); sq.Rank() != want {
		return nil, fieldError(FieldEnPassant, 2,
			fmt.Sprintf("rank %c with %v to move", chess.RankBase+want, toMove),
			string(sq.RankChar()))
	}
	return &sq, nil
}

// parseClock parses a non-negative move counter no smaller than least.
func parseClock(s, field string, least uint) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || uint(n) < least {
		return 0, fieldError(field, 1, fmt.Sprintf("integer >= %d", least), s)
	}
	return uint(n), nil
}

// Format writes a position as a FEN string.
func Format(r PositionReader) string {
	var sb strings.Builder

	writePiecePlacement(&sb, r)
	sb.WriteByte(' ')
	writeSideToMove(&sb, r.Turn())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, r.CastlingRights())
	sb.WriteByte(' ')
	writeEnPassant(&sb, r)
	sb.WriteByte(' ')

	halfmove, fullmove := uint(0), uint(1)
	if clocks, ok := r.(ClockReader); ok {
		halfmove, fullmove = clocks.HalfmoveClock(), clocks.MoveNumber()
	}
	fmt.Fprintf(&sb, "%d %d", halfmove, fullmove)

	return sb.String()
}

// FormatSetup writes a Setup as a FEN string.
func FormatSetup(setup chess.Setup) string {
	return Format(setupReader{setup})
}

// setupReader adapts a Setup to PositionReader and ClockReader.
type setupReader struct {
	setup chess.Setup
}

func (s setupReader) Tile(sq chess.Square) (chess.Tile, bool) { return s.setup.Board.Get(sq) }
func (s setupReader) Turn() chess.Colour                      { return s.setup.ToMove }
func (s setupReader) CastlingRights() chess.CastlingRights    { return s.setup.Castling }
func (s setupReader) HalfmoveClock() uint                     { return s.setup.HalfmoveClock }
func (s setupReader) MoveNumber() uint                        { return s.setup.MoveNumber }

func (s setupReader) EnPassantTarget() (chess.Square, bool) {
	if s.setup.EnPassant == nil {
		return chess.Square{}, false
	}
	return *s.setup.EnPassant, true
}

// writePiecePlacement writes the piece placement to the builder.
func writePiecePlacement(sb *strings.Builder, r PositionReader) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			tile, ok := r.Tile(chess.NewSquare(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(tile.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if !rights.Any() {
		sb.WriteByte('-')
		return
	}
	if rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if rights.BlackKingside {
		sb.WriteByte('k')
	}
	if rights.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, r PositionReader) {
	if sq, ok := r.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}
