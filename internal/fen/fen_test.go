package fen

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func sq(t *testing.T, s string) chess.Square {
	t.Helper()
	square, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", s, err)
	}
	return square
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(t *testing.T, s chess.Setup)
	}{
		{
			name: "initial position",
			fen:  Initial,
			checkFn: func(t *testing.T, s chess.Setup) {
				if s.Board.At(sq(t, "e1")) != chess.W(chess.King) || s.Board.At(sq(t, "e8")) != chess.B(chess.King) {
					t.Error("kings not on e1/e8")
				}
				if s.Board.At(sq(t, "e2")) != chess.W(chess.Pawn) || s.Board.At(sq(t, "e7")) != chess.B(chess.Pawn) {
					t.Error("pawns not on e2/e7")
				}
				if s.ToMove != chess.White {
					t.Errorf("ToMove = %v, want White", s.ToMove)
				}
				if s.Castling != chess.AllCastlingRights {
					t.Errorf("Castling = %+v, want all", s.Castling)
				}
				if s.EnPassant != nil {
					t.Errorf("EnPassant = %v, want nil", *s.EnPassant)
				}
				if s.HalfmoveClock != 0 || s.MoveNumber != 1 {
					t.Errorf("clocks = %d %d, want 0 1", s.HalfmoveClock, s.MoveNumber)
				}
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, s chess.Setup) {
				if !s.Board.IsEmpty(sq(t, "e2")) || s.Board.At(sq(t, "e4")) != chess.W(chess.Pawn) {
					t.Error("pawn not moved to e4")
				}
				if s.ToMove != chess.Black {
					t.Errorf("ToMove = %v, want Black", s.ToMove)
				}
				if s.EnPassant == nil || s.EnPassant.String() != "e3" {
					t.Errorf("EnPassant = %v, want e3", s.EnPassant)
				}
			},
		},
		{
			name: "partial castling rights and clocks",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 12 40",
			checkFn: func(t *testing.T, s chess.Setup) {
				want := chess.CastlingRights{WhiteKingside: true, BlackQueenside: true}
				if diff := cmp.Diff(want, s.Castling); diff != "" {
					t.Errorf("Castling mismatch (-want +got):\n%s", diff)
				}
				if s.HalfmoveClock != 12 || s.MoveNumber != 40 {
					t.Errorf("clocks = %d %d, want 12 40", s.HalfmoveClock, s.MoveNumber)
				}
			},
		},
		{
			name: "extra whitespace",
			fen:  "  8/8/8/8/8/8/8/4K2k   w - -  0 1 ",
			checkFn: func(t *testing.T, s chess.Setup) {
				if s.Board.At(sq(t, "h1")) != chess.B(chess.King) {
					t.Error("black king not on h1")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup, err := Parse(tt.fen)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.fen, err)
			}
			tt.checkFn(t, setup)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty string", "", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -", ""},
		{"too many fields", Initial + " 7", ""},
		{"bad piece letter", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"too many pieces", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"seven ranks", "pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"nine ranks", "8/rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", FieldPlacement},
		{"bad turn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", FieldTurn},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1", FieldCastling},
		{"repeated castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KKq - 0 1", FieldCastling},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z3 0 1", FieldEnPassant},
		{"en passant on wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", FieldEnPassant},
		{"en passant behind own pawn", "4k3/8/8/8/8/8/3PN3/4K3 w - e3 0 1", FieldEnPassant},
		{"en passant on sixth rank for Black", "rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR b KQkq e6 0 2", FieldEnPassant},
		{"negative halfmove clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", FieldHalfmove},
		{"zero move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", FieldFullmove},
		{"non-numeric move number", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x", FieldFullmove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.fen)
			if err == nil {
				t.Fatalf("Parse(%q) = nil error, want error", tt.fen)
			}
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
			var parseErr *chesserrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error is not a *ParseError: %v", tt.fen, err)
			}
			if parseErr.Field != tt.wantField {
				t.Errorf("Parse(%q) field = %q, want %q", tt.fen, parseErr.Field, tt.wantField)
			}
			if parseErr.Input != tt.fen {
				t.Errorf("Parse(%q) input = %q", tt.fen, parseErr.Input)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(bad) did not panic")
		}
	}()
	MustParse("not a fen")
}

// TestRoundTrip checks that parsing then formatting reproduces the input exactly.
func TestRoundTrip(t *testing.T) {
	tests := []string{
		Initial,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Qk - 7 23",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/8/8/8/8/8/8/4K3 w - - 99 150",
	}

	for _, want := range tests {
		t.Run(want, func(t *testing.T) {
			setup, err := Parse(want)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := FormatSetup(setup); got != want {
				t.Errorf("FormatSetup(Parse(%q)) = %q", want, got)
			}

			game := engine.NewGameFromSetup(setup)
			if got := Format(game); got != want {
				t.Errorf("Format(NewGameFromSetup(%q)) = %q", want, got)
			}
		})
	}
}

// bareReader implements PositionReader without the clocks.
type bareReader struct {
	game *engine.Game
}

func (r bareReader) Tile(sq chess.Square) (chess.Tile, bool)  { return r.game.Tile(sq) }
func (r bareReader) Turn() chess.Colour                       { return r.game.Turn() }
func (r bareReader) CastlingRights() chess.CastlingRights     { return r.game.CastlingRights() }
func (r bareReader) EnPassantTarget() (chess.Square, bool)    { return r.game.EnPassantTarget() }

func TestFormat_WithoutClocks(t *testing.T) {
	game := engine.NewGameFromSetup(MustParse("8/8/8/8/8/8/8/4K2k b - - 30 60"))
	want := "8/8/8/8/8/8/8/4K2k b - - 0 1"
	if got := Format(bareReader{game}); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

// fenPrefix keeps the placement, side to move and castling fields.
func fenPrefix(s string) string {
	return strings.Join(strings.Fields(s)[:3], " ")
}

// TestFormat_AgainstNotnil plays the same games here and in
// github.com/notnil/chess and compares the resulting positions.
func TestFormat_AgainstNotnil(t *testing.T) {
	games := []struct {
		name  string
		moves []string
	}{
		{"italian with castling", []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6", "e1g1", "f8c5"}},
		{"en passant", []string{"e2e4", "d7d5", "e4e5", "f7f5", "e5f6", "g7f6"}},
		{"queenside castling", []string{"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7", "e1c1", "e8c8"}},
		{"rook moves clear rights", []string{"h2h4", "a7a5", "h1h3", "a8a6", "h3h1"}},
		{"underpromotion", []string{"a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "b8c6", "b7a8n"}},
	}

	for _, tt := range games {
		t.Run(tt.name, func(t *testing.T) {
			game := engine.NewGame()
			ref := notnil.NewGame(notnil.UseNotation(notnil.UCINotation{}))

			for _, s := range tt.moves {
				m, err := engine.ParseMove(s)
				if err != nil {
					t.Fatalf("ParseMove(%q) error: %v", s, err)
				}
				if err := game.Play(m); err != nil {
					t.Fatalf("Play(%s) error: %v", s, err)
				}
				if err := ref.MoveStr(s); err != nil {
					t.Fatalf("reference MoveStr(%s) error: %v", s, err)
				}

				got := fenPrefix(Format(game))
				want := fenPrefix(ref.Position().String())
				if got != want {
					t.Fatalf("after %s: Format() = %q, reference = %q", s, got, want)
				}
			}
		})
	}
}

// TestParse_AgainstNotnil checks positions notnil accepts load identically here.
func TestParse_AgainstNotnil(t *testing.T) {
	positions := []string{
		Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for _, s := range positions {
		t.Run(s, func(t *testing.T) {
			opt, err := notnil.FEN(s)
			if err != nil {
				t.Fatalf("reference FEN(%q) error: %v", s, err)
			}
			ref := notnil.NewGame(opt)

			setup, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", s, err)
			}
			if got, want := fenPrefix(FormatSetup(setup)), fenPrefix(ref.Position().String()); got != want {
				t.Errorf("FormatSetup() = %q, reference = %q", got, want)
			}
		})
	}
}
