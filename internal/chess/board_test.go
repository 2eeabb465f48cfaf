package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			sq := SquareFromIndex(i)
			if got, ok := b.Get(sq); ok {
				t.Errorf("Get(%v) = %v, true; want Empty, false", sq, got)
			}
		}
	})

	t.Run("no kings", func(t *testing.T) {
		if sq, ok := b.FindKing(White); ok {
			t.Errorf("FindKing(White) = %v, true; want false", sq)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name string
		sq   string
		tile Tile
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black knight b8", "b8", B(Knight)},
		{"black bishop c8", "c8", B(Bishop)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Middle of the board
		{"empty e4", "e4", Tile{}},
		{"empty d5", "d5", Tile{}},
		{"empty a3", "a3", Tile{}},
		{"empty h6", "h6", Tile{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.sq)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.sq, err)
			}
			if got := b.At(sq); got != tt.tile {
				t.Errorf("At(%s) = %v; want %v", tt.sq, got, tt.tile)
			}
		})
	}

	t.Run("piece counts", func(t *testing.T) {
		if got := b.Count(W(Pawn)); got != 8 {
			t.Errorf("Count(W(Pawn)) = %d; want 8", got)
		}
		if got := b.Count(B(Knight)); got != 2 {
			t.Errorf("Count(B(Knight)) = %d; want 2", got)
		}
		if got := b.Count(Tile{}); got != 0 {
			t.Errorf("Count(empty) = %d; want 0", got)
		}
	})
}

func TestBoardSetRemove(t *testing.T) {
	b := NewBoard()
	e4 := NewSquare(4, 3)

	b.Set(e4, W(Knight))
	if got, ok := b.Get(e4); !ok || got != W(Knight) {
		t.Fatalf("Get(e4) = %v, %v; want White Knight, true", got, ok)
	}
	if b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = true after Set; want false")
	}

	removed, ok := b.Remove(e4)
	if !ok || removed != W(Knight) {
		t.Errorf("Remove(e4) = %v, %v; want White Knight, true", removed, ok)
	}
	if !b.IsEmpty(e4) {
		t.Error("IsEmpty(e4) = false after Remove; want true")
	}

	if _, ok := b.Remove(e4); ok {
		t.Error("Remove(e4) on empty square reported a tile")
	}
}

func TestBoardCopy(t *testing.T) {
	original := NewInitialBoard()
	copied := original.Copy()

	e2 := NewSquare(4, 1)
	e4 := NewSquare(4, 3)
	pawn, _ := copied.Remove(e2)
	copied.Set(e4, pawn)

	if original.IsEmpty(e2) {
		t.Error("modifying the copy emptied e2 on the original")
	}
	if !original.IsEmpty(e4) {
		t.Error("modifying the copy filled e4 on the original")
	}
	if copied.At(e4) != W(Pawn) {
		t.Errorf("copy At(e4) = %v; want White Pawn", copied.At(e4))
	}
}

func TestFindKing(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		colour Colour
		want   string
	}{
		{White, "e1"},
		{Black, "e8"},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			sq, ok := b.FindKing(tt.colour)
			if !ok {
				t.Fatalf("FindKing(%v) found nothing", tt.colour)
			}
			if sq.String() != tt.want {
				t.Errorf("FindKing(%v) = %v; want %s", tt.colour, sq, tt.want)
			}
		})
	}
}

func TestBoardForEach(t *testing.T) {
	b := NewBoard()
	b.Set(NewSquare(0, 0), W(Rook))
	b.Set(NewSquare(7, 7), B(King))

	var visited []string
	b.ForEach(func(sq Square, tile Tile) {
		visited = append(visited, sq.String()+":"+tile.String())
	})

	want := []string{"a1:White Rook", "h8:Black King"}
	if len(visited) != len(want) {
		t.Fatalf("ForEach visited %v; want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("ForEach visit %d = %q; want %q", i, visited[i], want[i])
		}
	}
}

func TestCastlingRights(t *testing.T) {
	rights := AllCastlingRights

	rights.ClearRookSquare(NewSquare(7, 0)) // h1
	if rights.WhiteKingside {
		t.Error("ClearRookSquare(h1) left WhiteKingside set")
	}
	if !rights.WhiteQueenside || !rights.BlackKingside || !rights.BlackQueenside {
		t.Errorf("ClearRookSquare(h1) cleared too much: %+v", rights)
	}

	rights.ClearRookSquare(NewSquare(4, 4)) // e5, not a rook home square
	if !rights.WhiteQueenside || !rights.BlackKingside || !rights.BlackQueenside {
		t.Errorf("ClearRookSquare(e5) changed rights: %+v", rights)
	}

	rights.ClearColour(Black)
	if rights.Kingside(Black) || rights.Queenside(Black) {
		t.Errorf("ClearColour(Black) left black rights: %+v", rights)
	}
	if !rights.Queenside(White) {
		t.Error("ClearColour(Black) cleared WhiteQueenside")
	}
	if !rights.Any() {
		t.Error("Any() = false; want true")
	}

	rights.ClearRookSquare(NewSquare(0, 0)) // a1
	if rights.Any() {
		t.Errorf("Any() = true after clearing everything: %+v", rights)
	}
}

func TestInitialSetup(t *testing.T) {
	setup := InitialSetup()

	if setup.ToMove != White {
		t.Errorf("ToMove = %v; want White", setup.ToMove)
	}
	if setup.Castling != AllCastlingRights {
		t.Errorf("Castling = %+v; want all rights", setup.Castling)
	}
	if setup.EnPassant != nil {
		t.Errorf("EnPassant = %v; want nil", *setup.EnPassant)
	}
	if setup.MoveNumber != 1 || setup.HalfmoveClock != 0 {
		t.Errorf("clocks = %d/%d; want 0/1", setup.HalfmoveClock, setup.MoveNumber)
	}
	if setup.Board.At(NewSquare(4, 0)) != W(King) {
		t.Errorf("Board e1 = %v; want White King", setup.Board.At(NewSquare(4, 0)))
	}
}
