package chess

// Board holds the 64 tiles of a position. It performs no validation:
// the caller is trusted to keep the contents meaningful.
//
// Tiles are stored by value, so copying a Board (or calling Copy) yields a
// fully independent board.
type Board struct {
	squares [NumSquares]Tile
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Set(NewSquare(file, 0), W(backRank[file]))
		b.Set(NewSquare(file, 1), W(Pawn))
		b.Set(NewSquare(file, 6), B(Pawn))
		b.Set(NewSquare(file, 7), B(backRank[file]))
	}
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	b.squares = [NumSquares]Tile{}
}

// Get returns the tile at sq. The second result is false if the square is empty.
func (b *Board) Get(sq Square) (Tile, bool) {
	t := b.squares[sq.Index()]
	return t, !t.IsEmpty()
}

// At returns the tile at sq, the zero Tile if empty.
func (b *Board) At(sq Square) Tile {
	return b.squares[sq.Index()]
}

// Set places a tile at sq. Setting the zero Tile empties the square.
func (b *Board) Set(sq Square, t Tile) {
	b.squares[sq.Index()] = t
}

// Remove empties sq and returns what was there.
func (b *Board) Remove(sq Square) (Tile, bool) {
	t, ok := b.Get(sq)
	b.squares[sq.Index()] = Tile{}
	return t, ok
}

// IsEmpty returns true if no piece occupies sq.
func (b *Board) IsEmpty(sq Square) bool {
	return b.squares[sq.Index()].IsEmpty()
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing finds the king of the given colour on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeTile(colour, King)
	for i, t := range b.squares {
		if t == king {
			return SquareFromIndex(i), true
		}
	}
	return Square{}, false
}

// ForEach calls fn for every occupied square, in index order (a1, b1, ... h8).
func (b *Board) ForEach(fn func(sq Square, t Tile)) {
	for i, t := range b.squares {
		if !t.IsEmpty() {
			fn(SquareFromIndex(i), t)
		}
	}
}

// Count returns the number of tiles equal to t.
func (b *Board) Count(t Tile) int {
	n := 0
	for _, sq := range b.squares {
		if sq == t && !sq.IsEmpty() {
			n++
		}
	}
	return n
}
