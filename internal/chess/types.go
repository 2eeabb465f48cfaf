// Package chess provides core chess types: squares, pieces, tiles and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"NoPiece", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the pieces a pawn may be promoted to.
var PromotionPieces = []Piece{Queen, Rook, Bishop, Knight}

// CanPromoteTo reports whether p is a legal promotion choice.
func (p Piece) CanPromoteTo() bool {
	switch p {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// Tile is the content of one board square. The zero Tile is an empty square.
type Tile struct {
	Piece  Piece
	Colour Colour
}

// IsEmpty returns true if no piece occupies the tile.
func (t Tile) IsEmpty() bool {
	return t.Piece == NoPiece
}

// String returns e.g. "White Knight", or "Empty".
func (t Tile) String() string {
	if t.IsEmpty() {
		return "Empty"
	}
	return t.Colour.String() + " " + t.Piece.String()
}

// Letter returns the FEN letter of the tile: uppercase for White, lowercase for Black.
func (t Tile) Letter() byte {
	letter := t.Piece.Letter()
	if t.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}

// MakeTile creates a coloured piece tile.
func MakeTile(colour Colour, piece Piece) Tile {
	return Tile{Piece: piece, Colour: colour}
}

// W creates a white piece.
func W(piece Piece) Tile {
	return MakeTile(White, piece)
}

// B creates a black piece.
func B(piece Piece) Tile {
	return MakeTile(Black, piece)
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of the given colour start on.
func PawnRank(colour Colour) int {
	return HomeRank(colour) + ColourOffset(colour)
}

// LastRank returns the rank index on which pawns of the given colour promote.
func LastRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}
