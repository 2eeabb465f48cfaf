package chess

// CastlingRights records which castling options remain available.
// A right, once cleared, is never granted again during a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set of rights at the start of a standard game.
var AllCastlingRights = CastlingRights{
	WhiteKingside:  true,
	WhiteQueenside: true,
	BlackKingside:  true,
	BlackQueenside: true,
}

// Kingside reports the king-side right of colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queen-side right of colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// Any returns true if any right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// ClearColour removes both rights of colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// ClearRookSquare removes the right tied to a rook starting on sq, if any.
func (c *CastlingRights) ClearRookSquare(sq Square) {
	switch {
	case sq.Rank() == HomeRank(White) && sq.File() == KingsideRookFile:
		c.WhiteKingside = false
	case sq.Rank() == HomeRank(White) && sq.File() == QueensideRookFile:
		c.WhiteQueenside = false
	case sq.Rank() == HomeRank(Black) && sq.File() == KingsideRookFile:
		c.BlackKingside = false
	case sq.Rank() == HomeRank(Black) && sq.File() == QueensideRookFile:
		c.BlackQueenside = false
	}
}

// Home files of the castling pieces.
const (
	KingFile          = 4
	KingsideRookFile  = 7
	QueensideRookFile = 0
)

// Setup is a complete position description: everything needed to start a
// game from an arbitrary position. It is what a FEN parser produces.
type Setup struct {
	Board     *Board
	ToMove    Colour
	Castling  CastlingRights
	EnPassant *Square // nil when no en passant capture is possible

	// Carried through for position-description round trips.
	HalfmoveClock uint
	MoveNumber    uint
}

// InitialSetup returns the standard starting position.
func InitialSetup() Setup {
	return Setup{
		Board:      NewInitialBoard(),
		ToMove:     White,
		Castling:   AllCastlingRights,
		MoveNumber: 1,
	}
}
