package board

// MoveInfo is the undo record produced by BoardState.Move. Applying UndoMove
// with the same MoveInfo restores the position exactly, including rights and
// counters that a bare piece-array diff cannot recover.
type MoveInfo struct {
	Move Move

	MovedPiece    Piece
	CapturedPiece Piece
	CapturedSq    Square // differs from Move.To only for en passant

	PrevCastling     Castling
	PrevEnPassant    Square
	PrevEnPassantSet bool
	PrevHalfmove     int
	PrevInCheck      bool
	PrevInCheckSet   bool

	IsEnPassant bool
	IsCastling  bool
}
