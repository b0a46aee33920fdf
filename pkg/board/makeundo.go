package board

// Move applies m to the position and returns the undo record needed to
// reverse it exactly. It assumes m is at least pseudolegal: a piece of the
// side to move sits on From, and castling/en passant flags are implied by
// geometry (king sliding two squares, pawn landing on the en passant
// target) rather than passed explicitly.
func (b *BoardState) Move(m Move) MoveInfo {
	moved := b.sq[m.From]
	captured := b.sq[m.To]
	capturedSq := m.To

	info := MoveInfo{
		Move:             m,
		MovedPiece:       moved,
		PrevCastling:     b.castling,
		PrevEnPassant:    b.epTarget,
		PrevEnPassantSet: b.epSet,
		PrevHalfmove:     b.halfmove,
		PrevInCheck:      b.checkCache,
		PrevInCheckSet:   b.checkCacheSet,
	}

	kind := moved.Kind()
	isPawn := kind == Pawn
	isEnPassant := isPawn && captured.IsEmpty() && b.epSet && m.To == b.epTarget && m.From.File() != m.To.File()
	isCastling := kind == King && m.IsCastling()

	if isEnPassant {
		capturedSq = NewSquare(m.To.File(), m.From.Rank())
		captured = b.sq[capturedSq]
		b.sq[capturedSq] = NoPiece
	}

	info.CapturedPiece = captured
	info.CapturedSq = capturedSq
	info.IsEnPassant = isEnPassant
	info.IsCastling = isCastling

	b.sq[m.From] = NoPiece
	if m.Promotion != NoPiece {
		b.sq[m.To] = MakePiece(moved.Color(), m.Promotion)
	} else {
		b.sq[m.To] = moved
	}

	if isCastling {
		rFrom, rTo := castlingRookSquares(m.From, m.To)
		b.sq[rTo] = b.sq[rFrom]
		b.sq[rFrom] = NoPiece
	}

	// En passant target is only live for the ply immediately after a double
	// pawn push.
	b.epSet = false
	if isPawn {
		d := int(m.To) - int(m.From)
		if d == 16 || d == -16 {
			b.epTarget = Square((int(m.From) + int(m.To)) / 2)
			b.epSet = true
		}
	}

	b.castling = b.castling.Clear(castlingRightsLostBy(m.From, m.To))

	if isPawn || !captured.IsEmpty() {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if b.side == Black {
		b.fullmove++
	}

	b.side = b.side.Opponent()
	b.checkCacheSet = false

	return info
}

// UndoMove reverses the effect of the Move call that produced info.
func (b *BoardState) UndoMove(info MoveInfo) {
	m := info.Move
	b.side = b.side.Opponent()

	b.sq[m.From] = info.MovedPiece
	b.sq[m.To] = NoPiece
	if info.IsEnPassant {
		b.sq[info.CapturedSq] = info.CapturedPiece
	} else {
		b.sq[m.To] = info.CapturedPiece
	}

	if info.IsCastling {
		rFrom, rTo := castlingRookSquares(m.From, m.To)
		b.sq[rFrom] = b.sq[rTo]
		b.sq[rTo] = NoPiece
	}

	b.castling = info.PrevCastling
	b.epTarget = info.PrevEnPassant
	b.epSet = info.PrevEnPassantSet
	b.halfmove = info.PrevHalfmove
	b.checkCache = info.PrevInCheck
	b.checkCacheSet = info.PrevInCheckSet

	if b.side == Black {
		b.fullmove--
	}
}

// castlingRookSquares returns the rook's origin and destination for a king
// move from kf to kt that is already known to be a castle.
func castlingRookSquares(kf, kt Square) (from, to Square) {
	rank := kf.Rank()
	if kt.File() == 6 { // king side
		return NewSquare(7, rank), NewSquare(5, rank)
	}
	return NewSquare(0, rank), NewSquare(3, rank) // queen side
}

// castlingRightsLostBy returns the rights that a move touching from/to
// squares permanently revokes: a king move drops both of its side's rights;
// a rook move or capture on its home square drops that one right.
func castlingRightsLostBy(from, to Square) Castling {
	var lost Castling
	switch from {
	case E1:
		lost |= WhiteKingSide | WhiteQueenSide
	case E8:
		lost |= BlackKingSide | BlackQueenSide
	}
	lost |= rookHomeRight(from) | rookHomeRight(to)
	return lost
}

func rookHomeRight(sq Square) Castling {
	switch sq {
	case H1:
		return WhiteKingSide
	case A1:
		return WhiteQueenSide
	case H8:
		return BlackKingSide
	case A8:
		return BlackQueenSide
	default:
		return NoCastlingRights
	}
}
