package board

// IsCardinal reports whether a and b lie on a common rank, file, or diagonal
// (share a line an 8-direction slider could travel).
func IsCardinal(a, b Square) bool {
	df := a.File() - b.File()
	dr := a.Rank() - b.Rank()
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == 0 || dr == 0 || df == dr
}

// dirFirst walks from sq in direction dir and returns the first occupied
// square and its occupant, or ok=false if the edge of the board is reached
// first.
func (b *BoardState) dirFirst(sq Square, dir int) (Square, Piece, bool) {
	steps := queenReach[sq][dir]
	addend := CardinalAddends[dir]
	cur := int(sq)
	for i := 0; i < steps; i++ {
		cur += addend
		if p := b.sq[cur]; !p.IsEmpty() {
			return Square(cur), p, true
		}
	}
	return 0, NoPiece, false
}

var pawnAttackDF = [2]int{-1, 1}

// AttackedBy reports whether sq is attacked by any piece of color by in the
// current position.
func (b *BoardState) AttackedBy(sq Square, by Color) bool {
	// Pawns: a pawn of color `by` attacks sq if it sits one rank behind sq
	// (from by's perspective) on an adjacent file.
	pr := sq.Rank()
	var srcRank int
	if by == White {
		srcRank = pr - 1
	} else {
		srcRank = pr + 1
	}
	if srcRank >= 0 && srcRank <= 7 {
		for _, df := range pawnAttackDF {
			f := sq.File() + df
			if f < 0 || f > 7 {
				continue
			}
			if b.sq[NewSquare(f, srcRank)] == MakePiece(by, Pawn) {
				return true
			}
		}
	}

	// Knights.
	want := MakePiece(by, Knight)
	for _, d := range knightDest[sq] {
		if b.sq[d] == want {
			return true
		}
	}

	// King.
	wantKing := MakePiece(by, King)
	for dir := 0; dir < 8; dir++ {
		if kingReach[sq][dir] == 0 {
			continue
		}
		if b.sq[int(sq)+CardinalAddends[dir]] == wantKing {
			return true
		}
	}

	// Sliders: rook/queen on straight lines, bishop/queen on diagonals.
	for dir := 0; dir < 8; dir++ {
		occ, p, ok := b.dirFirst(sq, dir)
		_ = occ
		if !ok || !p.IsColor(by) {
			continue
		}
		kind := p.Kind()
		if dir%2 == 0 { // straight
			if kind == Rook || kind == Queen {
				return true
			}
		} else { // diagonal
			if kind == Bishop || kind == Queen {
				return true
			}
		}
	}

	return false
}

// InCheck reports whether c's king is currently attacked. Memoized for the
// side to move, since legality filtering probes it repeatedly per ply.
func (b *BoardState) InCheck(c Color) bool {
	if c == b.side && b.checkCacheSet {
		return b.checkCache
	}
	result := b.AttackedBy(b.KingSquare(c), c.Opponent())
	if c == b.side {
		b.checkCache = result
		b.checkCacheSet = true
	}
	return result
}

// Exposes reports whether king is attacked by color by once sq is vacated.
// It returns false when sq and king share no rank, file, or diagonal;
// otherwise any attack on king counts, including one that does not run
// through sq. Used to detect absolute pins without the cost of a full
// hypothetical move.
func (b *BoardState) Exposes(sq Square, king Square, by Color) bool {
	if !IsCardinal(sq, king) {
		return false
	}
	saved := b.sq[sq]
	b.sq[sq] = NoPiece
	result := b.AttackedBy(king, by)
	b.sq[sq] = saved
	return result
}

// AtkExp reports whether making m would leave the mover's own king in check
// ("king safemove" check). It applies m hypothetically via Move/UndoMove,
// which correctly accounts for castling and en passant without duplicating
// their special-case logic here.
func (b *BoardState) AtkExp(m Move) bool {
	mover := b.side
	info := b.Move(m)
	inCheck := b.InCheck(mover)
	b.UndoMove(info)
	return inCheck
}
