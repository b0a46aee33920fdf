package board

// PseudoLegalMoves returns every move for the side to move that obeys piece
// movement rules, without checking whether it leaves the mover's own king in
// check. LegalMoves filters this list down to the legal subset.
func (b *BoardState) PseudoLegalMoves() []Move {
	var moves []Move
	side := b.side
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		p := b.sq[sq]
		if !p.IsColor(side) {
			continue
		}
		switch p.Kind() {
		case Pawn:
			b.genPawn(sq, side, &moves)
		case Knight:
			b.genKnight(sq, side, &moves)
		case Bishop:
			b.genSlider(sq, side, &moves, 1, 3, 5, 7)
		case Rook:
			b.genSlider(sq, side, &moves, 0, 2, 4, 6)
		case Queen:
			b.genSlider(sq, side, &moves, 0, 1, 2, 3, 4, 5, 6, 7)
		case King:
			b.genKing(sq, side, &moves)
		}
	}
	return moves
}

// LegalMoves returns the subset of PseudoLegalMoves that does not leave the
// mover's own king in check.
func (b *BoardState) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !b.AtkExp(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, short-circuiting as soon as one is found. Cheaper than
// len(LegalMoves()) > 0 for check/stalemate detection.
func (b *BoardState) HasLegalMove() bool {
	for _, m := range b.PseudoLegalMoves() {
		if !b.AtkExp(m) {
			return true
		}
	}
	return false
}

// CheckOrStalemate classifies the position for the side to move: whether it
// is in check, and whether it has any legal reply. (inCheck, noMoves) of
// (true, true) is checkmate; (false, true) is stalemate.
func (b *BoardState) CheckOrStalemate() (inCheck bool, noMoves bool) {
	inCheck = b.InCheck(b.side)
	noMoves = !b.HasLegalMove()
	return
}

func (b *BoardState) genKnight(sq Square, side Color, moves *[]Move) {
	for _, d := range knightDest[sq] {
		if !b.sq[d].IsColor(side) {
			*moves = append(*moves, Move{From: sq, To: d})
		}
	}
}

func (b *BoardState) genSlider(sq Square, side Color, moves *[]Move, dirs ...int) {
	for _, dir := range dirs {
		steps := queenReach[sq][dir]
		addend := CardinalAddends[dir]
		cur := int(sq)
		for i := 0; i < steps; i++ {
			cur += addend
			occ := b.sq[cur]
			if occ.IsEmpty() {
				*moves = append(*moves, Move{From: sq, To: Square(cur)})
				continue
			}
			if !occ.IsColor(side) {
				*moves = append(*moves, Move{From: sq, To: Square(cur)})
			}
			break
		}
	}
}

func (b *BoardState) genKing(sq Square, side Color, moves *[]Move) {
	for dir := 0; dir < 8; dir++ {
		if kingReach[sq][dir] == 0 {
			continue
		}
		to := Square(int(sq) + CardinalAddends[dir])
		if !b.sq[to].IsColor(side) {
			*moves = append(*moves, Move{From: sq, To: to})
		}
	}
	b.genCastling(sq, side, moves)
}

func (b *BoardState) genCastling(kingSq Square, side Color, moves *[]Move) {
	rank := kingSq.Rank()
	opp := side.Opponent()

	if b.castling.Has(KingSide(side)) &&
		b.sq[NewSquare(5, rank)].IsEmpty() && b.sq[NewSquare(6, rank)].IsEmpty() &&
		!b.AttackedBy(NewSquare(4, rank), opp) &&
		!b.AttackedBy(NewSquare(5, rank), opp) &&
		!b.AttackedBy(NewSquare(6, rank), opp) {
		*moves = append(*moves, Move{From: kingSq, To: NewSquare(6, rank)})
	}
	if b.castling.Has(QueenSide(side)) &&
		b.sq[NewSquare(1, rank)].IsEmpty() && b.sq[NewSquare(2, rank)].IsEmpty() && b.sq[NewSquare(3, rank)].IsEmpty() &&
		!b.AttackedBy(NewSquare(4, rank), opp) &&
		!b.AttackedBy(NewSquare(3, rank), opp) &&
		!b.AttackedBy(NewSquare(2, rank), opp) {
		*moves = append(*moves, Move{From: kingSq, To: NewSquare(2, rank)})
	}
}

var promotionKinds = [4]Piece{Queen, Rook, Knight, Bishop}

func (b *BoardState) genPawn(sq Square, side Color, moves *[]Move) {
	forward := 1
	startRank := 1
	lastRank := 7
	if side == Black {
		forward = -1
		startRank = 6
		lastRank = 0
	}

	push := func(to Square) {
		if to.Rank() == lastRank {
			for _, k := range promotionKinds {
				*moves = append(*moves, Move{From: sq, To: to, Promotion: k})
			}
		} else {
			*moves = append(*moves, Move{From: sq, To: to})
		}
	}

	oneRank := sq.Rank() + forward
	if oneRank >= 0 && oneRank <= 7 {
		one := NewSquare(sq.File(), oneRank)
		if b.sq[one].IsEmpty() {
			push(one)
			if sq.Rank() == startRank {
				two := NewSquare(sq.File(), sq.Rank()+2*forward)
				if b.sq[two].IsEmpty() {
					push(two)
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		f := sq.File() + df
		if f < 0 || f > 7 || oneRank < 0 || oneRank > 7 {
			continue
		}
		to := NewSquare(f, oneRank)
		occ := b.sq[to]
		if !occ.IsEmpty() && !occ.IsColor(side) {
			push(to)
			continue
		}
		if ep, ok := b.EnPassant(); ok && to == ep {
			push(to)
		}
	}
}
