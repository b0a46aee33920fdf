package board

// Direction indices, in fixed order: N, NW, W, SW, S, SE, E, NE.
const (
	DirN = iota
	DirNW
	DirW
	DirSW
	DirS
	DirSE
	DirE
	DirNE
)

// CardinalAddends are the square-index deltas for each direction in DirN..DirNE order.
var CardinalAddends = [8]int{+8, +7, -1, -9, -8, -7, +1, +9}

var dirDF = [8]int{0, -1, -1, -1, 0, 1, 1, 1}
var dirDR = [8]int{1, 1, 0, -1, -1, -1, 0, 1}

// reach tables: number of steps a slider may travel from a square in a
// direction before leaving the board. 64 squares x 8 directions.
var (
	queenReach  [64][8]int
	rookReach   [64][8]int
	bishopReach [64][8]int
	kingReach   [64][8]int
)

// knightDest[sq] lists the legal knight destinations from sq.
var knightDest [64][]Square

func init() {
	for sq := 0; sq < 64; sq++ {
		f0, r0 := sq%8, sq/8
		for d := 0; d < 8; d++ {
			steps := 0
			f, r := f0, r0
			for {
				f += dirDF[d]
				r += dirDR[d]
				if f < 0 || f > 7 || r < 0 || r > 7 {
					break
				}
				steps++
			}
			queenReach[sq][d] = steps
			if d%2 == 0 {
				rookReach[sq][d] = steps
			}
			if d%2 == 1 {
				bishopReach[sq][d] = steps
			}
			if steps > 1 {
				steps = 1
			}
			kingReach[sq][d] = steps
		}
	}

	knightOffsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for sq := 0; sq < 64; sq++ {
		f0, r0 := sq%8, sq/8
		var dst []Square
		for _, o := range knightOffsets {
			f, r := f0+o[0], r0+o[1]
			if f < 0 || f > 7 || r < 0 || r > 7 {
				continue
			}
			dst = append(dst, NewSquare(f, r))
		}
		knightDest[sq] = dst
	}
}
