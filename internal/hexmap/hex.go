// Package hexmap provides hex-grid geometry for the combat engine: offset
// and cube coordinates, facing, firing arcs, terrain and line of sight.
package hexmap

import "math"

// ─── Hex coordinates ────────────────────────────────────────────────────────
// Offset coordinates (col, row) with odd-column offset, converted to cube
// coordinates for distance and bearing calculations.

type Coord struct {
	Col, Row int // 1-indexed offset coords
}

type cube struct {
	q, r, s int
}

func toCube(h Coord) cube {
	q := h.Col - 1
	r := h.Row - 1
	x := q
	z := r - (q-(q&1))/2
	return cube{q: x, r: -x - z, s: z}
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	ac, bc := toCube(a), toCube(b)
	return (abs(ac.q-bc.q) + abs(ac.r-bc.r) + abs(ac.s-bc.s)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Neighbors returns the 6 adjacent hex coordinates.
// Facing 0-5: 0=N, 1=NE, 2=SE, 3=S, 4=SW, 5=NW (clockwise from top).
func Neighbors(h Coord) [6]Coord {
	col, row := h.Col, h.Row
	if col%2 == 1 {
		return [6]Coord{
			{col, row - 1},
			{col + 1, row},
			{col + 1, row + 1},
			{col, row + 1},
			{col - 1, row + 1},
			{col - 1, row},
		}
	}
	return [6]Coord{
		{col, row - 1},
		{col + 1, row - 1},
		{col + 1, row},
		{col, row + 1},
		{col - 1, row},
		{col - 1, row - 1},
	}
}

// Neighbor returns the adjacent hex in the given facing direction.
func Neighbor(h Coord, facing int) Coord {
	return Neighbors(h)[((facing%6)+6)%6]
}

// ─── Arcs ───────────────────────────────────────────────────────────────────

// Arc identifies which firing arc a position falls in relative to a facing.
type Arc int

const (
	ArcFront Arc = iota
	ArcLeft
	ArcRight
	ArcRear
)

func (a Arc) String() string {
	switch a {
	case ArcFront:
		return "front"
	case ArcLeft:
		return "left"
	case ArcRight:
		return "right"
	case ArcRear:
		return "rear"
	default:
		return "unknown"
	}
}

// BearingTo returns which of the 6 hex directions target is from source,
// using integer dot products against cube direction vectors.
func BearingTo(from, to Coord) int {
	if from == to {
		return 0
	}
	fc, tc := toCube(from), toCube(to)
	dq := tc.q - fc.q
	dr := tc.r - fc.r
	ds := tc.s - fc.s

	// 0(N): (0,+1,-1), 1(NE): (+1,0,-1), 2(SE): (+1,-1,0)
	// 3(S): (0,-1,+1), 4(SW): (-1,0,+1), 5(NW): (-1,+1,0)
	dirs := [6]cube{
		{0, 1, -1}, {1, 0, -1}, {1, -1, 0},
		{0, -1, 1}, {-1, 0, 1}, {-1, 1, 0},
	}

	best := 0
	bestDot := math.MinInt
	for i, d := range dirs {
		dot := dq*d.q + dr*d.r + ds*d.s
		if dot > bestDot {
			bestDot = dot
			best = i
		}
	}
	return best
}

// ArcOf returns which arc 'target' is in relative to 'pos' with the given
// facing. Front = facing ±1 hexside (3 hexsides), left/right/rear one each.
func ArcOf(pos Coord, facing int, target Coord) Arc {
	dir := BearingTo(pos, target)
	diff := ((dir-facing)%6 + 6) % 6
	switch diff {
	case 0, 1, 5:
		return ArcFront
	case 2:
		return ArcRight
	case 4:
		return ArcLeft
	default:
		return ArcRear
	}
}
