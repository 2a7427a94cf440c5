package hexmap

import "math"

// ─── Line of sight ──────────────────────────────────────────────────────────
// LOS is traced from hex center to hex center; intervening hexes contribute
// woods modifiers or block the line outright.

// LOSResult contains the result of a line-of-sight check.
type LOSResult struct {
	CanSee       bool
	WoodsMod     int // +1 per intervening light woods, +2 per heavy
	TargetCover  int // +1 target in light woods, +2 heavy (partial cover)
	ElevationMod int // -1 attacker higher, +1 attacker lower
}

// CheckLOS determines line of sight between two hexes on a board.
func CheckLOS(board *Board, from, to Coord) LOSResult {
	result := LOSResult{CanSee: true}

	fromHex := board.At(from)
	toHex := board.At(to)
	if fromHex == nil || toHex == nil {
		result.CanSee = false
		return result
	}

	// Units stand one level above their hex floor.
	fromLevel := fromHex.Elevation + 1
	toLevel := toHex.Elevation + 1

	if fromHex.Elevation > toHex.Elevation {
		result.ElevationMod = -1
	} else if fromHex.Elevation < toHex.Elevation {
		result.ElevationMod = 1
	}

	if hasWoods, level := toHex.HasTerrain(TerrainWoods); hasWoods {
		result.TargetCover = level
	}

	woodsCount := 0
	for _, h := range Line(from, to) {
		hex := board.At(h)
		if hex == nil {
			continue
		}

		interLevel := hex.Elevation
		if hasWoods, _ := hex.HasTerrain(TerrainWoods); hasWoods {
			interLevel += 2 // woods add 2 levels of height
		}
		if hasBuilding, level := hex.HasTerrain(TerrainBuilding); hasBuilding {
			interLevel += level
		}

		if interLevel > fromLevel && interLevel > toLevel {
			result.CanSee = false
			return result
		}

		if hasWoods, level := hex.HasTerrain(TerrainWoods); hasWoods {
			if hex.Elevation >= min(fromHex.Elevation, toHex.Elevation) {
				woodsCount++
				if level >= 2 {
					woodsCount++ // heavy woods count as 2
				}
			}
		}

		if hasBuilding, level := hex.HasTerrain(TerrainBuilding); hasBuilding && level >= 3 {
			if hex.Elevation >= min(fromHex.Elevation, toHex.Elevation) {
				result.CanSee = false
				return result
			}
		}
	}

	// 2+ woods levels along the line block LOS entirely.
	if woodsCount >= 2 {
		result.CanSee = false
		return result
	}

	result.WoodsMod = woodsCount
	return result
}

// Line returns the hexes along a line from a to b, exclusive of endpoints.
func Line(a, b Coord) []Coord {
	dist := Distance(a, b)
	if dist <= 1 {
		return nil
	}

	ac, bc := toCube(a), toCube(b)
	var result []Coord
	for i := 1; i < dist; i++ {
		t := float64(i) / float64(dist)
		q := lerp(float64(ac.q), float64(bc.q), t)
		r := lerp(float64(ac.r), float64(bc.r), t)
		s := lerp(float64(ac.s), float64(bc.s), t)
		result = append(result, fromCube(cubeRound(q, r, s)))
	}
	return result
}

func fromCube(c cube) Coord {
	col := c.q
	row := c.s + (c.q-(c.q&1))/2
	return Coord{Col: col + 1, Row: row + 1}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func cubeRound(q, r, s float64) cube {
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}

	return cube{q: int(rq), r: int(rr), s: int(rs)}
}
