package hexmap

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// ─── Terrain ────────────────────────────────────────────────────────────────

type TerrainType int

const (
	TerrainWoods TerrainType = iota // level 1=light, 2=heavy
	TerrainWater                    // level = depth
	TerrainRough
	TerrainPavement
	TerrainRoad
	TerrainBuilding
	TerrainSand
	TerrainSwamp
	TerrainMud
)

type TerrainFeature struct {
	Type  TerrainType
	Level int
}

type Hex struct {
	Coord     Coord
	Elevation int
	Terrain   []TerrainFeature
}

func (h *Hex) HasTerrain(t TerrainType) (bool, int) {
	for _, f := range h.Terrain {
		if f.Type == t {
			return true, f.Level
		}
	}
	return false, 0
}

// WaterDepth returns the water depth at this hex, 0 if dry.
func (h *Hex) WaterDepth() int {
	if ok, lvl := h.HasTerrain(TerrainWater); ok {
		return lvl
	}
	return 0
}

// ─── Board ──────────────────────────────────────────────────────────────────

type Board struct {
	Width, Height int
	grid          []Hex // flat grid: (col-1)*Height + (row-1)
}

func NewBoard(w, h int) *Board {
	b := &Board{Width: w, Height: h, grid: make([]Hex, w*h)}
	for col := 1; col <= w; col++ {
		for row := 1; row <= h; row++ {
			b.grid[(col-1)*h+(row-1)] = Hex{Coord: Coord{Col: col, Row: row}}
		}
	}
	return b
}

func (b *Board) InBounds(h Coord) bool {
	return h.Col >= 1 && h.Col <= b.Width && h.Row >= 1 && h.Row <= b.Height
}

func (b *Board) At(h Coord) *Hex {
	if !b.InBounds(h) {
		return nil
	}
	return &b.grid[(h.Col-1)*b.Height+(h.Row-1)]
}

// Hexes returns every hex on the board in column-major order.
func (b *Board) Hexes() []Hex {
	out := make([]Hex, len(b.grid))
	copy(out, b.grid)
	return out
}

// SetHex replaces the hex at the given coordinate. Out-of-bounds coords are
// ignored.
func (b *Board) SetHex(h Hex) {
	if !b.InBounds(h.Coord) {
		return
	}
	b.grid[(h.Coord.Col-1)*b.Height+(h.Coord.Row-1)] = h
}

// ─── Board file parser ──────────────────────────────────────────────────────
// Parses the MegaMek .board format: "size W H" then "hex XXYY elev "terrain"".

func ParseBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var board *Board
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "end" {
			continue
		}

		if strings.HasPrefix(line, "size ") {
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				w, _ := strconv.Atoi(parts[1])
				h, _ := strconv.Atoi(parts[2])
				board = NewBoard(w, h)
			}
			continue
		}

		if strings.HasPrefix(line, "hex ") && board != nil {
			parseHexLine(board, line)
		}
	}
	return board, scanner.Err()
}

func parseHexLine(board *Board, line string) {
	// Format: hex XXYY elevation "terrain;terrain" "theme"
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return
	}

	coord := parts[1]
	if len(coord) != 4 {
		return
	}
	col, _ := strconv.Atoi(coord[:2])
	row, _ := strconv.Atoi(coord[2:])
	elev, _ := strconv.Atoi(parts[2])

	hex := Hex{
		Coord:     Coord{Col: col, Row: row},
		Elevation: elev,
	}

	if len(parts) >= 4 {
		terrainStr := strings.Trim(parts[3], "\"")
		for _, feat := range strings.Split(terrainStr, ";") {
			feat = strings.TrimSpace(feat)
			if feat == "" {
				continue
			}
			if tf := parseTerrainFeature(feat); tf != nil {
				hex.Terrain = append(hex.Terrain, *tf)
			}
		}
	}

	board.SetHex(hex)
}

func parseTerrainFeature(s string) *TerrainFeature {
	// Format: "type:level:extra" or "type:level"
	parts := strings.Split(s, ":")
	if len(parts) < 1 {
		return nil
	}

	name := strings.ToLower(parts[0])
	level := 1
	if len(parts) >= 2 {
		level, _ = strconv.Atoi(parts[1])
	}

	switch name {
	case "woods":
		return &TerrainFeature{Type: TerrainWoods, Level: level}
	case "water":
		return &TerrainFeature{Type: TerrainWater, Level: level}
	case "rough":
		return &TerrainFeature{Type: TerrainRough, Level: level}
	case "pavement":
		return &TerrainFeature{Type: TerrainPavement, Level: level}
	case "road":
		return &TerrainFeature{Type: TerrainRoad, Level: level}
	case "building":
		return &TerrainFeature{Type: TerrainBuilding, Level: level}
	case "sand":
		return &TerrainFeature{Type: TerrainSand, Level: level}
	case "swamp":
		return &TerrainFeature{Type: TerrainSwamp, Level: level}
	case "mud":
		return &TerrainFeature{Type: TerrainMud, Level: level}
	default:
		// ground_fluff, foliage_elev, bridge, etc. are cosmetic; skip
		return nil
	}
}
