package replay

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

func testUnits() (*unit.Unit, *unit.Unit) {
	a := unit.New("a", "Alpha", 50)
	a.Pos = hexmap.Coord{Col: 2, Row: 3}
	a.Facing = 1
	b := unit.New("b", "Bravo", 55)
	b.Pos = hexmap.Coord{Col: 9, Row: 3}
	b.Facing = 4
	return a, b
}

func TestNewKeepsOnlyFeatureHexes(t *testing.T) {
	board := hexmap.NewBoard(4, 4)
	board.SetHex(hexmap.Hex{
		Coord:   hexmap.Coord{Col: 1, Row: 2},
		Terrain: []hexmap.TerrainFeature{{Type: hexmap.TerrainWoods, Level: 2}},
	})
	board.SetHex(hexmap.Hex{
		Coord:     hexmap.Coord{Col: 3, Row: 0},
		Elevation: 2,
	})

	a, b := testUnits()
	d := New(7, board, a, b)

	if d.Seed != 7 || d.BoardWidth != 4 || d.BoardHeight != 4 {
		t.Errorf("header = seed %d %dx%d, want seed 7 4x4", d.Seed, d.BoardWidth, d.BoardHeight)
	}
	if len(d.Hexes) != 2 {
		t.Fatalf("len(Hexes) = %d, want 2", len(d.Hexes))
	}
	for _, h := range d.Hexes {
		if h.Col == 1 && h.Row == 2 && h.Terrain != "woods:2" {
			t.Errorf("hex (1,2) terrain = %q, want woods:2", h.Terrain)
		}
		if h.Col == 3 && h.Row == 0 && h.Elevation != 2 {
			t.Errorf("hex (3,0) elevation = %d, want 2", h.Elevation)
		}
	}
}

func TestSnapshotCapturesState(t *testing.T) {
	a, _ := testUnits()
	a.Heat = 6
	a.Pilot.Wounds = 2
	a.Move = unit.MoveState{Mode: unit.MoveWalked, Hexes: 3}

	s := Snapshot(a)
	if s.Name != "Alpha" || s.Col != 2 || s.Row != 3 || s.Facing != 1 {
		t.Errorf("position = %s (%d,%d) facing %d, want Alpha (2,3) facing 1", s.Name, s.Col, s.Row, s.Facing)
	}
	if s.Heat != 6 || s.Wounds != 2 {
		t.Errorf("heat/wounds = %d/%d, want 6/2", s.Heat, s.Wounds)
	}
	if s.MoveMode != "walked" || s.HexesMoved != 3 {
		t.Errorf("move = %s/%d, want walked/3", s.MoveMode, s.HexesMoved)
	}
}

func TestTurnEventsCarryKind(t *testing.T) {
	a, b := testUnits()
	d := New(1, hexmap.NewBoard(4, 4), a, b)

	log := &events.Log{}
	log.Append(a.ID, b.ID, events.AttackResolved{WeaponKey: "Medium Laser", Roll: 8, Target: 7, Hit: true})
	d.AddTurn(1, a, b, log.Records())

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(out), `"kind":"attack.resolved"`) {
		t.Errorf("replay JSON missing event kind discriminator: %s", out)
	}
	if len(d.Turns) != 1 || d.Turns[0].Turn != 1 {
		t.Errorf("turns = %d, want one turn numbered 1", len(d.Turns))
	}
}
