// Package replay builds the JSON record a skirmish emits: a board
// snapshot, per-turn unit states and the full event trail. Identical
// seeds produce byte-identical replays.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Replay data structures ─────────────────────────────────────────────────

type Hex struct {
	Col       int    `json:"col"`
	Row       int    `json:"row"`
	Elevation int    `json:"elevation,omitempty"`
	Terrain   string `json:"terrain,omitempty"`
}

type UnitSnapshot struct {
	Name       string `json:"name"`
	Col        int    `json:"col"`
	Row        int    `json:"row"`
	Facing     int    `json:"facing"`
	Twist      int    `json:"twist,omitempty"`
	Heat       int    `json:"heat"`
	Armor      [8]int `json:"armor"`
	RearArmor  [3]int `json:"rearArmor"`
	Structure  [8]int `json:"structure"`
	Prone      bool   `json:"prone,omitempty"`
	Destroyed  bool   `json:"destroyed,omitempty"`
	EngineHits int    `json:"engineHits,omitempty"`
	GyroHits   int    `json:"gyroHits,omitempty"`
	Wounds     int    `json:"wounds,omitempty"`
	WalkMP     int    `json:"walkMP"`
	RunMP      int    `json:"runMP"`
	JumpMP     int    `json:"jumpMP,omitempty"`
	MoveMode   string `json:"moveMode"`
	HexesMoved int    `json:"hexesMoved"`
}

type Turn struct {
	Turn     int             `json:"turn"`
	Attacker UnitSnapshot    `json:"attacker"`
	Defender UnitSnapshot    `json:"defender"`
	Events   []events.Record `json:"events"`
}

type Data struct {
	Seed         uint64 `json:"seed"`
	AttackerName string `json:"attackerName"`
	DefenderName string `json:"defenderName"`
	BoardWidth   int    `json:"boardWidth"`
	BoardHeight  int    `json:"boardHeight"`
	Hexes        []Hex  `json:"hexes,omitempty"`
	Turns        []Turn `json:"turns"`
	Result       string `json:"result"`
}

// ─── Snapshot helpers ───────────────────────────────────────────────────────

var terrainNames = map[hexmap.TerrainType]string{
	hexmap.TerrainWoods:    "woods",
	hexmap.TerrainWater:    "water",
	hexmap.TerrainRough:    "rough",
	hexmap.TerrainPavement: "pavement",
	hexmap.TerrainRoad:     "road",
	hexmap.TerrainBuilding: "building",
	hexmap.TerrainSand:     "sand",
	hexmap.TerrainSwamp:    "swamp",
	hexmap.TerrainMud:      "mud",
}

// Snapshot captures a unit's visible state at a point in time.
func Snapshot(u *unit.Unit) UnitSnapshot {
	return UnitSnapshot{
		Name:       u.Name,
		Col:        u.Pos.Col,
		Row:        u.Pos.Row,
		Facing:     u.Facing,
		Twist:      u.TorsoTwist,
		Heat:       u.Heat,
		Armor:      u.Armor,
		RearArmor:  u.RearArmor,
		Structure:  u.Structure,
		Prone:      u.Prone,
		Destroyed:  u.Destroyed(),
		EngineHits: u.EngineHits,
		GyroHits:   u.GyroHits,
		Wounds:     u.Pilot.Wounds,
		WalkMP:     u.EffectiveWalkMP(),
		RunMP:      u.EffectiveRunMP(),
		JumpMP:     u.JumpMP,
		MoveMode:   u.Move.Mode.String(),
		HexesMoved: u.Move.Hexes,
	}
}

// New starts a replay for a board and two named units. Featureless hexes
// are dropped to keep the output small.
func New(seed uint64, board *hexmap.Board, attacker, defender *unit.Unit) *Data {
	d := &Data{
		Seed:         seed,
		AttackerName: attacker.Name,
		DefenderName: defender.Name,
		BoardWidth:   board.Width,
		BoardHeight:  board.Height,
	}
	for _, h := range board.Hexes() {
		if h.Elevation == 0 && len(h.Terrain) == 0 {
			continue
		}
		rh := Hex{Col: h.Coord.Col, Row: h.Coord.Row, Elevation: h.Elevation}
		for _, f := range h.Terrain {
			if rh.Terrain != "" {
				rh.Terrain += ","
			}
			rh.Terrain += fmt.Sprintf("%s:%d", terrainNames[f.Type], f.Level)
		}
		d.Hexes = append(d.Hexes, rh)
	}
	return d
}

// AddTurn appends one turn's snapshots and its slice of the event trail.
func (d *Data) AddTurn(n int, attacker, defender *unit.Unit, evs []events.Record) {
	d.Turns = append(d.Turns, Turn{
		Turn:     n,
		Attacker: Snapshot(attacker),
		Defender: Snapshot(defender),
		Events:   evs,
	})
}

// WriteFile writes the replay as indented JSON.
func (d *Data) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal replay: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write replay: %w", err)
	}
	return nil
}
