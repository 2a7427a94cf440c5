package combat

import (
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Hit location tables ────────────────────────────────────────────────────
// Direction-specific 2d6 tables for weapon fire, 1d6 tables for punches
// and kicks. Each table is a single lookup structure; a weapon-table roll
// of 2 additionally triggers a through-armor critical check.

// LocationResult is a resolved hit location.
type LocationResult struct {
	Roll     int
	Location unit.Location
	Rear     bool // strike rear armor at torso locations
	TAC      bool // through-armor critical triggered
}

var weaponLocationTables = map[hexmap.Arc][11]unit.Location{
	hexmap.ArcFront: {
		unit.LocCT, unit.LocRA, unit.LocRA, unit.LocRL, unit.LocRT,
		unit.LocCT, unit.LocLT, unit.LocLL, unit.LocLA, unit.LocLA, unit.LocHD,
	},
	hexmap.ArcLeft: {
		unit.LocLT, unit.LocLL, unit.LocLA, unit.LocLA, unit.LocLL,
		unit.LocLT, unit.LocCT, unit.LocRT, unit.LocRA, unit.LocRL, unit.LocHD,
	},
	hexmap.ArcRight: {
		unit.LocRT, unit.LocRL, unit.LocRA, unit.LocRA, unit.LocRL,
		unit.LocRT, unit.LocCT, unit.LocLT, unit.LocLA, unit.LocLL, unit.LocHD,
	},
	hexmap.ArcRear: {
		unit.LocCT, unit.LocRA, unit.LocRA, unit.LocRL, unit.LocRT,
		unit.LocCT, unit.LocLT, unit.LocLL, unit.LocLA, unit.LocLA, unit.LocHD,
	},
}

// RollWeaponLocation rolls 2d6 on the arc's hit-location table.
func RollWeaponLocation(r dice.Roller, arc hexmap.Arc) LocationResult {
	roll := dice.TwoD6(r)
	table, ok := weaponLocationTables[arc]
	if !ok {
		panic(fmt.Sprintf("combat: no hit-location table for arc %v", arc))
	}
	return LocationResult{
		Roll:     roll,
		Location: table[roll-2],
		Rear:     arc == hexmap.ArcRear,
		TAC:      roll == 2,
	}
}

var punchLocationTables = map[hexmap.Arc][6]unit.Location{
	hexmap.ArcFront: {unit.LocLA, unit.LocLT, unit.LocCT, unit.LocRT, unit.LocRA, unit.LocHD},
	hexmap.ArcLeft:  {unit.LocLT, unit.LocLT, unit.LocCT, unit.LocLA, unit.LocLA, unit.LocHD},
	hexmap.ArcRight: {unit.LocRT, unit.LocRT, unit.LocCT, unit.LocRA, unit.LocRA, unit.LocHD},
	hexmap.ArcRear:  {unit.LocLA, unit.LocLT, unit.LocCT, unit.LocRT, unit.LocRA, unit.LocHD},
}

// RollPunchLocation rolls 1d6 on the arc's punch table.
func RollPunchLocation(r dice.Roller, arc hexmap.Arc) LocationResult {
	roll := dice.D6(r)
	return LocationResult{
		Roll:     roll,
		Location: punchLocationTables[arc][roll-1],
		Rear:     arc == hexmap.ArcRear,
	}
}

// RollKickLocation rolls 1d6 on the kick table: legs only, the near leg
// from the sides.
func RollKickLocation(r dice.Roller, arc hexmap.Arc) LocationResult {
	roll := dice.D6(r)
	var loc unit.Location
	switch arc {
	case hexmap.ArcLeft:
		loc = unit.LocLL
	case hexmap.ArcRight:
		loc = unit.LocRL
	default:
		if roll <= 3 {
			loc = unit.LocRL
		} else {
			loc = unit.LocLL
		}
	}
	return LocationResult{Roll: roll, Location: loc, Rear: arc == hexmap.ArcRear}
}

// AttackArc computes which of the target's arcs the attacker fires into,
// from the attacker's position and the target's facing.
func AttackArc(attacker, target *unit.Unit) hexmap.Arc {
	return hexmap.ArcOf(target.Pos, target.Facing, attacker.Pos)
}
