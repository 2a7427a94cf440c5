// Package combat turns a declared attack into hits: to-hit calculation,
// declaration validation, roll resolution with weapon-mode handling, and
// hit-location determination. Every entry point is pure over an injected
// dice.Roller; unit state is mutated only through the clone the caller
// passes in.
package combat

import (
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/environment"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── To-hit calculation ─────────────────────────────────────────────────────

// ToHitResult is the target number for one attack together with the
// ordered named contributions that produced it. A target above 12 means
// the shot is impossible; the number is still returned and the caller
// decides how to surface it.
type ToHitResult struct {
	AttackType string
	Mods       []environment.Modifier
	Target     int
}

// Impossible reports whether no roll can reach the target number.
func (t ToHitResult) Impossible() bool { return t.Target > 12 }

func (t *ToHitResult) add(name string, value int) {
	if value == 0 {
		return
	}
	t.Mods = append(t.Mods, environment.Modifier{Name: name, Value: value})
	t.Target += value
}

// AttackerMoveMod returns the to-hit penalty for the attacker's own
// movement this turn.
func AttackerMoveMod(m unit.MoveState) int {
	switch m.Mode {
	case unit.MoveWalked:
		return 1
	case unit.MoveRan:
		return 2
	case unit.MoveJumped:
		return 3
	default:
		return 0
	}
}

// TargetMovementMod derives the TMM from the target's movement: one point
// per started 5 hexes, +1 more for jumping, minimum +1 for any movement.
func TargetMovementMod(m unit.MoveState) int {
	moved := m.Hexes > 0 || m.Mode == unit.MoveJumped
	if !moved {
		return 0
	}
	tmm := (m.Hexes + 4) / 5
	if m.Mode == unit.MoveJumped {
		tmm++
	}
	if tmm < 1 {
		tmm = 1
	}
	return tmm
}

// WeaponToHit computes the target number for a ranged attack. The board is
// optional; without one, terrain and line-of-sight contributions are
// skipped. A target beyond the weapon's long range is a contract
// violation: declarations are validated before the dice come out.
func WeaponToHit(attacker, target *unit.Unit, w catalog.Weapon, board *hexmap.Board, env environment.Conditions) ToHitResult {
	res := ToHitResult{AttackType: "weapon"}
	res.add("gunnery", attacker.Pilot.Gunnery)

	dist := hexmap.Distance(attacker.Pos, target.Pos)
	rangeMod, ok := w.RangeBracketMod(dist)
	if !ok {
		panic(fmt.Sprintf("combat: %s fired beyond long range (%d hexes)", w.Key, dist))
	}
	res.add("range", rangeMod)
	res.add("minimum range", w.MinRangeMod(dist))
	res.add("weapon", w.ToHitMod)

	res.add("attacker movement", AttackerMoveMod(attacker.Move))
	res.add("target movement", TargetMovementMod(target.Move))
	res.add("heat", unit.HeatToHitMod(attacker.Heat))
	res.add("sensor damage", 2*attacker.SensorHits)

	if attacker.Prone {
		res.add("attacker prone", 2)
	}
	if target.Prone {
		if dist <= 1 {
			res.add("target prone, adjacent", -2)
		} else {
			res.add("target prone", 1)
		}
	}

	if board != nil {
		los := hexmap.CheckLOS(board, attacker.Pos, target.Pos)
		if !los.CanSee {
			// No line of sight is an impossible shot, not an error.
			res.add("no line of sight", 13)
			return res
		}
		res.add("intervening woods", los.WoodsMod)
		res.add("target cover", los.TargetCover)
		res.add("elevation", los.ElevationMod)
	}

	mods := environment.Resolve(env)
	for _, m := range mods.ToHit {
		res.add(m.Name, m.Value)
	}
	if w.Class == "missile" {
		for _, m := range mods.MissileToHit {
			res.add(m.Name, m.Value)
		}
	}

	// Semi-guided ordnance homes on a TAG designation, washing out the
	// usual evasion penalties.
	if w.SemiGuided && target.TaggedTurn {
		res.add("TAG designation", -TargetMovementMod(target.Move))
	}

	return res
}
