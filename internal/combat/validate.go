package combat

import (
	"errors"
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Declaration validation ─────────────────────────────────────────────────
// Rejections are expected, user-facing outcomes returned as sentinel
// errors; the caller decides whether to re-prompt. They are never retried
// and never escalate to panics.

var (
	ErrOutOfRange      = errors.New("target beyond weapon maximum range")
	ErrWrongArc        = errors.New("target outside weapon firing arc")
	ErrNoAmmo          = errors.New("no ammunition remaining")
	ErrWeaponDestroyed = errors.New("weapon destroyed")
	ErrWeaponJammed    = errors.New("weapon jammed")
)

// Declaration is one declared ranged attack. It is created at declaration
// time, validated once, consumed by resolution and never mutated.
type Declaration struct {
	AttackerID string
	TargetID   string
	WeaponID   string
	Shots      int  // rotary only: 1-6 independent shots
	ClusterOn  bool // LB-X only: fire the cluster round
}

// Validate checks a declaration against the attacker's current state and
// the target's position. It has no side effects; Declare applies them.
func Validate(d Declaration, attacker, target *unit.Unit, w catalog.Weapon) error {
	mount := attacker.WeaponByID(d.WeaponID)
	if mount.Destroyed {
		return fmt.Errorf("%s: %w", w.Key, ErrWeaponDestroyed)
	}
	if mount.Jammed {
		return fmt.Errorf("%s: %w", w.Key, ErrWeaponJammed)
	}

	dist := hexmap.Distance(attacker.Pos, target.Pos)
	if dist > w.LongRange {
		return fmt.Errorf("%s at %d hexes: %w", w.Key, dist, ErrOutOfRange)
	}

	if arc := firingArc(attacker, mount.Location, target.Pos); !arc {
		return fmt.Errorf("%s: %w", w.Key, ErrWrongArc)
	}

	if w.NeedsAmmo() {
		if attacker.Ammo[w.AmmoKey] < shotsDeclared(w, d) {
			return fmt.Errorf("%s: %w", w.Key, ErrNoAmmo)
		}
	}
	return nil
}

// Declare validates and, on acceptance, applies the declaration side
// effects: ammo is spent and the weapon's heat is recorded against the
// attacker for this phase. Damage is not applied here.
func Declare(log *events.Log, d Declaration, attacker, target *unit.Unit, w catalog.Weapon) error {
	if err := Validate(d, attacker, target, w); err != nil {
		return err
	}

	shots := shotsDeclared(w, d)
	heat := w.Heat
	switch w.Mode {
	case catalog.ModeUltra:
		heat = w.Heat * 2
	case catalog.ModeRotary:
		heat = w.Heat * d.Shots
	}

	if w.NeedsAmmo() {
		attacker.Ammo[w.AmmoKey] -= shots
	}
	attacker.Heat += heat
	mount := attacker.WeaponByID(d.WeaponID)
	mount.Fired = true
	if mount.Location.IsArm() {
		attacker.LimbUsed[mount.Location] = true
	}

	log.Append(attacker.ID, target.ID, events.AttackDeclared{
		WeaponKey:  w.Key,
		AmmoSpent:  shots,
		HeatLogged: heat,
		Shots:      d.Shots,
	})
	return nil
}

// shotsDeclared is the ammo cost of the declaration. Rotary shot counts
// outside 1-6 are a contract violation.
func shotsDeclared(w catalog.Weapon, d Declaration) int {
	switch w.Mode {
	case catalog.ModeUltra:
		return 2
	case catalog.ModeRotary:
		if d.Shots < 1 || d.Shots > 6 {
			panic(fmt.Sprintf("combat: rotary declaration of %d shots", d.Shots))
		}
		return d.Shots
	default:
		if !w.NeedsAmmo() {
			return 0
		}
		return 1
	}
}

// firingArc reports whether a target position is inside the arc a weapon
// in the given location can reach. Torso twist rotates every arc; arm
// mounts additionally sweep their own side.
func firingArc(attacker *unit.Unit, loc unit.Location, target hexmap.Coord) bool {
	facing := (attacker.Facing + attacker.TorsoTwist + 6) % 6
	arc := hexmap.ArcOf(attacker.Pos, facing, target)
	switch arc {
	case hexmap.ArcFront:
		return true
	case hexmap.ArcLeft:
		return loc == unit.LocLA
	case hexmap.ArcRight:
		return loc == unit.LocRA
	default:
		return false
	}
}
