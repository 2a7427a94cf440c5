package physical

import (
	"github.com/SwiggitySwerve/mekstation/internal/combat"
	"github.com/SwiggitySwerve/mekstation/internal/damage"
	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Piloting skill rolls and falls ─────────────────────────────────────────
// PSR resolution proper belongs to the movement and stability subsystem;
// these helpers let the skirmish runner consume queued psr.required events
// without reimplementing the damage chain.

// PSRTarget is the piloting target number including accumulated damage
// modifiers: +3 per gyro hit, +2 per destroyed hip, +1 per other destroyed
// leg actuator, plus the situation modifier carried by the queued event.
func PSRTarget(u *unit.Unit, situation int) int {
	t := u.Pilot.Piloting + situation + 3*u.GyroHits
	for _, loc := range []unit.Location{unit.LocLL, unit.LocRL} {
		legs := u.Legs[loc]
		if legs.Hip {
			t += 2
		}
		for _, hit := range []bool{legs.UpperLeg, legs.LowerLeg, legs.Foot} {
			if hit {
				t++
			}
		}
	}
	return t
}

// RollPSR makes one piloting skill roll against the computed target.
func RollPSR(roller dice.Roller, u *unit.Unit, situation int) (roll int, ok bool) {
	roll = dice.TwoD6(roller)
	return roll, roll >= PSRTarget(u, situation)
}

// FallDamage is ceil(weight/10) per level fallen plus one.
func FallDamage(tonnage, levels int) int {
	return ((tonnage + 9) / 10) * (levels + 1)
}

// ResolveFall drops a unit: it goes prone, takes fall damage in 5-point
// groups on a freshly rolled facing, and the pilot rolls to avoid a wound.
func (r *Resolver) ResolveFall(u *unit.Unit, levels int) {
	u.Prone = true

	// The unit lands on a random side; 1d6 picks the arc the damage
	// arrives through.
	arcs := [6]hexmap.Arc{
		hexmap.ArcFront, hexmap.ArcRight, hexmap.ArcRight,
		hexmap.ArcRear, hexmap.ArcLeft, hexmap.ArcLeft,
	}
	arc := arcs[dice.D6(r.Roller)-1]

	total := damage.HalveUnderwater(FallDamage(u.Tonnage, levels), r.WaterDepth)
	dmg := r.damageResolver(u.ID)
	for total > 0 && !u.Destroyed() {
		group := min(total, 5)
		loc := combat.RollWeaponLocation(r.Roller, arc)
		r.Log.Append(u.ID, u.ID, events.HitLocationDetermined{
			Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(),
		})
		dmg.Apply(u, loc.Location, group, damage.Options{Rear: loc.Rear})
		total -= group
	}
	if u.Destroyed() {
		return
	}

	// The pilot avoids injury on a successful piloting roll.
	if _, ok := RollPSR(r.Roller, u, 0); !ok {
		u.Pilot.Wounds++
		r.Log.Append(u.ID, u.ID, events.PilotHit{
			Wounds:              u.Pilot.Wounds,
			ConsciousnessTarget: 3 + u.Pilot.Wounds,
		})
		if u.Destroyed() {
			r.Log.Append(u.ID, u.ID, events.UnitDestroyed{Reason: "pilot killed"})
		}
	}
}
