// Package damage applies resolved damage to a unit through the armor →
// structure → transfer chain and runs critical-hit determination. Every
// entry point mutates only the clone it is given and emits an ordered
// DamageApplied event trail whose amounts sum exactly to the input damage
// (armor + structure + transferred + discarded).
package damage

import (
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// headDamageCap is the most a single hit may inflict on the head; any
// excess is discarded, never transferred.
const headDamageCap = 3

// psrDamageThreshold is the cumulative phase damage that queues a
// piloting-skill roll.
const psrDamageThreshold = 20

// Options controls one damage application.
type Options struct {
	Rear    bool // strike the rear armor of torso locations
	CapHead bool // apply the per-hit head damage cap
}

// Resolver applies damage and critical hits to a target unit and records
// the event trail. AttackerID attributes emitted events.
type Resolver struct {
	Log        *events.Log
	Roller     dice.Roller
	AttackerID string
}

// Apply drives amount damage into the target location and follows the
// transfer chain until the damage is exhausted or the unit is destroyed.
func (r *Resolver) Apply(u *unit.Unit, loc unit.Location, amount int, opts Options) {
	if amount < 0 {
		panic(fmt.Sprintf("damage: negative amount %d", amount))
	}
	if loc < 0 || loc >= unit.NumLocations {
		panic(fmt.Sprintf("damage: invalid location %d", int(loc)))
	}
	if amount == 0 {
		return
	}

	wasDestroyed := u.Destroyed()
	r.apply(u, loc, amount, opts)

	if !wasDestroyed && u.Destroyed() {
		r.Log.Append(r.AttackerID, u.ID, events.UnitDestroyed{Reason: destructionReason(u)})
	}
}

func (r *Resolver) apply(u *unit.Unit, loc unit.Location, amount int, opts Options) {
	// Damage aimed at an already-destroyed location rolls straight through
	// to the transfer destination.
	if u.LocationDestroyed(loc) {
		if next, ok := loc.Transfer(); ok {
			r.apply(u, next, amount, opts)
		}
		return
	}

	ev := events.DamageApplied{
		Location: loc.String(),
		Rear:     opts.Rear && loc.IsTorso(),
		Amount:   amount,
	}

	remaining := amount

	if loc == unit.LocHD && opts.CapHead && remaining > headDamageCap {
		ev.Discarded = remaining - headDamageCap
		remaining = headDamageCap
	}

	// Armor absorbs first.
	armor := u.ArmorAt(loc, ev.Rear)
	if armor > 0 {
		absorbed := min(armor, remaining)
		u.SetArmorAt(loc, ev.Rear, armor-absorbed)
		ev.ToArmor = absorbed
		remaining -= absorbed
	}

	structHit := false
	if remaining > 0 {
		// Spillover into structure.
		if u.Structure[loc] > remaining {
			u.Structure[loc] -= remaining
			ev.ToStructure = remaining
			remaining = 0
			structHit = true
		} else {
			ev.ToStructure = u.Structure[loc]
			remaining -= u.Structure[loc]
			structHit = ev.ToStructure > 0
			u.DestroyLocation(loc)
			ev.LocationDestroyed = true
		}
	}

	// Head structure damage wounds the pilot; the consciousness roll itself
	// belongs to the pilot-state collaborator.
	if loc == unit.LocHD && ev.ToStructure > 0 {
		u.Pilot.Wounds++
		r.Log.Append(r.AttackerID, u.ID, events.PilotHit{
			Wounds:              u.Pilot.Wounds,
			ConsciousnessTarget: 3 + u.Pilot.Wounds,
		})
	}

	// Excess transfers inward, except from the head, where the cap already
	// discarded it, and from the center torso, whose destruction ends the
	// unit.
	if remaining > 0 && ev.LocationDestroyed {
		if next, ok := loc.Transfer(); ok {
			ev.Transferred = remaining
			ev.TransferTo = next.String()
		} else {
			ev.Discarded += remaining
			remaining = 0
		}
	}

	r.Log.Append(r.AttackerID, u.ID, ev)

	applied := ev.ToArmor + ev.ToStructure
	r.accumulatePhaseDamage(u, applied)

	// Side-torso destruction cascades to the attached arm regardless of any
	// further damage.
	if ev.LocationDestroyed {
		if arm, ok := loc.AttachedArm(); ok && !u.LocationDestroyed(arm) {
			u.DestroyLocation(arm)
			r.Log.Append(r.AttackerID, u.ID, events.DamageApplied{
				Location:          arm.String(),
				LocationDestroyed: true,
			})
		}
	}

	if structHit && !ev.LocationDestroyed {
		r.CheckCritical(u, loc)
	}

	if ev.Transferred > 0 {
		if next, ok := loc.Transfer(); ok {
			r.apply(u, next, ev.Transferred, opts)
		}
	}
}

// accumulatePhaseDamage tracks cumulative damage in the phase and queues a
// PSR the moment the threshold is crossed.
func (r *Resolver) accumulatePhaseDamage(u *unit.Unit, applied int) {
	before := u.PhaseDamage
	u.PhaseDamage += applied
	if before < psrDamageThreshold && u.PhaseDamage >= psrDamageThreshold {
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{
			Reason: fmt.Sprintf("%d damage taken this phase", u.PhaseDamage),
		})
	}
}

// HalveUnderwater halves physical-attack damage (round down) for targets
// standing in water of depth 2 or more.
func HalveUnderwater(amount, waterDepth int) int {
	if waterDepth >= 2 {
		return amount / 2
	}
	return amount
}

func destructionReason(u *unit.Unit) string {
	switch {
	case u.Pilot.Dead():
		return "pilot killed"
	case u.CockpitDestroyed:
		return "cockpit destroyed"
	case u.EngineHits >= 3:
		return "engine destroyed"
	case u.Structure[unit.LocHD] <= 0:
		return "head destroyed"
	case u.Structure[unit.LocCT] <= 0:
		return "center torso destroyed"
	default:
		return "engine torso loss"
	}
}
