package damage

import (
	"strings"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// CheckCritical runs critical-hit determination for a location that took
// structure damage: 2d6, 8-9 one slot, 10-11 two, 12 three. A 12 against a
// limb blows the limb off; against the head it destroys the cockpit.
func (r *Resolver) CheckCritical(u *unit.Unit, loc unit.Location) {
	roll := dice.TwoD6(r.Roller)
	ev := events.CriticalHitResolved{Location: loc.String(), Roll: roll}

	numCrits := 0
	switch {
	case roll >= 12:
		if loc == unit.LocHD {
			u.CockpitDestroyed = true
			ev.SlotsDestroyed = append(ev.SlotsDestroyed, "Cockpit")
			r.Log.Append(r.AttackerID, u.ID, ev)
			return
		}
		if loc.IsLimb() {
			u.DestroyLocation(loc)
			ev.LimbBlownOff = true
			r.Log.Append(r.AttackerID, u.ID, ev)
			return
		}
		numCrits = 3
	case roll >= 10:
		numCrits = 2
	case roll >= 8:
		numCrits = 1
	default:
		r.Log.Append(r.AttackerID, u.ID, ev)
		return
	}

	for i := 0; i < numCrits; i++ {
		slot, exploded := r.destroySlot(u, loc)
		if slot != "" {
			ev.SlotsDestroyed = append(ev.SlotsDestroyed, slot)
		}
		if exploded {
			ev.AmmoExplosion = true
		}
	}
	r.Log.Append(r.AttackerID, u.ID, ev)
}

// ForceCritical runs a through-armor critical check without requiring
// structure damage, used for TAC hit-location rolls.
func (r *Resolver) ForceCritical(u *unit.Unit, loc unit.Location) {
	if u.LocationDestroyed(loc) {
		return
	}
	wasDestroyed := u.Destroyed()
	r.CheckCritical(u, loc)
	if !wasDestroyed && u.Destroyed() {
		r.Log.Append(r.AttackerID, u.ID, events.UnitDestroyed{Reason: destructionReason(u)})
	}
}

// destroySlot picks one occupied critical slot at random and applies its
// destruction effect. Returns the slot name and whether it set off an ammo
// explosion.
func (r *Resolver) destroySlot(u *unit.Unit, loc unit.Location) (string, bool) {
	slots := u.Slots[loc]
	var valid []int
	for i, s := range slots {
		if s != "" && s != "-Empty-" && !strings.HasPrefix(s, "destroyed:") {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return "", false
	}

	idx := valid[r.Roller.Roll(len(valid))-1]
	name := slots[idx]
	u.Slots[loc][idx] = "destroyed:" + name
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "engine"):
		u.EngineHits++
	case strings.Contains(lower, "gyro"):
		u.GyroHits++
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{Reason: "gyro hit", Modifier: 3})
	case strings.Contains(lower, "cockpit"):
		u.CockpitDestroyed = true
	case strings.Contains(lower, "sensors"):
		u.SensorHits++
	case strings.Contains(lower, "shoulder"):
		u.Arms[loc].Shoulder = true
	case strings.Contains(lower, "upper arm"):
		u.Arms[loc].UpperArm = true
	case strings.Contains(lower, "lower arm"):
		u.Arms[loc].LowerArm = true
	case strings.Contains(lower, "hand"):
		u.Arms[loc].Hand = true
	case strings.Contains(lower, "hip"):
		u.Legs[loc].Hip = true
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{Reason: "hip destroyed", Modifier: 2})
	case strings.Contains(lower, "upper leg"):
		u.Legs[loc].UpperLeg = true
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{Reason: "leg actuator hit", Modifier: 1})
	case strings.Contains(lower, "lower leg"):
		u.Legs[loc].LowerLeg = true
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{Reason: "leg actuator hit", Modifier: 1})
	case strings.Contains(lower, "foot"):
		u.Legs[loc].Foot = true
		r.Log.Append(r.AttackerID, u.ID, events.PSRRequired{Reason: "foot actuator hit", Modifier: 1})
	case strings.Contains(lower, "ammo"):
		return name, r.explodeAmmo(u, loc, name)
	default:
		// Weapon or other equipment in this location.
		for i := range u.Weapons {
			w := &u.Weapons[i]
			if w.Location == loc && !w.Destroyed &&
				strings.Contains(lower, strings.ToLower(w.WeaponKey)) {
				w.Destroyed = true
				return name, false
			}
		}
		for i := range u.Weapons {
			w := &u.Weapons[i]
			if w.Location == loc && !w.Destroyed {
				w.Destroyed = true
				break
			}
		}
	}
	return name, false
}

// explodeAmmo detonates the remaining rounds behind an ammo slot and
// re-injects the damage at the same location. CASE confines the excess to
// the location; CASE II reduces the detonation to a single structure point.
func (r *Resolver) explodeAmmo(u *unit.Unit, loc unit.Location, slotName string) bool {
	ammoKey := ammoKeyFromSlot(slotName)
	perShot := catalog.AmmoDamagePerShot(ammoKey)
	shots := u.Ammo[ammoKey]
	if perShot <= 0 || shots <= 0 {
		return false
	}
	u.Ammo[ammoKey] = 0
	total := shots * perShot

	r.Log.Append(r.AttackerID, u.ID, events.AmmoExploded{
		Location: loc.String(),
		AmmoKey:  ammoKey,
		Damage:   total,
		CASE:     u.CASE[loc] || u.CASEII[loc],
	})

	switch {
	case u.CASEII[loc]:
		// CASE II vents the blast; the location takes a single point.
		r.applyInternal(u, loc, total, 1)
	case u.CASE[loc]:
		// CASE confines the blast: structure here absorbs what it can and
		// the rest vents out the back instead of transferring.
		r.applyInternal(u, loc, total, total)
	default:
		r.apply(u, loc, total, Options{})
	}
	return true
}

// applyInternal drives an internal explosion straight into structure,
// bypassing armor, discarding anything beyond maxStructureDamage and never
// transferring.
func (r *Resolver) applyInternal(u *unit.Unit, loc unit.Location, total, maxStructureDamage int) {
	ev := events.DamageApplied{Location: loc.String(), Amount: total}

	confined := min(min(total, maxStructureDamage), u.Structure[loc])
	ev.ToStructure = confined
	ev.Discarded = total - confined

	survives := u.Structure[loc] > confined
	if survives {
		u.Structure[loc] -= confined
	} else {
		u.DestroyLocation(loc)
		ev.LocationDestroyed = true
	}
	r.Log.Append(r.AttackerID, u.ID, ev)
	r.accumulatePhaseDamage(u, confined)

	if ev.LocationDestroyed {
		if arm, ok := loc.AttachedArm(); ok && !u.LocationDestroyed(arm) {
			u.DestroyLocation(arm)
			r.Log.Append(r.AttackerID, u.ID, events.DamageApplied{
				Location:          arm.String(),
				LocationDestroyed: true,
			})
		}
	} else if confined > 0 {
		r.CheckCritical(u, loc)
	}
}

// ammoKeyFromSlot extracts the catalog ammo key from a critical-slot name
// like "Ammo (LRM-20)" or "LRM-20 Ammo".
func ammoKeyFromSlot(slot string) string {
	s := strings.TrimSpace(slot)
	if i := strings.Index(s, "("); i >= 0 {
		if j := strings.Index(s[i:], ")"); j > 0 {
			return strings.TrimSpace(s[i+1 : i+j])
		}
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "Ammo"))
	s = strings.TrimSpace(strings.TrimPrefix(s, "Ammo"))
	return s
}
