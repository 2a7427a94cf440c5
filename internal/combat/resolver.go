package combat

import (
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/damage"
	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Attack resolution ──────────────────────────────────────────────────────

// Config holds optional-rule switches for attack resolution.
type Config struct {
	// Nat12AutoHit treats a natural 12 as an automatic hit regardless of
	// the target number. Baseline rules grant no such hit; off by default.
	Nat12AutoHit bool
}

// Resolver rolls declared attacks to completion: to-hit rolls, weapon-mode
// handling, hit location and damage delegation. One Resolver serves one
// resolution pass; it retains no state between attacks beyond the shared
// event log.
type Resolver struct {
	Log    *events.Log
	Roller dice.Roller
	Config Config
}

// rollToHit makes one 2d6 attack roll. A natural 2 always misses, whatever
// the modifiers did to the target number.
func (r *Resolver) rollToHit(target int) (int, bool) {
	roll := dice.TwoD6(r.Roller)
	switch {
	case roll == 2:
		return roll, false
	case roll == 12 && r.Config.Nat12AutoHit:
		return roll, true
	default:
		return roll, roll >= target
	}
}

// ResolveWeaponAttack resolves one declared, validated ranged attack from
// start to finish, emitting the full event trail and mutating the target
// clone through the damage chain.
func (r *Resolver) ResolveWeaponAttack(attacker, target *unit.Unit, d Declaration, w catalog.Weapon, th ToHitResult) {
	mount := attacker.WeaponByID(d.WeaponID)
	arc := AttackArc(attacker, target)
	dmg := &damage.Resolver{Log: r.Log, Roller: r.Roller, AttackerID: attacker.ID}

	if w.Mode == catalog.ModeLBX && d.ClusterOn {
		th.add("cluster munition", -1)
	}

	switch w.Mode {
	case catalog.ModeUltra:
		r.resolveBurst(attacker, target, mount, w, th, arc, dmg, 2)
	case catalog.ModeRotary:
		r.resolveBurst(attacker, target, mount, w, th, arc, dmg, d.Shots)
	case catalog.ModeCluster:
		r.resolveCluster(attacker, target, mount, w, th, arc, dmg)
	case catalog.ModeStreak:
		r.resolveStreak(attacker, target, w, th, arc, dmg)
	case catalog.ModeLBX:
		if d.ClusterOn {
			r.resolvePellets(attacker, target, w, th, arc, dmg)
		} else {
			r.resolveStandard(attacker, target, w, th, arc, dmg)
		}
	default:
		r.resolveStandard(attacker, target, w, th, arc, dmg)
	}
}

// ResolveTAG resolves a TAG designation attempt: no damage, but a hit
// marks the target for semi-guided ordnance for the rest of the turn.
func (r *Resolver) ResolveTAG(attacker, target *unit.Unit, th ToHitResult) {
	roll, hit := r.rollToHit(th.Target)
	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: "TAG", Target: th.Target, Roll: roll, Hit: hit,
	})
	if hit {
		target.TaggedTurn = true
	}
}

func (r *Resolver) resolveStandard(attacker, target *unit.Unit, w catalog.Weapon, th ToHitResult, arc hexmap.Arc, dmg *damage.Resolver) {
	roll, hit := r.rollToHit(th.Target)
	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: hit,
	})
	if hit {
		r.deliver(attacker, target, arc, w.Damage, dmg)
	}
}

// resolveBurst handles Ultra and Rotary autocannon fire: n fully
// independent shots, each with its own to-hit, damage and location. A
// natural 2 on any shot jams the weapon and ends the burst.
func (r *Resolver) resolveBurst(attacker, target *unit.Unit, mount *unit.Mount, w catalog.Weapon, th ToHitResult, arc hexmap.Arc, dmg *damage.Resolver, n int) {
	for shot := 1; shot <= n; shot++ {
		roll, hit := r.rollToHit(th.Target)
		r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
			WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: hit, Shot: shot,
		})
		if roll == 2 {
			mount.Jammed = true
			r.Log.Append(attacker.ID, target.ID, events.WeaponJammed{WeaponKey: w.Key, Shot: shot})
			return
		}
		if hit {
			r.deliver(attacker, target, arc, w.Damage, dmg)
		}
	}
}

// resolveCluster handles cluster-table weapons: a single to-hit roll, then
// a modified cluster roll for the number of missiles that connect, AMS
// interception, and per-missile or grouped damage application.
func (r *Resolver) resolveCluster(attacker, target *unit.Unit, mount *unit.Mount, w catalog.Weapon, th ToHitResult, arc hexmap.Arc, dmg *damage.Resolver) {
	roll, hit := r.rollToHit(th.Target)
	if !hit {
		r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
			WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: false,
		})
		return
	}

	clusterRoll := dice.TwoD6(r.Roller) +
		ClusterRollMod(mount.Artemis, target.NarcPodded, target.ECMActive) +
		w.ClusterMod
	hits := ClusterHits(w.RackSize, clampClusterRoll(clusterRoll))
	if w.Class == "missile" {
		hits = interceptMissiles(r.Roller, target, hits)
	}

	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: true, Hits: hits,
	})
	r.deliverCluster(attacker, target, w, arc, hits, dmg)
}

// resolveStreak handles Streak launchers: on a confirmed lock every
// missile strikes, no cluster roll. Target AMS degrades the flight to the
// cluster table's roll-7 row instead of a 1d6 subtraction.
func (r *Resolver) resolveStreak(attacker, target *unit.Unit, w catalog.Weapon, th ToHitResult, arc hexmap.Arc, dmg *damage.Resolver) {
	roll, hit := r.rollToHit(th.Target)
	if !hit {
		r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
			WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: false,
		})
		return
	}

	hits := w.RackSize
	if target.HasAMS && !target.AMSUsed && target.AMSAmmo > 0 {
		target.AMSUsed = true
		target.AMSAmmo--
		hits = ClusterHits(w.RackSize, 7)
	}

	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: true, Hits: hits,
	})
	r.deliverCluster(attacker, target, w, arc, hits, dmg)
}

// resolvePellets handles LB-X cluster munitions: every pellet rolls its
// own location for one point of damage.
func (r *Resolver) resolvePellets(attacker, target *unit.Unit, w catalog.Weapon, th ToHitResult, arc hexmap.Arc, dmg *damage.Resolver) {
	roll, hit := r.rollToHit(th.Target)
	if !hit {
		r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
			WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: false,
		})
		return
	}

	clusterRoll := dice.TwoD6(r.Roller)
	hits := ClusterHits(w.RackSize, clusterRoll)
	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: w.Key, Target: th.Target, Roll: roll, Hit: true, Hits: hits,
	})
	for i := 0; i < hits && !target.Destroyed(); i++ {
		r.deliver(attacker, target, arc, 1, dmg)
	}
}

// deliverCluster applies a resolved missile count: SRM-class launchers
// place each missile individually, LRM/MRM-class damage lands in 5-point
// groups. Each group is a separate hit for head-cap purposes.
func (r *Resolver) deliverCluster(attacker, target *unit.Unit, w catalog.Weapon, arc hexmap.Arc, hits int, dmg *damage.Resolver) {
	switch w.Cluster {
	case catalog.ClusterPerMissile:
		for i := 0; i < hits && !target.Destroyed(); i++ {
			r.deliver(attacker, target, arc, w.Damage, dmg)
		}
	case catalog.ClusterGrouped:
		remaining := hits * w.Damage
		for remaining > 0 && !target.Destroyed() {
			group := min(remaining, 5)
			r.deliver(attacker, target, arc, group, dmg)
			remaining -= group
		}
	default:
		panic(fmt.Sprintf("combat: %s resolves on the cluster table without a cluster kind", w.Key))
	}
}

// deliver rolls one hit location and drives the damage through the armor
// and structure chain, forcing a through-armor critical when the location
// roll demands one.
func (r *Resolver) deliver(attacker, target *unit.Unit, arc hexmap.Arc, amount int, dmg *damage.Resolver) {
	loc := RollWeaponLocation(r.Roller, arc)
	r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
		Roll:     loc.Roll,
		Location: loc.Location.String(),
		Arc:      arc.String(),
		TAC:      loc.TAC,
	})
	dmg.Apply(target, loc.Location, amount, damage.Options{Rear: loc.Rear, CapHead: true})
	if loc.TAC {
		dmg.ForceCritical(target, loc.Location)
	}
}
