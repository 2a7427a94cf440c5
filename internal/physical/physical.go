// Package physical resolves melee-range attacks: punches, kicks, charges,
// death-from-above, pushes and hand-held melee weapons. It reuses the
// combat package's hit-location tables and the damage chain, and emits the
// same event trail as ranged fire. All randomness flows through the
// injected roller.
package physical

import (
	"errors"
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/combat"
	"github.com/SwiggitySwerve/mekstation/internal/damage"
	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/environment"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Declaration rejections ─────────────────────────────────────────────────

var (
	ErrNotAdjacent       = errors.New("target not adjacent")
	ErrShoulderDestroyed = errors.New("shoulder actuator destroyed")
	ErrHipDestroyed      = errors.New("hip actuator destroyed")
	ErrLimbUsed          = errors.New("limb already used this turn")
	ErrArmFired          = errors.New("arm fired a weapon this turn")
	ErrNoJump            = errors.New("death from above requires jump movement")
	ErrNoMeleeWeapon     = errors.New("no melee weapon mounted")
	ErrActuatorMissing   = errors.New("melee weapon needs a working lower arm and hand")
)

// Resolver resolves physical attacks. WaterDepth is the depth of the
// target's hex; physical damage is halved at depth 2 or more.
type Resolver struct {
	Log        *events.Log
	Roller     dice.Roller
	WaterDepth int
}

// toHit assembles a physical-attack target number from named parts, the
// same auditable shape ranged attacks use.
func toHit(kind string, base int, parts ...environment.Modifier) combat.ToHitResult {
	res := combat.ToHitResult{AttackType: kind, Target: base}
	res.Mods = append(res.Mods, environment.Modifier{Name: "piloting", Value: base})
	for _, p := range parts {
		if p.Value == 0 {
			continue
		}
		res.Mods = append(res.Mods, p)
		res.Target += p.Value
	}
	return res
}

func movementParts(attacker, target *unit.Unit) []environment.Modifier {
	return []environment.Modifier{
		{Name: "attacker movement", Value: combat.AttackerMoveMod(attacker.Move)},
		{Name: "target movement", Value: combat.TargetMovementMod(target.Move)},
	}
}

// weightDamage applies the TSM doubling before a weight-based formula.
func weightDamage(u *unit.Unit) int {
	w := u.Tonnage
	if u.TSMActive {
		w *= 2
	}
	return w
}

func (r *Resolver) requireAdjacent(attacker, target *unit.Unit) error {
	if hexmap.Distance(attacker.Pos, target.Pos) != 1 {
		return fmt.Errorf("%s to %s: %w", attacker.ID, target.ID, ErrNotAdjacent)
	}
	return nil
}

func (r *Resolver) rollAttack(attacker, target *unit.Unit, kind string, th combat.ToHitResult) bool {
	roll := dice.TwoD6(r.Roller)
	hit := roll != 2 && roll >= th.Target
	r.Log.Append(attacker.ID, target.ID, events.AttackResolved{
		WeaponKey: kind, Target: th.Target, Roll: roll, Hit: hit,
	})
	return hit
}

func (r *Resolver) damageResolver(attackerID string) *damage.Resolver {
	return &damage.Resolver{Log: r.Log, Roller: r.Roller, AttackerID: attackerID}
}

func (r *Resolver) queuePSR(unitID, targetID, reason string, mod int) {
	r.Log.Append(unitID, targetID, events.PSRRequired{Reason: reason, Modifier: mod})
}

// ─── Punch ──────────────────────────────────────────────────────────────────

// PunchToHit is the punch target number for one arm: piloting plus
// actuator penalties. A destroyed shoulder forbids the attack entirely.
func PunchToHit(attacker, target *unit.Unit, arm unit.Location) combat.ToHitResult {
	acts := attacker.Arms[arm]
	parts := movementParts(attacker, target)
	if acts.UpperArm {
		parts = append(parts, environment.Modifier{Name: "upper arm actuator", Value: 2})
	}
	if acts.LowerArm {
		parts = append(parts, environment.Modifier{Name: "lower arm actuator", Value: 2})
	}
	if acts.Hand {
		parts = append(parts, environment.Modifier{Name: "hand actuator", Value: 1})
	}
	return toHit("punch", attacker.Pilot.Piloting, parts...)
}

// PunchDamage is ceil(weight/10), doubled under TSM, halved (round up)
// once per destroyed upper or lower arm actuator.
func PunchDamage(attacker *unit.Unit, arm unit.Location) int {
	d := (weightDamage(attacker) + 9) / 10
	acts := attacker.Arms[arm]
	if acts.UpperArm {
		d = (d + 1) / 2
	}
	if acts.LowerArm {
		d = (d + 1) / 2
	}
	return d
}

// Punch resolves one punch with the given arm.
func (r *Resolver) Punch(attacker, target *unit.Unit, arm unit.Location) error {
	if !arm.IsArm() {
		panic(fmt.Sprintf("physical: punch with %s", arm))
	}
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}
	if attacker.Arms[arm].Shoulder || attacker.LocationDestroyed(arm) {
		return fmt.Errorf("%s: %w", arm, ErrShoulderDestroyed)
	}
	if attacker.LimbUsed[arm] {
		for _, m := range attacker.Weapons {
			if m.Location == arm && m.Fired {
				return fmt.Errorf("%s: %w", arm, ErrArmFired)
			}
		}
		return fmt.Errorf("%s: %w", arm, ErrLimbUsed)
	}
	attacker.LimbUsed[arm] = true

	th := PunchToHit(attacker, target, arm)
	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: "punch"})
	if !r.rollAttack(attacker, target, "punch", th) {
		return nil
	}

	arc := combat.AttackArc(attacker, target)
	loc := combat.RollPunchLocation(r.Roller, arc)
	r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
		Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(),
	})
	dmg := damage.HalveUnderwater(PunchDamage(attacker, arm), r.WaterDepth)
	r.damageResolver(attacker.ID).Apply(target, loc.Location, dmg, damage.Options{Rear: loc.Rear, CapHead: true})
	return nil
}

// ─── Kick ───────────────────────────────────────────────────────────────────

// KickToHit is piloting − 2 plus leg actuator penalties.
func KickToHit(attacker, target *unit.Unit, leg unit.Location) combat.ToHitResult {
	acts := attacker.Legs[leg]
	parts := movementParts(attacker, target)
	parts = append(parts, environment.Modifier{Name: "kick", Value: -2})
	if acts.UpperLeg {
		parts = append(parts, environment.Modifier{Name: "upper leg actuator", Value: 2})
	}
	if acts.LowerLeg {
		parts = append(parts, environment.Modifier{Name: "lower leg actuator", Value: 2})
	}
	if acts.Foot {
		parts = append(parts, environment.Modifier{Name: "foot actuator", Value: 1})
	}
	return toHit("kick", attacker.Pilot.Piloting, parts...)
}

// KickDamage is floor(weight/5), doubled under TSM, halved (round up) once
// per destroyed upper or lower leg actuator.
func KickDamage(attacker *unit.Unit, leg unit.Location) int {
	d := weightDamage(attacker) / 5
	acts := attacker.Legs[leg]
	if acts.UpperLeg {
		d = (d + 1) / 2
	}
	if acts.LowerLeg {
		d = (d + 1) / 2
	}
	return d
}

// Kick resolves one kick. A hit forces the target to check its footing; a
// miss forces the attacker to.
func (r *Resolver) Kick(attacker, target *unit.Unit, leg unit.Location) error {
	if !leg.IsLeg() {
		panic(fmt.Sprintf("physical: kick with %s", leg))
	}
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}
	if attacker.Legs[leg].Hip || attacker.LocationDestroyed(leg) {
		return fmt.Errorf("%s: %w", leg, ErrHipDestroyed)
	}
	if attacker.LimbUsed[leg] {
		return fmt.Errorf("%s: %w", leg, ErrLimbUsed)
	}
	attacker.LimbUsed[leg] = true

	th := KickToHit(attacker, target, leg)
	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: "kick"})
	if !r.rollAttack(attacker, target, "kick", th) {
		r.queuePSR(attacker.ID, target.ID, "missed kick", 0)
		return nil
	}

	arc := combat.AttackArc(attacker, target)
	loc := combat.RollKickLocation(r.Roller, arc)
	r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
		Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(),
	})
	dmg := damage.HalveUnderwater(KickDamage(attacker, leg), r.WaterDepth)
	r.damageResolver(attacker.ID).Apply(target, loc.Location, dmg, damage.Options{Rear: loc.Rear})
	r.queuePSR(target.ID, attacker.ID, "kicked", 0)
	return nil
}

// ─── Charge ─────────────────────────────────────────────────────────────────

// ChargeToHit is piloting adjusted by both movements.
func ChargeToHit(attacker, target *unit.Unit) combat.ToHitResult {
	return toHit("charge", attacker.Pilot.Piloting, movementParts(attacker, target)...)
}

// Charge resolves a charge: the target takes ceil(weight/10) per hex of
// momentum beyond the first, the attacker takes ceil(targetWeight/10), and
// both check their footing on a hit. Damage lands in 5-point groups.
func (r *Resolver) Charge(attacker, target *unit.Unit) error {
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}

	th := ChargeToHit(attacker, target)
	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: "charge"})
	if !r.rollAttack(attacker, target, "charge", th) {
		return nil
	}

	hexes := attacker.Move.Hexes
	targetDmg := ((attacker.Tonnage + 9) / 10) * max(hexes-1, 0)
	attackerDmg := (target.Tonnage + 9) / 10

	r.deliverGrouped(attacker, target, damage.HalveUnderwater(targetDmg, r.WaterDepth))
	r.deliverGrouped(target, attacker, attackerDmg)

	r.queuePSR(target.ID, attacker.ID, "charged", 0)
	r.queuePSR(attacker.ID, target.ID, "charge impact", 0)
	return nil
}

// ─── Death From Above ───────────────────────────────────────────────────────

// DFAToHit carries a jump's +3 attacker movement inside the movement
// parts.
func DFAToHit(attacker, target *unit.Unit) combat.ToHitResult {
	return toHit("dfa", attacker.Pilot.Piloting, movementParts(attacker, target)...)
}

// DFA resolves a death-from-above attack. The target takes three punches'
// worth on the punch table; the attacker's legs absorb the landing. A miss
// leaves the attacker checking its footing at +4.
func (r *Resolver) DFA(attacker, target *unit.Unit) error {
	if attacker.Move.Mode != unit.MoveJumped {
		return fmt.Errorf("%s: %w", attacker.ID, ErrNoJump)
	}
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}

	th := DFAToHit(attacker, target)
	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: "dfa"})
	if !r.rollAttack(attacker, target, "dfa", th) {
		r.queuePSR(attacker.ID, target.ID, "missed death from above", 4)
		return nil
	}

	targetDmg := ((attacker.Tonnage + 9) / 10) * 3
	r.deliverPunchGrouped(attacker, target, damage.HalveUnderwater(targetDmg, r.WaterDepth))

	// Landing damage splits evenly across both legs.
	legDmg := (attacker.Tonnage + 4) / 5
	dmg := r.damageResolver(target.ID)
	dmg.Apply(attacker, unit.LocLL, (legDmg+1)/2, damage.Options{})
	dmg.Apply(attacker, unit.LocRL, legDmg/2, damage.Options{})

	r.queuePSR(target.ID, attacker.ID, "death from above", 0)
	r.queuePSR(attacker.ID, target.ID, "death from above landing", 0)
	return nil
}

// ─── Push ───────────────────────────────────────────────────────────────────

// PushToHit is piloting − 1 adjusted by both movements.
func PushToHit(attacker, target *unit.Unit) combat.ToHitResult {
	parts := append(movementParts(attacker, target), environment.Modifier{Name: "push", Value: -1})
	return toHit("push", attacker.Pilot.Piloting, parts...)
}

// Push resolves a push: no damage, the target is displaced one hex away
// from the attacker and must check its footing.
func (r *Resolver) Push(attacker, target *unit.Unit) error {
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}

	th := PushToHit(attacker, target)
	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: "push"})
	if !r.rollAttack(attacker, target, "push", th) {
		return nil
	}

	away := hexmap.BearingTo(attacker.Pos, target.Pos)
	target.Pos = hexmap.Neighbor(target.Pos, away)
	r.queuePSR(target.ID, attacker.ID, "pushed", 0)
	return nil
}

// ─── Melee weapons ──────────────────────────────────────────────────────────

type meleeProfile struct {
	name     string
	toHitMod int
	damage   func(weight int) int
}

var meleeProfiles = map[unit.MeleeWeaponKind]meleeProfile{
	unit.MeleeHatchet: {"hatchet", -1, func(w int) int { return w / 5 }},
	unit.MeleeSword:   {"sword", -2, func(w int) int { return w/10 + 1 }},
	unit.MeleeMace:    {"mace", 1, func(w int) int { return w * 2 / 5 }},
}

// MeleeWeapon resolves a swing with the mounted melee weapon. The wielding
// arm needs a working lower arm and hand.
func (r *Resolver) MeleeWeapon(attacker, target *unit.Unit) error {
	prof, ok := meleeProfiles[attacker.Melee]
	if !ok {
		return fmt.Errorf("%s: %w", attacker.ID, ErrNoMeleeWeapon)
	}
	if err := r.requireAdjacent(attacker, target); err != nil {
		return err
	}
	arm := attacker.MeleeLocation
	acts := attacker.Arms[arm]
	if acts.LowerArm || acts.Hand || attacker.LocationDestroyed(arm) {
		return fmt.Errorf("%s %s: %w", prof.name, arm, ErrActuatorMissing)
	}
	if attacker.LimbUsed[arm] {
		return fmt.Errorf("%s: %w", arm, ErrLimbUsed)
	}
	attacker.LimbUsed[arm] = true

	parts := append(movementParts(attacker, target),
		environment.Modifier{Name: prof.name, Value: prof.toHitMod})
	th := toHit(prof.name, attacker.Pilot.Piloting, parts...)

	r.Log.Append(attacker.ID, target.ID, events.AttackDeclared{Physical: prof.name})
	if !r.rollAttack(attacker, target, prof.name, th) {
		return nil
	}

	arc := combat.AttackArc(attacker, target)
	loc := combat.RollWeaponLocation(r.Roller, arc)
	r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
		Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(), TAC: loc.TAC,
	})
	dmg := damage.HalveUnderwater(prof.damage(attacker.Tonnage), r.WaterDepth)
	res := r.damageResolver(attacker.ID)
	res.Apply(target, loc.Location, dmg, damage.Options{Rear: loc.Rear, CapHead: true})
	if loc.TAC {
		res.ForceCritical(target, loc.Location)
	}
	return nil
}

// ─── Grouped delivery ───────────────────────────────────────────────────────

// deliverGrouped lands damage in 5-point groups on the weapon-fire table.
func (r *Resolver) deliverGrouped(attacker, target *unit.Unit, total int) {
	arc := combat.AttackArc(attacker, target)
	dmg := r.damageResolver(attacker.ID)
	for total > 0 && !target.Destroyed() {
		group := min(total, 5)
		loc := combat.RollWeaponLocation(r.Roller, arc)
		r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
			Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(), TAC: loc.TAC,
		})
		dmg.Apply(target, loc.Location, group, damage.Options{Rear: loc.Rear, CapHead: true})
		if loc.TAC {
			dmg.ForceCritical(target, loc.Location)
		}
		total -= group
	}
}

// deliverPunchGrouped lands damage in 5-point groups on the punch table.
func (r *Resolver) deliverPunchGrouped(attacker, target *unit.Unit, total int) {
	arc := combat.AttackArc(attacker, target)
	dmg := r.damageResolver(attacker.ID)
	for total > 0 && !target.Destroyed() {
		group := min(total, 5)
		loc := combat.RollPunchLocation(r.Roller, arc)
		r.Log.Append(attacker.ID, target.ID, events.HitLocationDetermined{
			Roll: loc.Roll, Location: loc.Location.String(), Arc: arc.String(),
		})
		dmg.Apply(target, loc.Location, group, damage.Options{Rear: loc.Rear, CapHead: true})
		total -= group
	}
}
