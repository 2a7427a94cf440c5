package physical

import (
	"errors"
	"testing"

	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/events"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

func brawlers(t *testing.T, attackerTons int) (*unit.Unit, *unit.Unit) {
	t.Helper()
	att := unit.New("a", "Attacker", attackerTons)
	att.Pilot.Piloting = 5
	att.Pos = hexmap.Coord{Col: 5, Row: 5}

	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Neighbor(att.Pos, 3)
	tgt.Facing = hexmap.BearingTo(tgt.Pos, att.Pos)
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		tgt.Armor[loc] = 10
	}
	tgt.RearArmor = [3]int{5, 4, 4}
	return att, tgt
}

func newResolver(rolls ...int) (*Resolver, *events.Log) {
	log := &events.Log{}
	return &Resolver{Log: log, Roller: dice.NewSequence(rolls...)}, log
}

func psrEvents(log *events.Log) []events.Record {
	var out []events.Record
	for _, rec := range log.Records() {
		if _, ok := rec.Body.(events.PSRRequired); ok {
			out = append(out, rec)
		}
	}
	return out
}

// ─── Damage formulas ────────────────────────────────────────────────────────

func TestPunchDamage(t *testing.T) {
	tests := []struct {
		tons     int
		tsm      bool
		upperArm bool
		want     int
	}{
		{80, false, false, 8},
		{85, false, false, 9},
		{20, false, false, 2},
		{80, true, false, 16}, // TSM doubles the weight first
		{80, false, true, 4},  // destroyed upper arm halves
		{85, false, true, 5},  // halving rounds up
	}
	for _, tt := range tests {
		u := unit.New("u", "U", tt.tons)
		u.TSMActive = tt.tsm
		u.Arms[unit.LocRA].UpperArm = tt.upperArm
		if got := PunchDamage(u, unit.LocRA); got != tt.want {
			t.Errorf("PunchDamage(%dt, tsm=%v, ua=%v) = %d, want %d",
				tt.tons, tt.tsm, tt.upperArm, got, tt.want)
		}
	}
}

func TestKickDamage(t *testing.T) {
	tests := []struct {
		tons int
		tsm  bool
		want int
	}{
		{80, false, 16},
		{33, false, 6},
		{50, true, 20},
	}
	for _, tt := range tests {
		u := unit.New("u", "U", tt.tons)
		u.TSMActive = tt.tsm
		if got := KickDamage(u, unit.LocRL); got != tt.want {
			t.Errorf("KickDamage(%dt, tsm=%v) = %d, want %d", tt.tons, tt.tsm, got, tt.want)
		}
	}
}

func TestMeleeDamageFormulas(t *testing.T) {
	for kind, want := range map[unit.MeleeWeaponKind]int{
		unit.MeleeHatchet: 16, // floor(80/5)
		unit.MeleeSword:   9,  // floor(80/10)+1
		unit.MeleeMace:    32, // floor(80*2/5)
	} {
		if got := meleeProfiles[kind].damage(80); got != want {
			t.Errorf("%s damage at 80t = %d, want %d", meleeProfiles[kind].name, got, want)
		}
	}
}

func TestDFADamageFormulas(t *testing.T) {
	if got := ((80 + 9) / 10) * 3; got != 24 {
		t.Fatalf("dfa target damage at 80t = %d, want 24", got)
	}
}

// ─── Punch ──────────────────────────────────────────────────────────────────

// 80-ton attacker, piloting 5, target stationary: target number 5, 8
// damage, punch-table 3 lands on the center torso.
func TestPunchEndToEnd(t *testing.T) {
	att, tgt := brawlers(t, 80)
	r, log := newResolver(2, 3, 3)

	if err := r.Punch(att, tgt, unit.LocRA); err != nil {
		t.Fatal(err)
	}

	var atk *events.AttackResolved
	for _, rec := range log.Records() {
		if a, ok := rec.Body.(events.AttackResolved); ok {
			atk = &a
		}
	}
	if atk == nil || atk.Target != 5 || !atk.Hit {
		t.Fatalf("attack = %+v, want target 5 hit", atk)
	}
	if tgt.Armor[unit.LocCT] != 2 {
		t.Errorf("CT armor = %d, want 2 after 8-point punch", tgt.Armor[unit.LocCT])
	}
	if !att.LimbUsed[unit.LocRA] {
		t.Error("punching arm not marked used")
	}
}

func TestPunchRejections(t *testing.T) {
	att, tgt := brawlers(t, 80)

	att.Arms[unit.LocRA].Shoulder = true
	r, _ := newResolver()
	if err := r.Punch(att, tgt, unit.LocRA); !errors.Is(err, ErrShoulderDestroyed) {
		t.Errorf("destroyed shoulder: %v, want ErrShoulderDestroyed", err)
	}

	att.Weapons = []unit.Mount{{ID: "ml", WeaponKey: "Medium Laser", Location: unit.LocLA, Fired: true}}
	att.LimbUsed[unit.LocLA] = true
	if err := r.Punch(att, tgt, unit.LocLA); !errors.Is(err, ErrArmFired) {
		t.Errorf("fired arm: %v, want ErrArmFired", err)
	}

	tgt.Pos = hexmap.Coord{Col: 9, Row: 9}
	if err := r.Punch(att, tgt, unit.LocRA); !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("distant target: %v, want ErrNotAdjacent", err)
	}
}

func TestPunchActuatorPenalties(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Arms[unit.LocRA].UpperArm = true
	att.Arms[unit.LocRA].Hand = true

	// 5 piloting + 2 upper arm + 1 hand = 8.
	th := PunchToHit(att, tgt, unit.LocRA)
	if th.Target != 8 {
		t.Errorf("to-hit = %d, want 8 (%+v)", th.Target, th.Mods)
	}
}

func TestPunchUnderwaterHalved(t *testing.T) {
	att, tgt := brawlers(t, 80)
	r, _ := newResolver(2, 3, 3)
	r.WaterDepth = 2

	if err := r.Punch(att, tgt, unit.LocRA); err != nil {
		t.Fatal(err)
	}
	if tgt.Armor[unit.LocCT] != 6 {
		t.Errorf("CT armor = %d, want 6 (8-point punch halved)", tgt.Armor[unit.LocCT])
	}
}

// ─── Kick ───────────────────────────────────────────────────────────────────

func TestKickHitForcesTargetPSR(t *testing.T) {
	att, tgt := brawlers(t, 50)
	// Piloting 5 - 2 = 3; roll 7 hits; kick roll 2 lands on the right leg
	// for exactly its 10 points of armor.
	r, log := newResolver(3, 4, 2)

	if err := r.Kick(att, tgt, unit.LocRL); err != nil {
		t.Fatal(err)
	}
	if tgt.Armor[unit.LocRL] != 0 {
		t.Errorf("RL armor = %d, want 0", tgt.Armor[unit.LocRL])
	}
	psrs := psrEvents(log)
	if len(psrs) != 1 || psrs[0].Unit != tgt.ID {
		t.Fatalf("PSR events = %+v, want one against the target", psrs)
	}
}

func TestKickMissForcesAttackerPSR(t *testing.T) {
	att, tgt := brawlers(t, 50)
	r, log := newResolver(1, 1)

	if err := r.Kick(att, tgt, unit.LocRL); err != nil {
		t.Fatal(err)
	}
	psrs := psrEvents(log)
	if len(psrs) != 1 || psrs[0].Unit != att.ID {
		t.Fatalf("PSR events = %+v, want one against the attacker", psrs)
	}
}

func TestKickHipRejected(t *testing.T) {
	att, tgt := brawlers(t, 50)
	att.Legs[unit.LocRL].Hip = true
	r, _ := newResolver()
	if err := r.Kick(att, tgt, unit.LocRL); !errors.Is(err, ErrHipDestroyed) {
		t.Errorf("hip kick: %v, want ErrHipDestroyed", err)
	}
}

func TestSameLimbCannotKickTwice(t *testing.T) {
	att, tgt := brawlers(t, 50)
	r, _ := newResolver(1, 1, 1, 1)
	if err := r.Kick(att, tgt, unit.LocRL); err != nil {
		t.Fatal(err)
	}
	if err := r.Kick(att, tgt, unit.LocRL); !errors.Is(err, ErrLimbUsed) {
		t.Errorf("second kick: %v, want ErrLimbUsed", err)
	}
}

// ─── Charge / DFA / Push ────────────────────────────────────────────────────

func TestChargeDamageBothWays(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Move = unit.MoveState{Mode: unit.MoveRan, Hexes: 4}
	att.Facing = hexmap.BearingTo(att.Pos, tgt.Pos)
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		att.Armor[loc] = 10
	}

	// Alternating 3,4 makes every 2d6 a 7: the attack roll hits (TN 5 +
	// 2 ran = 7), every location roll lands center torso, and every
	// critical check on the exposed structure comes up empty. The target
	// takes ceil(80/10)*(4-1) = 24 in groups of 5+5+5+5+4; the attacker
	// takes ceil(50/10) = 5 in one group.
	var rolls []int
	for i := 0; i < 12; i++ {
		rolls = append(rolls, 3, 4)
	}
	r, log := newResolver(rolls...)

	if err := r.Charge(att, tgt); err != nil {
		t.Fatal(err)
	}

	if got := 10 - att.Armor[unit.LocCT]; got != 5 {
		t.Errorf("attacker CT armor lost = %d, want 5", got)
	}
	tgtTotal := (10 - tgt.Armor[unit.LocCT]) + (tgt.MaxStructure[unit.LocCT] - tgt.Structure[unit.LocCT])
	if tgtTotal != 24 {
		t.Errorf("target CT damage = %d, want 24", tgtTotal)
	}
	if len(psrEvents(log)) != 2 {
		t.Errorf("PSR events = %d, want both sides checked", len(psrEvents(log)))
	}
}

func TestDFARequiresJump(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Move = unit.MoveState{Mode: unit.MoveRan, Hexes: 4}
	r, _ := newResolver()
	if err := r.DFA(att, tgt); !errors.Is(err, ErrNoJump) {
		t.Errorf("running DFA: %v, want ErrNoJump", err)
	}
}

func TestDFAMissQueuesHardPSR(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Move = unit.MoveState{Mode: unit.MoveJumped, Hexes: 4}
	r, log := newResolver(1, 1)

	if err := r.DFA(att, tgt); err != nil {
		t.Fatal(err)
	}
	psrs := psrEvents(log)
	if len(psrs) != 1 {
		t.Fatalf("PSR events = %d, want 1", len(psrs))
	}
	body := psrs[0].Body.(events.PSRRequired)
	if psrs[0].Unit != att.ID || body.Modifier != 4 {
		t.Errorf("missed DFA PSR = %+v on %s, want +4 on attacker", body, psrs[0].Unit)
	}
}

func TestDFAHitSplitsLegDamage(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Move = unit.MoveState{Mode: unit.MoveJumped, Hexes: 4}
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		att.Armor[loc] = 12
	}

	// TN 5+3 jump+0 TMM = 8; roll 8 hits. 24 target damage in punch
	// groups 5+5+5+5+4 (punch roll 3 = CT each), critical checks of 7
	// interleaved once the structure is exposed, then 16 leg damage
	// split 8/8 into intact leg armor.
	rolls := []int{4, 4, 3, 3, 3, 3, 4, 3, 3, 4, 3, 3, 4}
	r, log := newResolver(rolls...)

	if err := r.DFA(att, tgt); err != nil {
		t.Fatal(err)
	}

	if got := 12 - att.Armor[unit.LocLL]; got != 8 {
		t.Errorf("left leg damage = %d, want 8", got)
	}
	if got := 12 - att.Armor[unit.LocRL]; got != 8 {
		t.Errorf("right leg damage = %d, want 8", got)
	}
	if len(psrEvents(log)) != 2 {
		t.Errorf("PSR events = %d, want both sides checked", len(psrEvents(log)))
	}
}

func TestPushDisplacesWithoutDamage(t *testing.T) {
	att, tgt := brawlers(t, 50)
	before := tgt.Pos
	// TN 5 - 1 = 4; roll 7 hits.
	r, log := newResolver(3, 4)

	if err := r.Push(att, tgt); err != nil {
		t.Fatal(err)
	}
	if tgt.Pos == before {
		t.Error("target not displaced")
	}
	if hexmap.Distance(att.Pos, tgt.Pos) != 2 {
		t.Errorf("pushed distance = %d, want 2", hexmap.Distance(att.Pos, tgt.Pos))
	}
	for _, rec := range log.Records() {
		if _, ok := rec.Body.(events.DamageApplied); ok {
			t.Error("push applied damage")
		}
	}
	if len(psrEvents(log)) != 1 {
		t.Errorf("PSR events = %d, want 1 on the target", len(psrEvents(log)))
	}
}

// ─── Melee weapons ──────────────────────────────────────────────────────────

func TestMeleeWeaponNeedsActuators(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Melee = unit.MeleeHatchet
	att.MeleeLocation = unit.LocRA
	att.Arms[unit.LocRA].Hand = true

	r, _ := newResolver()
	if err := r.MeleeWeapon(att, tgt); !errors.Is(err, ErrActuatorMissing) {
		t.Errorf("handless hatchet: %v, want ErrActuatorMissing", err)
	}
}

func TestMeleeWeaponSwing(t *testing.T) {
	att, tgt := brawlers(t, 80)
	att.Melee = unit.MeleeSword
	att.MeleeLocation = unit.LocRA

	// Sword: 5 piloting - 2 = 3; roll 7 hits; location 7 = CT for
	// floor(80/10)+1 = 9 damage.
	r, _ := newResolver(3, 4, 3, 4)
	if err := r.MeleeWeapon(att, tgt); err != nil {
		t.Fatal(err)
	}
	if got := 10 - tgt.Armor[unit.LocCT]; got != 9 {
		t.Errorf("CT armor lost = %d, want 9", got)
	}
	if !att.LimbUsed[unit.LocRA] {
		t.Error("wielding arm not marked used")
	}
}

func TestNoMeleeWeaponMounted(t *testing.T) {
	att, tgt := brawlers(t, 80)
	r, _ := newResolver()
	if err := r.MeleeWeapon(att, tgt); !errors.Is(err, ErrNoMeleeWeapon) {
		t.Errorf("bare hands: %v, want ErrNoMeleeWeapon", err)
	}
}

// ─── PSR and falls ──────────────────────────────────────────────────────────

func TestPSRTarget(t *testing.T) {
	u := unit.New("u", "U", 50)
	u.Pilot.Piloting = 5
	if got := PSRTarget(u, 0); got != 5 {
		t.Errorf("clean PSR target = %d, want 5", got)
	}
	u.GyroHits = 1
	u.Legs[unit.LocRL].Hip = true
	u.Legs[unit.LocLL].Foot = true
	if got := PSRTarget(u, 2); got != 13 {
		t.Errorf("damaged PSR target = %d, want 13 (5+2+3+2+1)", got)
	}
}

func TestFallDamage(t *testing.T) {
	if got := FallDamage(80, 0); got != 8 {
		t.Errorf("level-0 fall at 80t = %d, want 8", got)
	}
	if got := FallDamage(55, 2); got != 18 {
		t.Errorf("2-level fall at 55t = %d, want 18", got)
	}
}

func TestResolveFall(t *testing.T) {
	u := unit.New("u", "U", 50)
	u.Pilot.Piloting = 5
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		u.Armor[loc] = 10
	}
	u.RearArmor = [3]int{5, 4, 4}

	// Facing roll 1 = front; 5-point group to CT (roll 7); pilot roll 9
	// avoids the wound.
	r, log := newResolver(1, 3, 4, 4, 5)
	r.ResolveFall(u, 0)

	if !u.Prone {
		t.Error("fallen unit not prone")
	}
	if got := 10 - u.Armor[unit.LocCT]; got != 5 {
		t.Errorf("fall damage to CT = %d, want 5", got)
	}
	if u.Pilot.Wounds != 0 {
		t.Errorf("pilot wounds = %d, want 0 on a made roll", u.Pilot.Wounds)
	}

	// A failed avoidance roll wounds the pilot.
	u2 := unit.New("u2", "U2", 50)
	u2.Pilot.Piloting = 5
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		u2.Armor[loc] = 10
	}
	u2.RearArmor = [3]int{5, 4, 4}
	r, log = newResolver(1, 3, 4, 1, 2)
	r.ResolveFall(u2, 0)
	if u2.Pilot.Wounds != 1 {
		t.Errorf("pilot wounds = %d, want 1 on a blown roll", u2.Pilot.Wounds)
	}
	_ = log
}

func TestFatalFallWoundDestroysUnit(t *testing.T) {
	u := unit.New("u", "U", 50)
	u.Pilot.Piloting = 5
	u.Pilot.Wounds = 5
	for loc := unit.Location(0); loc < unit.NumLocations; loc++ {
		u.Armor[loc] = 10
	}
	u.RearArmor = [3]int{5, 4, 4}

	// Facing 1, group to CT, pilot roll 3 fails: the sixth wound kills.
	r, log := newResolver(1, 3, 4, 1, 2)
	r.ResolveFall(u, 0)

	if u.Pilot.Wounds != 6 || !u.Destroyed() {
		t.Fatalf("wounds = %d destroyed = %v, want 6/true", u.Pilot.Wounds, u.Destroyed())
	}
	found := false
	for _, rec := range log.Records() {
		if body, ok := rec.Body.(events.UnitDestroyed); ok {
			found = true
			if body.Reason != "pilot killed" {
				t.Errorf("destruction reason = %q, want %q", body.Reason, "pilot killed")
			}
		}
	}
	if !found {
		t.Error("no unit.destroyed event after the fatal wound")
	}
}
