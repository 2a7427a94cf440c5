package combat

import (
	"testing"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
	"github.com/SwiggitySwerve/mekstation/internal/environment"
	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

func TestTargetMovementMod(t *testing.T) {
	tests := []struct {
		mode  unit.MoveMode
		hexes int
		want  int
	}{
		{unit.MoveStationary, 0, 0},
		{unit.MoveWalked, 1, 1},
		{unit.MoveWalked, 4, 1},
		{unit.MoveWalked, 5, 1},
		{unit.MoveRan, 6, 2},
		{unit.MoveRan, 10, 2},
		{unit.MoveRan, 11, 3},
		{unit.MoveJumped, 0, 1}, // jumped in place still jinks
		{unit.MoveJumped, 4, 2},
		{unit.MoveJumped, 7, 3},
	}
	for _, tt := range tests {
		m := unit.MoveState{Mode: tt.mode, Hexes: tt.hexes}
		if got := TargetMovementMod(m); got != tt.want {
			t.Errorf("TargetMovementMod(%v, %d hexes) = %d, want %d",
				tt.mode, tt.hexes, got, tt.want)
		}
	}
}

func TestAttackerMoveMod(t *testing.T) {
	tests := []struct {
		mode unit.MoveMode
		want int
	}{
		{unit.MoveStationary, 0},
		{unit.MoveWalked, 1},
		{unit.MoveRan, 2},
		{unit.MoveJumped, 3},
	}
	for _, tt := range tests {
		if got := AttackerMoveMod(unit.MoveState{Mode: tt.mode}); got != tt.want {
			t.Errorf("AttackerMoveMod(%v) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}

// Large Laser at medium range from a walking attacker against a
// stationary target: 4 gunnery + 2 range + 1 movement = 7.
func TestWeaponToHitMediumRangeWalked(t *testing.T) {
	att := unit.New("a", "Attacker", 50)
	att.Pilot.Gunnery = 4
	att.Move = unit.MoveState{Mode: unit.MoveWalked, Hexes: 3}
	att.Pos = hexmap.Coord{Col: 0, Row: 5}

	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Coord{Col: 7, Row: 5}

	w := mustWeapon(t, "Large Laser")
	th := WeaponToHit(att, tgt, w, nil, environment.Standard())

	if th.Target != 7 {
		t.Fatalf("to-hit = %d, want 7 (%+v)", th.Target, th.Mods)
	}
	wantMods := map[string]int{"gunnery": 4, "range": 2, "attacker movement": 1}
	for _, m := range th.Mods {
		if want, ok := wantMods[m.Name]; !ok || want != m.Value {
			t.Errorf("unexpected contribution %s=%d", m.Name, m.Value)
		}
	}
}

func TestWeaponToHitMinimumRange(t *testing.T) {
	att := unit.New("a", "Attacker", 50)
	att.Pilot.Gunnery = 4
	att.Pos = hexmap.Coord{Col: 0, Row: 0}

	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Coord{Col: 2, Row: 0} // 5 hexes inside the LRM minimum of 6

	w := mustWeapon(t, "LRM-10")
	th := WeaponToHit(att, tgt, w, nil, environment.Standard())

	// 4 gunnery + 0 short range + 5 minimum range (6-2+1).
	if th.Target != 9 {
		t.Fatalf("to-hit = %d, want 9 (%+v)", th.Target, th.Mods)
	}
}

func TestWeaponToHitHeatAndEnvironment(t *testing.T) {
	att := unit.New("a", "Attacker", 50)
	att.Pilot.Gunnery = 4
	att.Heat = 9
	att.Pos = hexmap.Coord{Col: 0, Row: 5}

	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Coord{Col: 4, Row: 5}

	env := environment.Standard()
	env.Light = environment.LightNight
	env.Wind = environment.WindHigh

	laser := mustWeapon(t, "Large Laser")
	th := WeaponToHit(att, tgt, laser, nil, env)
	// 4 gunnery + 0 short + 2 heat + 2 night; wind only touches missiles.
	if th.Target != 8 {
		t.Fatalf("laser to-hit = %d, want 8 (%+v)", th.Target, th.Mods)
	}

	srm := mustWeapon(t, "SRM-6")
	th = WeaponToHit(att, tgt, srm, nil, env)
	// 4 gunnery + 2 medium + 2 heat + 2 night + 1 high wind = 11.
	if th.Target != 11 {
		t.Fatalf("missile to-hit = %d, want 11 (%+v)", th.Target, th.Mods)
	}
}

func TestWeaponToHitBeyondLongRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic firing beyond long range")
		}
	}()
	att := unit.New("a", "Attacker", 50)
	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Coord{Col: 30, Row: 0}
	WeaponToHit(att, tgt, mustWeapon(t, "Large Laser"), nil, environment.Standard())
}

func TestWeaponToHitImpossible(t *testing.T) {
	att := unit.New("a", "Attacker", 50)
	att.Pilot.Gunnery = 5
	att.Heat = 13
	att.Move = unit.MoveState{Mode: unit.MoveJumped, Hexes: 5}
	att.Pos = hexmap.Coord{Col: 0, Row: 5}

	tgt := unit.New("t", "Target", 50)
	tgt.Pos = hexmap.Coord{Col: 14, Row: 5}
	tgt.Move = unit.MoveState{Mode: unit.MoveRan, Hexes: 11}

	// 5 + 4 long + 3 jumped + 3 TMM + 3 heat = 18.
	th := WeaponToHit(att, tgt, mustWeapon(t, "Large Laser"), nil, environment.Standard())
	if !th.Impossible() {
		t.Errorf("to-hit %d should be impossible", th.Target)
	}
}

func mustWeapon(t *testing.T, key string) catalog.Weapon {
	t.Helper()
	w, err := catalog.Builtin().Weapon(key)
	if err != nil {
		t.Fatal(err)
	}
	return w
}
