package unit

import "testing"

func TestStructureForTonnage(t *testing.T) {
	tests := []struct {
		tons int
		loc  Location
		want int
	}{
		{20, LocCT, 6},
		{50, LocCT, 16},
		{80, LocCT, 25},
		{100, LocCT, 31},
		{80, LocHD, 3},
		{80, LocLA, 13},
		{47, LocCT, 14}, // rounds down to 45-ton row
	}
	for _, tt := range tests {
		st := StructureForTonnage(tt.tons)
		if got := st[tt.loc]; got != tt.want {
			t.Errorf("StructureForTonnage(%d)[%s] = %d, want %d", tt.tons, tt.loc, got, tt.want)
		}
	}
}

func TestTransferChain(t *testing.T) {
	tests := []struct {
		from Location
		want Location
		ok   bool
	}{
		{LocLA, LocLT, true},
		{LocRA, LocRT, true},
		{LocLL, LocLT, true},
		{LocRL, LocRT, true},
		{LocLT, LocCT, true},
		{LocRT, LocCT, true},
		{LocCT, LocCT, false},
		{LocHD, LocHD, false},
	}
	for _, tt := range tests {
		got, ok := tt.from.Transfer()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.Transfer() = %s, %v, want %s, %v", tt.from, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDestroyedConditions(t *testing.T) {
	u := New("u1", "Test", 50)
	if u.Destroyed() {
		t.Fatal("fresh unit reported destroyed")
	}

	ct := New("u2", "Test", 50)
	ct.Structure[LocCT] = 0
	if !ct.Destroyed() {
		t.Error("CT structure 0 should destroy the unit")
	}

	pilot := New("u3", "Test", 50)
	pilot.Pilot.Wounds = 6
	if !pilot.Destroyed() {
		t.Error("6 pilot wounds should destroy the unit")
	}

	xl := New("u4", "Test", 50)
	xl.XLEngine = true
	xl.Structure[LocLT] = 0
	if !xl.Destroyed() {
		t.Error("IS XL engine should die with one side torso")
	}

	clan := New("u5", "Test", 50)
	clan.XLEngine = true
	clan.ClanXLEngine = true
	clan.Structure[LocLT] = 0
	if clan.Destroyed() {
		t.Error("Clan XL should survive one side torso")
	}
	clan.Structure[LocRT] = 0
	if !clan.Destroyed() {
		t.Error("Clan XL should die with both side torsos")
	}
}

func TestCloneIsDeep(t *testing.T) {
	u := New("u1", "Test", 50)
	u.Weapons = []Mount{{ID: "w1", WeaponKey: "Medium Laser", Location: LocRA}}
	u.Ammo["lrm"] = 12
	u.Slots[LocRA] = []string{"Medium Laser"}

	c := u.Clone()
	c.Weapons[0].Destroyed = true
	c.Ammo["lrm"] = 0
	c.Slots[LocRA][0] = "-Empty-"
	c.Armor[LocCT] = 99

	if u.Weapons[0].Destroyed {
		t.Error("clone shares Weapons slice")
	}
	if u.Ammo["lrm"] != 12 {
		t.Error("clone shares Ammo map")
	}
	if u.Slots[LocRA][0] != "Medium Laser" {
		t.Error("clone shares Slots")
	}
	if u.Armor[LocCT] == 99 {
		t.Error("clone shares armor array")
	}
}

func TestHeatToHitMod(t *testing.T) {
	tests := []struct{ heat, want int }{
		{0, 0}, {4, 0}, {5, 1}, {7, 1}, {8, 2}, {12, 2}, {13, 3}, {30, 3},
	}
	for _, tt := range tests {
		if got := HeatToHitMod(tt.heat); got != tt.want {
			t.Errorf("HeatToHitMod(%d) = %d, want %d", tt.heat, got, tt.want)
		}
	}
}

func TestEffectiveWalkMP(t *testing.T) {
	u := New("u1", "Test", 50)
	u.WalkMP = 5
	if got := u.EffectiveWalkMP(); got != 5 {
		t.Errorf("EffectiveWalkMP = %d, want 5", got)
	}
	u.Heat = 10
	if got := u.EffectiveWalkMP(); got != 3 {
		t.Errorf("EffectiveWalkMP at heat 10 = %d, want 3", got)
	}
	u.Legs[LocLL].Hip = true
	if got := u.EffectiveWalkMP(); got != 1 {
		t.Errorf("EffectiveWalkMP with hip hit = %d, want 1", got)
	}
	u.Structure[LocRL] = 0
	if got := u.EffectiveWalkMP(); got != 0 {
		t.Errorf("EffectiveWalkMP with leg destroyed = %d, want 0", got)
	}
}
