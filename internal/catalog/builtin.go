package catalog

// Builtin returns the built-in weapon catalog covering the common Inner
// Sphere loadout. The skirmish runner falls back to it when no SQLite
// catalog is configured; tests use it directly.
func Builtin() Static {
	weapons := []Weapon{
		{Key: "Small Laser", Name: "Small Laser", Class: "energy", Damage: 3, Heat: 1, ShortRange: 1, MediumRange: 2, LongRange: 3},
		{Key: "Medium Laser", Name: "Medium Laser", Class: "energy", Damage: 5, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9},
		{Key: "Large Laser", Name: "Large Laser", Class: "energy", Damage: 8, Heat: 8, ShortRange: 5, MediumRange: 10, LongRange: 15},
		{Key: "PPC", Name: "PPC", Class: "energy", Damage: 10, Heat: 10, MinRange: 3, ShortRange: 6, MediumRange: 12, LongRange: 18},

		{Key: "AC/2", Name: "AC/2", Class: "ballistic", Damage: 2, Heat: 1, MinRange: 4, ShortRange: 8, MediumRange: 16, LongRange: 24, AmmoKey: "AC/2"},
		{Key: "AC/5", Name: "AC/5", Class: "ballistic", Damage: 5, Heat: 1, MinRange: 3, ShortRange: 6, MediumRange: 12, LongRange: 18, AmmoKey: "AC/5"},
		{Key: "AC/10", Name: "AC/10", Class: "ballistic", Damage: 10, Heat: 3, ShortRange: 5, MediumRange: 10, LongRange: 15, AmmoKey: "AC/10"},
		{Key: "AC/20", Name: "AC/20", Class: "ballistic", Damage: 20, Heat: 7, ShortRange: 3, MediumRange: 6, LongRange: 9, AmmoKey: "AC/20"},
		{Key: "Gauss Rifle", Name: "Gauss Rifle", Class: "ballistic", Damage: 15, Heat: 1, MinRange: 2, ShortRange: 7, MediumRange: 15, LongRange: 22, AmmoKey: "Gauss Rifle"},
		{Key: "Machine Gun", Name: "Machine Gun", Class: "ballistic", Damage: 2, ShortRange: 1, MediumRange: 2, LongRange: 3, AmmoKey: "Machine Gun"},

		{Key: "Ultra AC/5", Name: "Ultra AC/5", Class: "ballistic", Mode: ModeUltra, Damage: 5, Heat: 1, MinRange: 2, ShortRange: 6, MediumRange: 13, LongRange: 20, AmmoKey: "Ultra AC/5"},
		{Key: "Rotary AC/5", Name: "Rotary AC/5", Class: "ballistic", Mode: ModeRotary, Damage: 5, Heat: 1, ShortRange: 5, MediumRange: 10, LongRange: 15, AmmoKey: "Rotary AC/5"},
		{Key: "LB 10-X AC", Name: "LB 10-X AC", Class: "ballistic", Mode: ModeLBX, Damage: 10, Heat: 2, ShortRange: 6, MediumRange: 12, LongRange: 18, RackSize: 10, AmmoKey: "LB 10-X AC"},

		{Key: "LRM-5", Name: "LRM-5", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 2, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, RackSize: 5, AmmoKey: "LRM-5"},
		{Key: "LRM-10", Name: "LRM-10", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 4, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, RackSize: 10, AmmoKey: "LRM-10"},
		{Key: "LRM-15", Name: "LRM-15", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 5, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, RackSize: 15, AmmoKey: "LRM-15"},
		{Key: "LRM-20", Name: "LRM-20", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 6, MinRange: 6, ShortRange: 7, MediumRange: 14, LongRange: 21, RackSize: 20, AmmoKey: "LRM-20", SemiGuided: true},
		{Key: "SRM-2", Name: "SRM-2", Class: "missile", Mode: ModeCluster, Cluster: ClusterPerMissile, Damage: 2, Heat: 2, ShortRange: 3, MediumRange: 6, LongRange: 9, RackSize: 2, AmmoKey: "SRM-2"},
		{Key: "SRM-4", Name: "SRM-4", Class: "missile", Mode: ModeCluster, Cluster: ClusterPerMissile, Damage: 2, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9, RackSize: 4, AmmoKey: "SRM-4"},
		{Key: "SRM-6", Name: "SRM-6", Class: "missile", Mode: ModeCluster, Cluster: ClusterPerMissile, Damage: 2, Heat: 4, ShortRange: 3, MediumRange: 6, LongRange: 9, RackSize: 6, AmmoKey: "SRM-6"},
		{Key: "Streak SRM-2", Name: "Streak SRM-2", Class: "missile", Mode: ModeStreak, Cluster: ClusterPerMissile, Damage: 2, Heat: 2, ShortRange: 3, MediumRange: 6, LongRange: 9, RackSize: 2, AmmoKey: "Streak SRM-2"},
		{Key: "Streak SRM-4", Name: "Streak SRM-4", Class: "missile", Mode: ModeStreak, Cluster: ClusterPerMissile, Damage: 2, Heat: 3, ShortRange: 3, MediumRange: 6, LongRange: 9, RackSize: 4, AmmoKey: "Streak SRM-4"},
		{Key: "MRM-20", Name: "MRM-20", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 6, ShortRange: 3, MediumRange: 8, LongRange: 15, ToHitMod: 1, RackSize: 20, ClusterMod: -1, AmmoKey: "MRM-20"},
		{Key: "MRM-40", Name: "MRM-40", Class: "missile", Mode: ModeCluster, Cluster: ClusterGrouped, Damage: 1, Heat: 12, ShortRange: 3, MediumRange: 8, LongRange: 15, ToHitMod: 1, RackSize: 40, ClusterMod: -1, AmmoKey: "MRM-40"},
	}

	out := make(Static, len(weapons))
	for _, w := range weapons {
		out[w.Key] = w
	}
	return out
}
