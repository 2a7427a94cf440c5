// Package catalog is the equipment-catalog collaborator boundary: immutable
// weapon reference data, ammo capacity tables and loadout definitions. The
// combat engine consumes Weapon values and never mutates them.
package catalog

import (
	"fmt"
	"strings"
)

// Mode describes how a weapon resolves its attack.
type Mode int

const (
	ModeStandard Mode = iota
	ModeCluster       // LRM/SRM/MRM: secondary cluster-table roll
	ModeStreak        // all missiles hit on a confirmed hit
	ModeUltra         // two independent shots, jam on natural 2
	ModeRotary        // 1-6 declared shots, jam on natural 2
	ModeLBX           // slug/cluster toggle
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeCluster:
		return "cluster"
	case ModeStreak:
		return "streak"
	case ModeUltra:
		return "ultra"
	case ModeRotary:
		return "rotary"
	case ModeLBX:
		return "lbx"
	default:
		return "unknown"
	}
}

// ClusterKind distinguishes how cluster hits convert to damage groups.
type ClusterKind int

const (
	ClusterNone       ClusterKind = iota
	ClusterPerMissile             // SRM: fixed damage per missile, own location each
	ClusterGrouped                // LRM/MRM: 1 damage per missile in 5-point groups
)

// Weapon is immutable reference data owned by the catalog.
type Weapon struct {
	Key          string
	Name         string
	Class        string // energy, ballistic, missile
	Mode         Mode
	Cluster      ClusterKind
	Damage       int // per hit (standard/ultra/rotary) or per missile (cluster)
	Heat         int
	MinRange     int
	ShortRange   int
	MediumRange  int
	LongRange    int
	ToHitMod     int
	RackSize     int // launcher/pellet count for cluster-table weapons
	ClusterMod   int // modifier to the cluster-table roll itself (MRM -1)
	AmmoKey      string
	SemiGuided   bool // benefits from TAG designation
}

// NeedsAmmo reports whether firing consumes ammo.
func (w Weapon) NeedsAmmo() bool { return w.AmmoKey != "" }

// RangeBracketMod returns the to-hit contribution for a distance against
// this weapon's own brackets: short +0, medium +2, long +4. Beyond long
// range the shot is invalid and the second return is false.
func (w Weapon) RangeBracketMod(dist int) (int, bool) {
	if dist > w.LongRange || w.LongRange == 0 {
		return 0, false
	}
	switch {
	case dist <= w.ShortRange:
		return 0, true
	case dist <= w.MediumRange:
		return 2, true
	default:
		return 4, true
	}
}

// MinRangeMod returns +1 per hex inside the weapon's minimum range.
func (w Weapon) MinRangeMod(dist int) int {
	if w.MinRange > 0 && dist <= w.MinRange {
		return w.MinRange - dist + 1
	}
	return 0
}

// Source resolves weapon reference data by key.
type Source interface {
	Weapon(key string) (Weapon, error)
}

// Static is an in-memory Source used by tests and as the built-in fallback
// catalog for the skirmish runner.
type Static map[string]Weapon

func (s Static) Weapon(key string) (Weapon, error) {
	if w, ok := s[key]; ok {
		return w, nil
	}
	return Weapon{}, fmt.Errorf("catalog: unknown weapon %q", key)
}

// ─── Ammo tables ────────────────────────────────────────────────────────────

var ammoPerTon = map[string]int{
	"AC/2": 45, "AC/5": 20, "AC/10": 10, "AC/20": 5,
	"LRM-5": 24, "LRM-10": 12, "LRM-15": 8, "LRM-20": 6,
	"SRM-2": 50, "SRM-4": 25, "SRM-6": 15,
	"Streak SRM-2": 50, "Streak SRM-4": 25, "Streak SRM-6": 15,
	"MRM-10": 24, "MRM-20": 12, "MRM-30": 8, "MRM-40": 6,
	"Ultra AC/2": 45, "Ultra AC/5": 20, "Ultra AC/10": 10, "Ultra AC/20": 5,
	"LB 2-X AC": 45, "LB 5-X AC": 20, "LB 10-X AC": 10, "LB 20-X AC": 5,
	"Rotary AC/2": 45, "Rotary AC/5": 20,
	"Gauss Rifle": 8, "Machine Gun": 200,
	"AMS": 12,
}

// RoundsPerTon returns the shots one ton of ammo provides for an ammo key,
// 0 when unknown.
func RoundsPerTon(ammoKey string) int {
	return ammoPerTon[ammoKey]
}

// AmmoDamagePerShot estimates the damage one remaining round contributes to
// an ammo explosion.
func AmmoDamagePerShot(ammoKey string) int {
	k := strings.ToLower(ammoKey)
	switch {
	case strings.Contains(k, "ac/20"):
		return 20
	case strings.Contains(k, "ac/10"):
		return 10
	case strings.Contains(k, "ac/5"):
		return 5
	case strings.Contains(k, "ac/2"):
		return 2
	case strings.Contains(k, "gauss"):
		// Gauss rounds are inert; the weapon explodes, not the ammo.
		return 0
	case strings.Contains(k, "srm"):
		return 2
	case strings.Contains(k, "lrm"), strings.Contains(k, "mrm"):
		return 1
	default:
		return 5
	}
}
