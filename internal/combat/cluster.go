package combat

import (
	"fmt"

	"github.com/SwiggitySwerve/mekstation/internal/dice"
	"github.com/SwiggitySwerve/mekstation/internal/unit"
)

// ─── Cluster hits table ─────────────────────────────────────────────────────
// One table, indexed by rack size then 2d6 roll. This is the single source
// of truth for cluster counts; nothing else in the engine carries its own
// copy.

// clusterTable maps rack size to hits for rolls 2 through 12.
var clusterTable = map[int][11]int{
	2:  {1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2},
	3:  {1, 1, 1, 2, 2, 2, 2, 2, 3, 3, 3},
	4:  {1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4},
	5:  {1, 2, 2, 3, 3, 3, 3, 4, 4, 5, 5},
	6:  {2, 2, 3, 3, 4, 4, 4, 5, 5, 6, 6},
	7:  {2, 2, 3, 4, 4, 4, 4, 6, 6, 7, 7},
	8:  {3, 3, 4, 4, 5, 5, 5, 6, 6, 8, 8},
	9:  {3, 3, 4, 5, 5, 5, 5, 7, 7, 9, 9},
	10: {3, 3, 4, 6, 6, 6, 6, 8, 8, 10, 10},
	12: {4, 4, 5, 8, 8, 8, 8, 10, 10, 12, 12},
	15: {5, 5, 6, 9, 9, 9, 9, 12, 12, 15, 15},
	20: {6, 6, 9, 12, 12, 12, 12, 16, 16, 20, 20},
	30: {10, 10, 12, 18, 18, 18, 18, 24, 24, 30, 30},
	40: {12, 12, 18, 24, 24, 24, 24, 32, 32, 40, 40},
}

// ClusterHits looks up the number of hits for a rack size and 2d6 roll.
// Unknown rack sizes and rolls outside [2, 12] are contract violations.
func ClusterHits(rackSize, roll int) int {
	row, ok := clusterTable[rackSize]
	if !ok {
		panic(fmt.Sprintf("combat: no cluster column for rack size %d", rackSize))
	}
	if roll < 2 || roll > 12 {
		panic(fmt.Sprintf("combat: cluster roll %d out of range", roll))
	}
	return row[roll-2]
}

// ClusterRollMod sums the guidance modifiers to the cluster roll itself:
// Artemis fire control +2 and a Narc homing pod on the target +2, both
// nullified by active enemy ECM. The weapon's own ClusterMod (MRM -1)
// stacks on top.
func ClusterRollMod(artemis, narcPodded, ecm bool) int {
	mod := 0
	if !ecm {
		if artemis {
			mod += 2
		}
		if narcPodded {
			mod += 2
		}
	}
	return mod
}

// clampClusterRoll pins a modified cluster roll back onto the table.
func clampClusterRoll(roll int) int {
	if roll < 2 {
		return 2
	}
	if roll > 12 {
		return 12
	}
	return roll
}

// interceptMissiles runs the target's anti-missile system against an
// incoming flight: 1d6 missiles are shot down and one round of AMS ammo is
// spent. A second flight in the same turn gets through untouched.
func interceptMissiles(roller dice.Roller, target *unit.Unit, incoming int) int {
	if !target.HasAMS || target.AMSUsed || target.AMSAmmo <= 0 || incoming <= 0 {
		return incoming
	}
	target.AMSUsed = true
	target.AMSAmmo--
	shot := dice.D6(roller)
	incoming -= shot
	if incoming < 0 {
		incoming = 0
	}
	return incoming
}
