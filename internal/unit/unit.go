package unit

import (
	"fmt"
	"math"

	"github.com/SwiggitySwerve/mekstation/internal/hexmap"
)

// ─── Internal structure by tonnage ──────────────────────────────────────────

var structureTable = map[int][NumLocations]int{
	20:  {3, 6, 5, 5, 3, 3, 4, 4},
	25:  {3, 8, 6, 6, 4, 4, 6, 6},
	30:  {3, 10, 7, 7, 5, 5, 7, 7},
	35:  {3, 11, 8, 8, 6, 6, 8, 8},
	40:  {3, 12, 10, 10, 6, 6, 10, 10},
	45:  {3, 14, 11, 11, 7, 7, 11, 11},
	50:  {3, 16, 12, 12, 8, 8, 12, 12},
	55:  {3, 18, 13, 13, 9, 9, 13, 13},
	60:  {3, 20, 14, 14, 10, 10, 14, 14},
	65:  {3, 21, 15, 15, 10, 10, 15, 15},
	70:  {3, 22, 15, 15, 11, 11, 15, 15},
	75:  {3, 23, 16, 16, 12, 12, 16, 16},
	80:  {3, 25, 17, 17, 13, 13, 17, 17},
	85:  {3, 27, 18, 18, 14, 14, 18, 18},
	90:  {3, 29, 19, 19, 15, 15, 19, 19},
	95:  {3, 30, 20, 20, 16, 16, 20, 20},
	100: {3, 31, 21, 21, 17, 17, 21, 21},
}

// StructureForTonnage returns the per-location internal structure for a
// tonnage, rounding down to the nearest table entry.
func StructureForTonnage(tons int) [NumLocations]int {
	if v, ok := structureTable[tons]; ok {
		return v
	}
	best := 20
	for t := range structureTable {
		if t <= tons && t > best {
			best = t
		}
	}
	return structureTable[best]
}

// ─── Movement ───────────────────────────────────────────────────────────────

type MoveMode int

const (
	MoveStationary MoveMode = iota
	MoveWalked
	MoveRan
	MoveJumped
)

func (m MoveMode) String() string {
	switch m {
	case MoveStationary:
		return "stationary"
	case MoveWalked:
		return "walked"
	case MoveRan:
		return "ran"
	case MoveJumped:
		return "jumped"
	default:
		return "unknown"
	}
}

// MoveState records how the unit moved this turn.
type MoveState struct {
	Mode  MoveMode
	Hexes int
}

// ─── Actuators ──────────────────────────────────────────────────────────────

// ArmActuators tracks destroyed actuators in one arm. A destroyed shoulder
// forbids punching; upper/lower arm hits penalize and halve punch damage.
type ArmActuators struct {
	Shoulder bool
	UpperArm bool
	LowerArm bool
	Hand     bool
}

// LegActuators tracks destroyed actuators in one leg.
type LegActuators struct {
	Hip      bool
	UpperLeg bool
	LowerLeg bool
	Foot     bool
}

// ─── Weapons ────────────────────────────────────────────────────────────────

// MeleeWeaponKind identifies a mounted melee weapon.
type MeleeWeaponKind int

const (
	MeleeNone MeleeWeaponKind = iota
	MeleeHatchet
	MeleeSword
	MeleeMace
)

// Mount is a weapon mounted on the unit, referencing catalog data by key.
type Mount struct {
	ID        string
	WeaponKey string // catalog lookup key
	Location  Location
	AmmoKey   string // empty for energy weapons
	Artemis   bool   // Artemis FCS slaved to this launcher
	Destroyed bool
	Jammed    bool
	Fired     bool // fired this turn (arms that fired may not punch)
}

// ─── Pilot ──────────────────────────────────────────────────────────────────

// Pilot holds skill and wound state. Consciousness checks themselves belong
// to the pilot-state collaborator; the engine only records wounds and emits
// the required check target.
type Pilot struct {
	Gunnery     int
	Piloting    int
	Wounds      int
	Unconscious bool
}

// Dead reports whether accumulated wounds have killed the pilot.
func (p Pilot) Dead() bool { return p.Wounds >= 6 }

// ─── Unit ───────────────────────────────────────────────────────────────────

type Unit struct {
	ID      string
	Name    string
	Tonnage int

	WalkMP int
	RunMP  int
	JumpMP int

	// Per-location state. RearArmor is indexed by rearIndex and only
	// meaningful for the three torsos.
	Armor        [NumLocations]int
	RearArmor    [3]int
	Structure    [NumLocations]int
	MaxStructure [NumLocations]int
	Slots        [NumLocations][]string
	CASE         [NumLocations]bool
	CASEII       [NumLocations]bool

	Arms [NumLocations]ArmActuators
	Legs [NumLocations]LegActuators

	Weapons []Mount
	Ammo    map[string]int

	Melee         MeleeWeaponKind
	MeleeLocation Location

	Heat  int
	Pilot Pilot

	// Engine configuration flags.
	XLEngine     bool
	ClanXLEngine bool
	TSMActive    bool

	// Electronics and defensive systems.
	HasAMS      bool
	AMSAmmo     int
	AMSUsed     bool
	ECMActive   bool
	NarcPodded  bool // homing pod attached to this unit
	TaggedTurn  bool // TAG designation for the remainder of the turn
	HasTAG      bool

	// Accumulated critical effects.
	EngineHits       int
	GyroHits         int
	SensorHits       int
	CockpitDestroyed bool
	Prone            bool

	// Turn state.
	Pos         hexmap.Coord
	Move        MoveState
	Facing      int
	TorsoTwist  int
	PhaseDamage int // cumulative damage this phase, drives the 20+ PSR

	// Physical-attack bookkeeping: limbs already spent this turn.
	LimbUsed [NumLocations]bool
}

// New returns a unit with structure initialized from the tonnage table and
// all locations intact.
func New(id, name string, tonnage int) *Unit {
	st := StructureForTonnage(tonnage)
	u := &Unit{
		ID:      id,
		Name:    name,
		Tonnage: tonnage,
		Ammo:    make(map[string]int),
	}
	u.Structure = st
	u.MaxStructure = st
	return u
}

// Clone returns a deep copy. Resolution passes clone the incoming state and
// mutate only the copy.
func (u *Unit) Clone() *Unit {
	c := &Unit{}
	*c = *u
	c.Weapons = make([]Mount, len(u.Weapons))
	copy(c.Weapons, u.Weapons)
	c.Ammo = make(map[string]int, len(u.Ammo))
	for k, v := range u.Ammo {
		c.Ammo[k] = v
	}
	for i := range c.Slots {
		if u.Slots[i] != nil {
			c.Slots[i] = make([]string, len(u.Slots[i]))
			copy(c.Slots[i], u.Slots[i])
		}
	}
	return c
}

// ArmorAt returns the armor points facing the given direction at a location.
func (u *Unit) ArmorAt(loc Location, rear bool) int {
	if rear && loc.IsTorso() {
		return u.RearArmor[rearIndex(loc)]
	}
	return u.Armor[loc]
}

// SetArmorAt sets armor at a location/facing. Negative values are a
// contract violation.
func (u *Unit) SetArmorAt(loc Location, rear bool, v int) {
	if v < 0 {
		panic(fmt.Sprintf("unit: negative armor %d at %s", v, loc))
	}
	if rear && loc.IsTorso() {
		u.RearArmor[rearIndex(loc)] = v
		return
	}
	u.Armor[loc] = v
}

// LocationDestroyed reports whether a location's structure is gone.
func (u *Unit) LocationDestroyed(loc Location) bool {
	return u.Structure[loc] <= 0
}

// DestroyLocation zeroes a location's structure and marks every weapon and
// slot within it destroyed.
func (u *Unit) DestroyLocation(loc Location) {
	u.Structure[loc] = 0
	for i := range u.Weapons {
		if u.Weapons[i].Location == loc {
			u.Weapons[i].Destroyed = true
		}
	}
}

// WeaponByID returns the mount with the given id. Unknown ids are a
// contract violation.
func (u *Unit) WeaponByID(id string) *Mount {
	for i := range u.Weapons {
		if u.Weapons[i].ID == id {
			return &u.Weapons[i]
		}
	}
	panic(fmt.Sprintf("unit: unknown weapon id %q on %s", id, u.ID))
}

// Destroyed reports whether the unit is out of the fight: center torso or
// head gone, pilot dead, or three engine hits. XL engines also die with a
// side torso (Inner Sphere) or both side torsos (Clan).
func (u *Unit) Destroyed() bool {
	if u.Pilot.Dead() || u.CockpitDestroyed || u.EngineHits >= 3 {
		return true
	}
	if u.Structure[LocCT] <= 0 || u.Structure[LocHD] <= 0 {
		return true
	}
	if u.XLEngine && !u.ClanXLEngine {
		if u.Structure[LocLT] <= 0 || u.Structure[LocRT] <= 0 {
			return true
		}
	}
	if u.ClanXLEngine {
		if u.Structure[LocLT] <= 0 && u.Structure[LocRT] <= 0 {
			return true
		}
	}
	return false
}

// EffectiveWalkMP applies leg destruction and heat to the base walk MP.
func (u *Unit) EffectiveWalkMP() int {
	if u.Structure[LocLL] <= 0 || u.Structure[LocRL] <= 0 {
		return 0
	}
	mp := u.WalkMP - u.legActuatorPenalty() - HeatMPReduction(u.Heat)
	if mp < 0 {
		mp = 0
	}
	return mp
}

// EffectiveRunMP is 1.5× effective walk, rounded up.
func (u *Unit) EffectiveRunMP() int {
	return int(math.Ceil(float64(u.EffectiveWalkMP()) * 1.5))
}

func (u *Unit) legActuatorPenalty() int {
	pen := 0
	for _, loc := range []Location{LocLL, LocRL} {
		legs := u.Legs[loc]
		if legs.Hip {
			pen += 2
			continue
		}
		for _, hit := range []bool{legs.UpperLeg, legs.LowerLeg, legs.Foot} {
			if hit {
				pen++
			}
		}
	}
	return pen
}

// ResetTurn clears per-turn bookkeeping at the start of a new turn.
func (u *Unit) ResetTurn() {
	u.AMSUsed = false
	u.TaggedTurn = false
	u.PhaseDamage = 0
	u.Move = MoveState{}
	for i := range u.Weapons {
		u.Weapons[i].Fired = false
	}
	u.LimbUsed = [NumLocations]bool{}
}

// ─── Heat scale ─────────────────────────────────────────────────────────────

// HeatToHitMod returns the attack penalty for the unit's current heat:
// 0 for heat 0-4, +1 for 5-7, +2 for 8-12, +3 for 13 and above.
func HeatToHitMod(heat int) int {
	switch {
	case heat >= 13:
		return 3
	case heat >= 8:
		return 2
	case heat >= 5:
		return 1
	default:
		return 0
	}
}

// HeatMPReduction returns walking MP lost to heat.
func HeatMPReduction(heat int) int {
	switch {
	case heat >= 25:
		return 5
	case heat >= 20:
		return 4
	case heat >= 15:
		return 3
	case heat >= 10:
		return 2
	case heat >= 5:
		return 1
	default:
		return 0
	}
}
