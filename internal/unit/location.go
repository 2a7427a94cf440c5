// Package unit models a single combat unit: per-location armor and
// structure, critical slots, actuators, weapons, heat, pilot state and
// movement for the current turn. The engine never mutates a caller's Unit;
// every resolution pass works on a Clone and returns it.
package unit

// Location indexes the eight hit locations of a standard biped unit.
type Location int

const (
	LocHD Location = iota
	LocCT
	LocLT
	LocRT
	LocLA
	LocRA
	LocLL
	LocRL
	NumLocations
)

var locNames = [NumLocations]string{"HD", "CT", "LT", "RT", "LA", "RA", "LL", "RL"}

func (l Location) String() string {
	if l < 0 || l >= NumLocations {
		return "??"
	}
	return locNames[l]
}

// IsTorso reports whether the location is one of the three torsos.
func (l Location) IsTorso() bool {
	return l == LocCT || l == LocLT || l == LocRT
}

// IsArm reports whether the location is an arm.
func (l Location) IsArm() bool { return l == LocLA || l == LocRA }

// IsLeg reports whether the location is a leg.
func (l Location) IsLeg() bool { return l == LocLL || l == LocRL }

// IsLimb reports whether the location is an arm or a leg.
func (l Location) IsLimb() bool { return l.IsArm() || l.IsLeg() }

// Transfer returns the destination location in the damage transfer chain:
// arm → its side torso, leg → its side torso, side torso → center torso.
// The second return is false for the head and center torso, which have no
// transfer destination.
func (l Location) Transfer() (Location, bool) {
	switch l {
	case LocLA, LocLL:
		return LocLT, true
	case LocRA, LocRL:
		return LocRT, true
	case LocLT, LocRT:
		return LocCT, true
	default:
		return l, false
	}
}

// AttachedArm returns the arm cascaded by a side torso's destruction.
func (l Location) AttachedArm() (Location, bool) {
	switch l {
	case LocLT:
		return LocLA, true
	case LocRT:
		return LocRA, true
	default:
		return 0, false
	}
}

// rearIndex maps a torso location to its rear-armor slot.
func rearIndex(l Location) int { return int(l) - 1 }
