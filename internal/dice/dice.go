// Package dice provides the injectable randomness source for the combat
// resolution engine. All engine randomness flows through a Roller so that
// identical (state, input, seed) reproduces identical outputs.
package dice

import (
	"fmt"
	"math/rand/v2"
)

// Roller is the randomness provider for dice rolls.
//
// Roll returns a uniform value in [1, sides]. Implementations need not be
// safe for concurrent use; the engine is single-threaded by contract.
type Roller interface {
	Roll(sides int) int
}

// D6 rolls one six-sided die.
func D6(r Roller) int { return r.Roll(6) }

// TwoD6 rolls two six-sided dice and returns the sum.
func TwoD6(r Roller) int { return r.Roll(6) + r.Roll(6) }

// D100 rolls a percentile die.
func D100(r Roller) int { return r.Roll(100) }

// seeded is a deterministic Roller backed by a PCG source.
type seeded struct {
	rng *rand.Rand
}

// Seeded returns a deterministic Roller. The same seed always yields the
// same roll sequence.
func Seeded(seed uint64) Roller {
	return &seeded{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seeded) Roll(sides int) int {
	if sides <= 0 {
		panic(fmt.Sprintf("dice: Roll called with sides=%d", sides))
	}
	return s.rng.IntN(sides) + 1
}

// Sequence is a scripted Roller for tests. Each Roll pops the next value;
// rolling past the end is a contract violation and panics.
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence that yields the given values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Roll(sides int) int {
	if s.next >= len(s.values) {
		panic("dice: Sequence exhausted")
	}
	v := s.values[s.next]
	s.next++
	if v < 1 || v > sides {
		panic(fmt.Sprintf("dice: scripted value %d out of range for d%d", v, sides))
	}
	return v
}

// Remaining reports how many scripted values are left unconsumed.
func (s *Sequence) Remaining() int { return len(s.values) - s.next }

// ─── 2d6 probability table ──────────────────────────────────────────────────

var pHitTable = [13]float64{
	0, 0, 1.0, 35.0 / 36, 33.0 / 36, 30.0 / 36, 26.0 / 36,
	21.0 / 36, 15.0 / 36, 10.0 / 36, 6.0 / 36, 3.0 / 36, 1.0 / 36,
}

// HitProbability returns the chance of rolling target or higher on 2d6.
func HitProbability(target int) float64 {
	if target <= 2 {
		return 1.0
	}
	if target >= 13 {
		return 0.0
	}
	return pHitTable[target]
}
