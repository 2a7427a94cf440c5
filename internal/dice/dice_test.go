package dice

import (
	"math"
	"testing"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := Seeded(42)
	b := Seeded(42)
	for i := 0; i < 100; i++ {
		av, bv := TwoD6(a), TwoD6(b)
		if av != bv {
			t.Fatalf("roll %d diverged: %d vs %d", i, av, bv)
		}
		if av < 2 || av > 12 {
			t.Fatalf("roll %d out of 2d6 range: %d", i, av)
		}
	}
}

func TestSeededRange(t *testing.T) {
	r := Seeded(7)
	for i := 0; i < 1000; i++ {
		v := D6(r)
		if v < 1 || v > 6 {
			t.Fatalf("D6 = %d, want 1-6", v)
		}
	}
}

func TestSequenceYieldsScriptedValues(t *testing.T) {
	s := NewSequence(3, 4, 6)
	if got := TwoD6(s); got != 7 {
		t.Errorf("TwoD6 = %d, want 7", got)
	}
	if got := D6(s); got != 6 {
		t.Errorf("D6 = %d, want 6", got)
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining())
	}
}

func TestSequencePanicsWhenExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on exhausted sequence")
		}
	}()
	s := NewSequence(1)
	D6(s)
	D6(s)
}

func TestHitProbability(t *testing.T) {
	tests := []struct {
		target int
		want   float64
	}{
		{2, 1.0},
		{7, 21.0 / 36},
		{8, 15.0 / 36},
		{12, 1.0 / 36},
		{13, 0},
	}
	for _, tt := range tests {
		got := HitProbability(tt.target)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("HitProbability(%d) = %.4f, want %.4f", tt.target, got, tt.want)
		}
	}
}
