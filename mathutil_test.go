package drawingboard

import (
	"errors"
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		val, x1, x2, y1, y2 float64
		want                float64
	}{
		{0, 0, 10, 0, 100, 0},
		{10, 0, 10, 0, 100, 100},
		{5, 0, 10, 0, 100, 50},
		{15, 0, 10, 0, 100, 150}, // extrapolates
		{5, 10, 0, 0, 100, 50},   // reversed source
		{3, 3, 3, 7, 9, 7},       // degenerate range at its endpoint
	}
	for _, tt := range tests {
		got := Lerp(tt.val, tt.x1, tt.x2, tt.y1, tt.y2)
		if math.Abs(got-tt.want) > epsilon {
			t.Errorf("Lerp(%v, %v, %v, %v, %v) = %v, want %v",
				tt.val, tt.x1, tt.x2, tt.y1, tt.y2, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestAngleConversion(t *testing.T) {
	assertNear(t, "DegreesToRadians(180)", DegreesToRadians(180), math.Pi)
	assertNear(t, "RadiansToDegrees(pi/2)", RadiansToDegrees(math.Pi/2), 90)
}

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(7), NewRandom(7)
	for range 20 {
		if x, y := a.Float(), b.Float(); x != y {
			t.Fatalf("same seed diverged: %v vs %v", x, y)
		}
	}
	a.Seed(7)
	b.Seed(7)
	if a.Max(10) != b.Max(10) {
		t.Error("reseeding did not restart the sequence")
	}
	if a.CurrentSeed() != 7 {
		t.Errorf("CurrentSeed = %d, want 7", a.CurrentSeed())
	}
}

func TestRandomRanges(t *testing.T) {
	r := NewRandom(1)
	for range 1000 {
		v, err := r.Range(-2, 3)
		if err != nil {
			t.Fatal(err)
		}
		if v < -2 || v >= 3 {
			t.Fatalf("Range(-2, 3) = %v", v)
		}
		n, err := r.IntRange(5, 8)
		if err != nil {
			t.Fatal(err)
		}
		if n < 5 || n >= 8 {
			t.Fatalf("IntRange(5, 8) = %d", n)
		}
		if m := r.Max(4); m < 0 || m >= 4 {
			t.Fatalf("Max(4) = %v", m)
		}
	}
}

func TestRandomRangeErrors(t *testing.T) {
	r := NewRandom(1)
	if _, err := r.Range(3, 3); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Range(3, 3) error = %v, want ErrInvalidRange", err)
	}
	if _, err := r.IntRange(4, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("IntRange(4, 1) error = %v, want ErrInvalidRange", err)
	}
}
