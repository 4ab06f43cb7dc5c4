package tracer

import (
	"math"
	"testing"
)

func TestIntervalContainsAndSurrounds(t *testing.T) {
	tests := []struct {
		name          string
		interval      Interval
		x             float64
		wantContains  bool
		wantSurrounds bool
	}{
		{"inside", NewInterval(0, 1), 0.5, true, true},
		{"lower bound", NewInterval(0, 1), 0, true, false},
		{"upper bound", NewInterval(0, 1), 1, true, false},
		{"below", NewInterval(0, 1), -0.1, false, false},
		{"above", NewInterval(0, 1), 1.1, false, false},
		{"empty", EmptyInterval, 0, false, false},
		{"universe", UniverseInterval, 1e300, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.interval.Contains(tt.x); got != tt.wantContains {
				t.Errorf("Contains(%v) = %v, expected %v", tt.x, got, tt.wantContains)
			}
			if got := tt.interval.Surrounds(tt.x); got != tt.wantSurrounds {
				t.Errorf("Surrounds(%v) = %v, expected %v", tt.x, got, tt.wantSurrounds)
			}
		})
	}
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(-2, 3)

	if got := i.Clamp(-5); got != -2 {
		t.Errorf("Expected -2, got %v", got)
	}
	if got := i.Clamp(7); got != 3 {
		t.Errorf("Expected 3, got %v", got)
	}
	for _, x := range []float64{-2, 0, 1.25, 3} {
		once := i.Clamp(x)
		if once != x || i.Clamp(once) != once {
			t.Errorf("Clamp should be idempotent for %v inside the interval, got %v", x, once)
		}
	}
}

func TestIntervalSize(t *testing.T) {
	if got := NewInterval(1, 4).Size(); got != 3 {
		t.Errorf("Expected size 3, got %v", got)
	}
	if !math.IsInf(UniverseInterval.Size(), 1) {
		t.Errorf("Universe should have infinite size, got %v", UniverseInterval.Size())
	}
	if EmptyInterval.Size() >= 0 {
		t.Errorf("Empty interval should have negative size, got %v", EmptyInterval.Size())
	}
}
