package bezier

import (
	"math"
	"testing"
)

func TestWiggleInterval(t *testing.T) {
	f := func(value, want float64, wantOK bool) {
		got, ok := WiggleInterval(value)
		if ok != wantOK {
			t.Errorf("WiggleInterval(%v) ok = %v, want %v", value, ok, wantOK)
			return
		}
		if ok && got != want {
			t.Errorf("WiggleInterval(%v) = %v, want %v", value, got, want)
		}
	}

	// values inside [0, 1] pass through unchanged
	f(0.5, 0.5, true)
	f(0.0, 0.0, true)
	f(1.0, 1.0, true)
	f(0.25, 0.25, true)

	// rounding noise snaps onto the boundary
	f(-1e-16, 0.0, true)
	f(1.0+1e-16, 1.0, true)
	f(-0x1p-45, 0.0, true)
	f(math.Nextafter(0, -1), 0.0, true)
	f(math.Nextafter(1, 2), 1.0, true)
	f(1.0+0x1p-45, 1.0, true)

	// too far outside to be a rounding artifact
	f(-0.5, 0, false)
	f(1.5, 0, false)
	f(2.0, 0, false)
	f(-0x1p-40, 0, false)
	f(1.0+0x1p-40, 0, false)
}

func TestWiggleIntervalIdempotent(t *testing.T) {
	values := []float64{
		0.0, 1.0, 0.5, 0.25, 1e-3,
		-1e-16, 1.0 + 1e-16,
		-0x1p-45, 1.0 + 0x1p-45,
		math.Nextafter(0, -1), math.Nextafter(1, 2),
	}
	for _, value := range values {
		once, ok := WiggleInterval(value)
		if !ok {
			t.Errorf("WiggleInterval(%v) unexpectedly failed", value)
			continue
		}
		twice, ok := WiggleInterval(once)
		if !ok || twice != once {
			t.Errorf("WiggleInterval(%v) = (%v, %v), want (%v, true)", once, twice, ok, once)
		}
	}
}

func TestIntervalContains(t *testing.T) {
	f := func(value, start, end float64, want bool) {
		if got := (Interval{start, end}).Contains(value); got != want {
			t.Errorf("Contains(%v) in [%v, %v] = %v, want %v", value, start, end, got, want)
		}
	}
	f(0.5, 0, 1, true)
	// closed on both ends
	f(0, 0, 1, true)
	f(1, 0, 1, true)
	// no tolerance, unlike WiggleInterval
	f(1.0000001, 0, 1, false)
	f(math.Nextafter(1, 2), 0, 1, false)
	f(math.Nextafter(0, -1), 0, 1, false)
	f(-3, -4, -2, true)
	f(2.5, 2.5, 2.5, true)
}

func TestIntervalReversed(t *testing.T) {
	iv := Interval{1, 0}
	if !iv.IsEmpty() {
		t.Errorf("expected %v to be empty", iv)
	}
	for _, value := range []float64{-1, 0, 0.5, 1, 2, math.Inf(1), math.NaN()} {
		if iv.Contains(value) {
			t.Errorf("reversed interval %v contains %v", iv, value)
		}
	}
}

func TestIntervalLength(t *testing.T) {
	diff(t, 1.0, UnitInterval.Length())
	diff(t, -1.0, Interval{1, 0}.Length())
	diff(t, 0.0, Interval{2.5, 2.5}.Length())
	if UnitInterval.IsEmpty() || (Interval{2.5, 2.5}).IsEmpty() {
		t.Error("expected non-empty interval")
	}
}
