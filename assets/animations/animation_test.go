package animations

import (
	"math"
	"testing"
)

const eps = 1e-9

// at puts a at frame with elapsed seconds already spent on it.
func at(a *Animation, frame int, elapsed float64) {
	a.frame = frame
	a.elapsed = elapsed
}

func TestAnimationCarriesOneWrap(t *testing.T) {
	a := NewAnimation(4, 0.5)
	at(a, 3, 0.4)

	if n := a.Update(0.3); n != 1 {
		t.Fatalf("Update advanced %d frames, want 1", n)
	}
	if a.Frame() != 0 {
		t.Fatalf("frame = %d, want 0", a.Frame())
	}
	if math.Abs(a.Elapsed()-0.2) > eps {
		t.Fatalf("elapsed = %v, want 0.2", a.Elapsed())
	}
}

func TestAnimationAdvancesSeveralFramesInOneTick(t *testing.T) {
	a := NewAnimation(4, 0.5)
	if n := a.Update(1.3); n != 2 {
		t.Fatalf("Update advanced %d frames, want 2", n)
	}
	if a.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", a.Frame())
	}
	if math.Abs(a.Elapsed()-0.3) > eps {
		t.Fatalf("elapsed = %v, want 0.3", a.Elapsed())
	}
}

func TestAnimationCycling(t *testing.T) {
	tests := []struct {
		name       string
		frameCount int
		frameTime  float64
		dt         float64
		ticks      int
	}{
		{"sub frame ticks", 3, 0.5, 0.125, 40},
		{"exact frame ticks", 4, 0.25, 0.25, 17},
		{"multi frame ticks", 4, 0.5, 1.25, 9},
		{"ticks longer than a cycle", 3, 0.25, 2.0, 5},
		{"single frame", 1, 0.5, 0.75, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnimation(tc.frameCount, tc.frameTime)
			for k := 1; k <= tc.ticks; k++ {
				a.Update(tc.dt)

				want := int(math.Floor(float64(k)*tc.dt/tc.frameTime)) % tc.frameCount
				if a.Frame() != want {
					t.Fatalf("tick %d: frame = %d, want %d", k, a.Frame(), want)
				}
				if a.Frame() < 0 || a.Frame() >= tc.frameCount {
					t.Fatalf("tick %d: frame %d out of range", k, a.Frame())
				}
				if a.Elapsed() < 0 || a.Elapsed() >= tc.frameTime {
					t.Fatalf("tick %d: elapsed %v out of [0, %v)", k, a.Elapsed(), tc.frameTime)
				}
			}
		})
	}
}

func TestAnimationIgnoresBadDeltas(t *testing.T) {
	a := NewAnimation(3, 0.5)
	at(a, 1, 0.25)
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if n := a.Update(dt); n != 0 {
			t.Fatalf("Update(%v) advanced %d frames", dt, n)
		}
	}
	if a.Frame() != 1 || a.Elapsed() != 0.25 {
		t.Fatalf("state changed: frame=%d elapsed=%v", a.Frame(), a.Elapsed())
	}
}

func TestAnimationHugeDeltaIsBounded(t *testing.T) {
	a := NewAnimation(4, 0.5)
	a.Update(1e12 + 0.75)
	if a.Frame() < 0 || a.Frame() >= 4 {
		t.Fatalf("frame %d out of range", a.Frame())
	}
	if a.Elapsed() < 0 || a.Elapsed() >= 0.5 {
		t.Fatalf("elapsed %v out of range", a.Elapsed())
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(4, 0.5)
	a.Update(1.7)
	a.Restart()
	if a.Frame() != 0 || a.Elapsed() != 0 {
		t.Fatalf("restart left frame=%d elapsed=%v", a.Frame(), a.Elapsed())
	}
}
