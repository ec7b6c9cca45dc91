package animations

import "math"

// Animation is a looping frame clock measured in seconds. It knows nothing
// about textures; the frame it reports indexes into a Layout.
type Animation struct {
	FrameCount int
	FrameTime  float64 // seconds each frame stays visible
	frame      int
	elapsed    float64
}

// Update adds dt seconds and advances one frame for every full FrameTime
// accumulated, so a long tick skips frames instead of dropping time. It
// returns the number of frames advanced. Non-positive and NaN deltas are
// ignored.
func (a *Animation) Update(dt float64) int {
	if !(dt > 0) || math.IsInf(dt, 0) || a.FrameCount <= 0 || !(a.FrameTime > 0) {
		return 0
	}

	a.elapsed += dt

	// Whole cycles land on the same frame; fold them so the loop below runs
	// at most FrameCount times however long the tick was.
	cycle := a.FrameTime * float64(a.FrameCount)
	folded := 0
	if a.elapsed >= cycle {
		cycles := math.Floor(a.elapsed / cycle)
		a.elapsed -= cycles * cycle
		folded = int(cycles) * a.FrameCount
		if a.elapsed < 0 {
			a.elapsed = 0
		}
	}

	advanced := 0
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame++
		if a.frame >= a.FrameCount {
			a.frame = 0
		}
		advanced++
	}
	return folded + advanced
}

// Frame returns the current frame index in [0, FrameCount).
func (a *Animation) Frame() int {
	return a.frame
}

// Elapsed returns the time spent on the current frame, in [0, FrameTime).
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
}

func NewAnimation(frameCount int, frameTime float64) *Animation {
	return &Animation{
		FrameCount: frameCount,
		FrameTime:  frameTime,
	}
}
