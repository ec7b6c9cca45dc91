package systems

import (
	"testing"

	"github.com/automoto/lunar-posadas/assets/animations"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	testFrameW = 10
	testFrameH = 20
	testFrames = 4
)

// testRegistry registers every animation as a four frame strip played at
// frameTime seconds per frame.
func testRegistry(t *testing.T, frameTime float64) *animations.Registry {
	t.Helper()
	configs := make([]animations.Config, 0, len(cfg.AllAnimations))
	for _, id := range cfg.AllAnimations {
		configs = append(configs, animations.Config{
			ID:          id,
			Layout:      animations.NewGridLayout(testFrameW, testFrameH, testFrames, 1),
			Texture:     ebiten.NewImage(testFrameW*testFrames, testFrameH),
			Filter:      ebiten.FilterNearest,
			FrameCount:  testFrames,
			FrameTime:   frameTime,
			DisplaySize: math.Vec2{X: 50, Y: 100},
		})
	}
	r, err := animations.NewRegistry(configs...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return r
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// fixedDelta makes every tick last dt seconds until the test ends.
func fixedDelta(t *testing.T, dt float64) {
	t.Helper()
	prev := FrameDelta
	FrameDelta = func() float64 { return dt }
	t.Cleanup(func() { FrameDelta = prev })
}

// hold presses exactly the given actions for the next tick.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := GetOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}
