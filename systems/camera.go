package systems

import (
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera keeps the camera on the world origin, so the arena stays
// centered in the window whatever its size.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	x, y := cfg.Arena.Origin()
	camera.Position = math.Vec2{X: x, Y: y}
}
