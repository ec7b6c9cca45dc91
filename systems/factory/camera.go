package factory

import (
	"github.com/automoto/lunar-posadas/archetypes"
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	x, y := cfg.Arena.Origin()
	components.Camera.Set(camera, &components.CameraData{Position: math.Vec2{X: x, Y: y}})
}
