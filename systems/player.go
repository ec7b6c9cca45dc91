package systems

import (
	stdmath "math"

	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns this tick's input into a movement direction and speed.
// Releasing every direction keeps the last direction and drops the speed to
// zero, so the player idles facing the way they walked.
// Must run AFTER UpdateInput and BEFORE UpdateMovement.
func UpdatePlayer(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	dir := MovementVector(input)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if dir.X == 0 && dir.Y == 0 {
			player.Speed = 0
			return
		}
		player.Direction = dir
		player.Speed = cfg.Player.Speed
	})
}

// normalize scales v to unit length; vectors shorter than 1 (analog input)
// and the zero vector pass through.
func normalize(v math.Vec2) math.Vec2 {
	l := stdmath.Hypot(v.X, v.Y)
	if l <= 1 {
		return v
	}
	return math.Vec2{X: v.X / l, Y: v.Y / l}
}
