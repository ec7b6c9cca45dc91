package systems

import (
	"math"

	"github.com/automoto/lunar-posadas/components"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates each player's direction and speed into its
// collision object, stopping flush against arena walls.
// Must run AFTER UpdatePlayer.
func UpdateMovement(ecs *ecs.ECS) {
	dt := FrameDelta()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.Speed <= 0 {
			return
		}
		obj := components.Object.Get(e)

		// Object space is y-down, input is y-up.
		dx := player.Direction.X * player.Speed * dt
		dy := -player.Direction.Y * player.Speed * dt

		moveAxis(obj.Object, dx, 0)
		moveAxis(obj.Object, 0, dy)
	})
}

// moveAxis moves object along a single axis, stopping flush against the
// first solid in the way. Check only looks at the destination cells, so long
// moves are taken one cell at a time.
func moveAxis(object *resolv.Object, dx, dy float64) {
	if object.Space == nil {
		object.X += dx
		object.Y += dy
		return
	}

	limit := float64(object.Space.CellWidth)
	if dy != 0 {
		limit = float64(object.Space.CellHeight)
	}
	for dx != 0 || dy != 0 {
		sx, sy := clampStep(dx, limit), clampStep(dy, limit)
		mx, my := clipStep(object, sx, sy)
		object.X += mx
		object.Y += my
		object.Update()
		if mx != sx || my != sy {
			return // blocked
		}
		dx -= sx
		dy -= sy
	}
}

// clipStep shortens a single step to stop at the nearest solid in the way.
func clipStep(object *resolv.Object, dx, dy float64) (float64, float64) {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return dx, dy
	}
	for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
		// The broadphase is per cell; skip solids beside the path.
		if !blocks(object, wall, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(wall)
		if dx != 0 && contact.X()*dx >= 0 && math.Abs(contact.X()) < math.Abs(dx) {
			dx = contact.X()
		}
		if dy != 0 && contact.Y()*dy >= 0 && math.Abs(contact.Y()) < math.Abs(dy) {
			dy = contact.Y()
		}
	}
	return dx, dy
}

func clampStep(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}

// blocks reports whether wall overlaps object across the axis it moves on.
func blocks(object, wall *resolv.Object, dx, dy float64) bool {
	if dx != 0 {
		return wall.Y < object.Y+object.H && wall.Y+wall.H > object.Y
	}
	return wall.X < object.X+object.W && wall.X+wall.W > object.X
}
