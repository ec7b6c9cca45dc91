package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	// Direction is the last non-zero movement input, at most unit length,
	// y pointing up (away from the viewer). Zero until the first input.
	Direction math.Vec2
	// Speed is the movement speed in world units per second; zero when idle.
	Speed float64
}

var Player = donburi.NewComponentType[PlayerData]()
