package factory

import (
	"github.com/automoto/lunar-posadas/archetypes"
	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/components"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateArena creates a wall for every rectangle in layout.
func CreateArena(ecs *ecs.ECS, layout *assets.ArenaLayout) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(layout.Walls))
	for _, r := range layout.Walls {
		walls = append(walls, CreateWall(ecs, r.X, r.Y, r.W, r.H))
	}
	return walls
}
