package factory

import (
	"github.com/automoto/lunar-posadas/archetypes"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centered on the world point (x, y), y up,
// playing the default animation.
func CreatePlayer(ecs *ecs.ECS, registry *animations.Registry, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	sx, sy := cfg.Arena.ToSpace(x, y)
	obj := resolv.NewObject(sx-w/2, sy-h/2, w, h)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})

	anim := components.NewAnimationData(registry, cfg.Player.DefaultAnimation)
	components.Animation.Set(player, anim)
	components.Sprite.SetValue(player, components.SpriteData{
		Image:  anim.Config.Texture,
		Rect:   anim.Rect,
		Size:   anim.Config.DisplaySize,
		Filter: anim.Config.Filter,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
