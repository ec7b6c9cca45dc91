package systems

import (
	"log"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type staleFrame struct {
	entity donburi.Entity
	id     cfg.AnimationID
	frame  int
}

// Frames that failed to resolve, logged once each.
var staleFrames = make(map[staleFrame]struct{})

// UpdateAnimation runs the per-tick animation pipeline for every player:
// pick the facing, switch animation if it changed, advance the frame clock,
// then resolve the frame rectangle for the renderer.
// Must run AFTER UpdatePlayer.
func UpdateAnimation(ecs *ecs.ECS) {
	registry, ok := GetRegistry(ecs)
	if !ok {
		return
	}
	dt := FrameDelta()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		c := Classify(player.Direction, player.Speed, anim.Current, anim.Mirrored)
		anim.SetAnimation(c.ID, c.Mirrored, registry)
		anim.Advance(dt)
		resolveFrame(e.Entity(), anim)

		if e.HasComponent(components.Sprite) {
			syncSprite(components.Sprite.Get(e), anim)
		}
	})
}

// resolveFrame looks up the current frame's rectangle. On a layout mismatch
// the previous rectangle stays in place.
func resolveFrame(entity donburi.Entity, anim *components.AnimationData) {
	rect, ok := animations.Resolve(anim.Config.Layout, anim.Frame(), anim.Rect)
	if !ok {
		key := staleFrame{entity: entity, id: anim.Current, frame: anim.Frame()}
		if _, seen := staleFrames[key]; !seen {
			staleFrames[key] = struct{}{}
			log.Printf("Warning: %v has no frame %d (layout has %d), keeping previous frame",
				anim.Current, anim.Frame(), anim.Config.Layout.Len())
		}
		return
	}
	anim.Rect = rect
}

func syncSprite(sprite *components.SpriteData, anim *components.AnimationData) {
	sprite.Image = anim.Config.Texture
	sprite.Rect = anim.Rect
	sprite.Size = anim.Config.DisplaySize
	sprite.FlipX = anim.Mirrored
	sprite.Filter = anim.Config.Filter
}

// GetRegistry returns the shared animation registry, if one was installed.
func GetRegistry(ecs *ecs.ECS) (*animations.Registry, bool) {
	entry, ok := components.Registry.First(ecs.World)
	if !ok {
		return nil, false
	}
	data := components.Registry.Get(entry)
	return data.Registry, data.Registry != nil
}

func getLoader(ecs *ecs.ECS) *assets.AnimationLoader {
	entry, ok := components.Registry.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Registry.Get(entry).Loader
}
