package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/fonts"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision objects and prints the animation state of
// every player. Toggled with F3 or the -debug flag.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	offset, ok := cameraOffset(ecs, screen)
	if !ok {
		return // No camera yet
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x := obj.X + offset.X
			y := obj.Y + offset.Y

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	face := fonts.Debug.Get()
	line := 24
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		text.Draw(screen, DebugLine(e), face, 12, line, cfg.White)
		line += 20
	})
	if entry, ok := components.Registry.First(ecs.World); ok {
		reg := components.Registry.Get(entry)
		text.Draw(screen, fmt.Sprintf("registry gen %d, %d animations", reg.Generation, reg.Registry.Len()),
			fonts.DebugSmall.Get(), 12, line, cfg.Yellow)
	}
}

// DebugLine formats one player's animation state for the overlay.
func DebugLine(e *donburi.Entry) string {
	anim := components.Animation.Get(e)
	s := fmt.Sprintf("%v frame %d/%d elapsed %.2fs", anim.Current, anim.Frame(), anim.Config.FrameCount, anim.Elapsed())
	if anim.Mirrored {
		s += " mirrored"
	}
	if e.HasComponent(components.Player) {
		p := components.Player.Get(e)
		s += fmt.Sprintf(" dir (%.2f, %.2f) speed %.0f", p.Direction.X, p.Direction.Y, p.Speed)
	}
	return s
}
