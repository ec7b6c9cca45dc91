package systems

import (
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (math.Vec2, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return math.Vec2{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return math.Vec2{
		X: float64(width)/2 - camera.Position.X,
		Y: float64(height)/2 - camera.Position.Y,
	}, true
}

// DrawBackground clears the screen and outlines the arena walls.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackColor)

	offset, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen,
			float32(o.X+offset.X), float32(o.Y+offset.Y), float32(o.W), float32(o.H),
			2, cfg.LightGreen, false)
	})
}

// DrawAnimated draws every entity with a Sprite centered on its collision
// object.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	offset, ok := cameraOffset(ecs, screen)
	if !ok {
		return // No camera yet
	}
	loader := getLoader(ecs)

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)

		if sprite.Image == nil || sprite.Rect.Empty() {
			// Nothing resolved yet; mark the spot so the entity is not invisible.
			vector.FillRect(screen,
				float32(o.X+offset.X), float32(o.Y+offset.Y), float32(o.W), float32(o.H),
				cfg.Yellow, false)
			return
		}

		var img *ebiten.Image
		if loader != nil {
			img = loader.Frame(sprite.Image, sprite.Rect)
		} else {
			img = sprite.Image.SubImage(sprite.Rect).(*ebiten.Image)
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = sprite.Filter

		frameW, frameH := float64(sprite.Rect.Dx()), float64(sprite.Rect.Dy())
		drawOp.GeoM.Translate(-frameW/2, -frameH/2)
		drawOp.GeoM.Scale(sprite.Size.X/frameW, sprite.Size.Y/frameH)

		// Side art faces right; left-facing is the mirror image.
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H/2)
		drawOp.GeoM.Translate(offset.X, offset.Y)

		screen.DrawImage(img, drawOp)
	})
}
