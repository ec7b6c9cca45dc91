package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpriteData is everything the renderer needs to draw one frame.
type SpriteData struct {
	Image  *ebiten.Image   // full atlas texture
	Rect   image.Rectangle // frame within Image
	Size   math.Vec2       // world units
	FlipX  bool
	Filter ebiten.Filter
}

var Sprite = donburi.NewComponentType[SpriteData]()
