package systems

import (
	"image/color"

	"github.com/automoto/lunar-posadas/components"
	"github.com/automoto/lunar-posadas/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NoticeDuration is how long a notice stays on screen, in seconds.
const NoticeDuration = 2.5

// ShowNotice replaces the current notice with msg.
func ShowNotice(ecs *ecs.ECS, msg string) {
	notice := GetOrCreateNotice(ecs)
	notice.Text = msg
	notice.Alpha = 1
	// InQuad keeps the text solid for most of the duration.
	notice.Fade = gween.New(1, 0, NoticeDuration, ease.InQuad)
}

// UpdateNotice fades the current notice out.
func UpdateNotice(ecs *ecs.ECS) {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		return
	}
	notice := components.Notice.Get(entry)
	if notice.Fade == nil {
		return
	}
	alpha, done := notice.Fade.Update(float32(FrameDelta()))
	notice.Alpha = alpha
	if done {
		notice.Text = ""
		notice.Alpha = 0
		notice.Fade = nil
	}
}

func DrawNotice(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Notice.First(ecs.World)
	if !ok || !fonts.Loaded(fonts.Debug) {
		return
	}
	notice := components.Notice.Get(entry)
	if notice.Text == "" || notice.Alpha <= 0 {
		return
	}
	a := uint8(notice.Alpha * 255)
	height := screen.Bounds().Dy()
	text.Draw(screen, notice.Text, fonts.Debug.Get(), 12, height-16, color.NRGBA{R: 255, G: 255, B: 255, A: a})
}

// GetOrCreateNotice returns the singleton Notice component, creating if needed
func GetOrCreateNotice(ecs *ecs.ECS) *components.NoticeData {
	entry, ok := components.Notice.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Notice))
	}
	return components.Notice.Get(entry)
}
