package components

import (
	"image"

	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/config"
	"github.com/yohamta/donburi"
)

// AnimationData is a character's playback state. Config is always the
// registry's config for Current, and Clock is always sized from it.
type AnimationData struct {
	Current  config.AnimationID
	Mirrored bool
	Config   animations.Config
	Clock    *animations.Animation
	Rect     image.Rectangle // last resolved frame rectangle
}

// NewAnimationData starts playback of id at its first frame.
func NewAnimationData(registry *animations.Registry, id config.AnimationID) *AnimationData {
	c := registry.MustLookup(id)
	a := &AnimationData{
		Current: id,
		Config:  c,
		Clock:   animations.NewAnimation(c.FrameCount, c.FrameTime),
	}
	a.Rect, _ = c.Layout.Rect(0)
	return a
}

// SetAnimation switches to id and restarts from the first frame when it
// differs from the current animation. The mirror flag is always taken. It
// reports whether the animation changed.
func (a *AnimationData) SetAnimation(id config.AnimationID, mirrored bool, registry *animations.Registry) bool {
	a.Mirrored = mirrored
	if a.Current == id && a.Clock != nil {
		return false
	}

	a.bind(id, registry.MustLookup(id))
	return true
}

// Rebind re-reads the config for the current animation from registry and
// restarts it. Used after the registry has been rebuilt.
func (a *AnimationData) Rebind(registry *animations.Registry) {
	a.bind(a.Current, registry.MustLookup(a.Current))
}

func (a *AnimationData) bind(id config.AnimationID, c animations.Config) {
	a.Current = id
	a.Config = c
	if a.Clock == nil {
		a.Clock = animations.NewAnimation(c.FrameCount, c.FrameTime)
	} else {
		a.Clock.FrameCount = c.FrameCount
		a.Clock.FrameTime = c.FrameTime
		a.Clock.Restart()
	}
}

// Advance moves the clock forward by dt seconds.
func (a *AnimationData) Advance(dt float64) int {
	return a.Clock.Update(dt)
}

func (a *AnimationData) Frame() int {
	return a.Clock.Frame()
}

func (a *AnimationData) Elapsed() float64 {
	return a.Clock.Elapsed()
}

var Animation = donburi.NewComponentType[AnimationData]()
