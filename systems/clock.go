package systems

import "github.com/hajimehoshi/ebiten/v2"

// FrameDelta is the real time covered by one Update call, in seconds.
// Ebitengine calls Update at a fixed TPS.
var FrameDelta = func() float64 {
	return 1 / float64(ebiten.TPS())
}
