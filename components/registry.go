package components

import (
	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/yohamta/donburi"
)

// RegistryData holds the animation registry shared by every animated
// character, and the loader its textures came from. The registry itself is
// immutable; a reload replaces it whole and bumps Generation.
type RegistryData struct {
	Registry   *animations.Registry
	Loader     *assets.AnimationLoader
	Generation int
}

var Registry = donburi.NewComponentType[RegistryData]()
