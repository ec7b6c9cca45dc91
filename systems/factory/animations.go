package factory

import (
	"fmt"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

// BuildRegistry loads every declared sheet through provider and builds the
// animation registry. Every identifier in cfg.AllAnimations must be declared.
func BuildRegistry(provider assets.Provider, defs cfg.AnimationDefs) (*animations.Registry, error) {
	byID, err := defs.ByID()
	if err != nil {
		return nil, fmt.Errorf("factory: animation definitions: %w", err)
	}

	configs := make([]animations.Config, 0, len(byID))
	for _, id := range cfg.AllAnimations {
		def, ok := byID[id]
		if !ok {
			continue // reported by Validate below
		}
		texture, err := provider.Texture(def.Path)
		if err != nil {
			return nil, fmt.Errorf("factory: texture for %v: %w", id, err)
		}
		configs = append(configs, animations.Config{
			ID:          id,
			Layout:      animations.NewGridLayout(def.FrameWidth, def.FrameHeight, def.FrameCount, 1),
			Texture:     texture,
			Filter:      ebiten.FilterNearest,
			FrameCount:  def.FrameCount,
			FrameTime:   def.FrameTime,
			DisplaySize: math.Vec2{X: def.Display.Width, Y: def.Display.Height},
		})
	}

	registry, err := animations.NewRegistry(configs...)
	if err != nil {
		return nil, fmt.Errorf("factory: build registry: %w", err)
	}
	if err := registry.Validate(cfg.AllAnimations...); err != nil {
		return nil, fmt.Errorf("factory: %s animations: %w", defs.Character, err)
	}
	return registry, nil
}
