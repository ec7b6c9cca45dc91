package systems

import (
	"fmt"
	"log"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegistryBuilder rebuilds the animation registry from its sources.
type RegistryBuilder func(loader *assets.AnimationLoader) (*animations.Registry, error)

// NewReloadSystem returns a system that rebuilds the animation registry
// whenever changes arrive on events. A failed rebuild keeps the current
// registry. Must run BEFORE UpdateAnimation.
func NewReloadSystem(events <-chan string, build RegistryBuilder) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		changed, _ := drainEvents(events)
		if len(changed) == 0 {
			return
		}

		entry, ok := components.Registry.First(ecs.World)
		if !ok {
			return
		}
		data := components.Registry.Get(entry)

		if data.Loader != nil {
			data.Loader.Forget()
		}
		registry, err := build(data.Loader)
		if err != nil {
			log.Printf("Warning: Could not reload animations after %v changed: %v", changed, err)
			ShowNotice(ecs, "Animation reload failed, see log")
			return
		}
		SwapRegistry(ecs, registry)
		log.Printf("Reloaded %d animations (%v changed)", registry.Len(), changed)
		ShowNotice(ecs, fmt.Sprintf("Reloaded %d animations", registry.Len()))
	}
}

// SwapRegistry installs registry and restarts every character on its
// current animation with the new config.
func SwapRegistry(ecs *ecs.ECS, registry *animations.Registry) {
	entry, ok := components.Registry.First(ecs.World)
	if !ok {
		return
	}
	data := components.Registry.Get(entry)
	data.Registry = registry
	data.Generation++

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Rebind(registry)
	})
	clear(staleFrames)
}

// drainEvents collects pending paths without blocking. ok is false once the
// channel has been closed.
func drainEvents(events <-chan string) (changed []string, ok bool) {
	if events == nil {
		return nil, false
	}
	for {
		select {
		case p, open := <-events:
			if !open {
				return changed, false
			}
			changed = append(changed, p)
		default:
			return changed, true
		}
	}
}
