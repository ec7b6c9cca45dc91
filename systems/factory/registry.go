package factory

import (
	"github.com/automoto/lunar-posadas/archetypes"
	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRegistry installs the shared animation registry singleton.
func CreateRegistry(ecs *ecs.ECS, registry *animations.Registry, loader *assets.AnimationLoader) *donburi.Entry {
	entry := archetypes.Registry.Spawn(ecs)
	components.Registry.SetValue(entry, components.RegistryData{
		Registry: registry,
		Loader:   loader,
	})
	return entry
}
