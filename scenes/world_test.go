package scenes

import (
	"testing"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/systems/factory"
	"github.com/automoto/lunar-posadas/tags"
	"github.com/yohamta/donburi"
)

func TestWorldSceneConfigure(t *testing.T) {
	defs, err := cfg.LoadAnimationDefs("")
	if err != nil {
		t.Fatalf("LoadAnimationDefs: %v", err)
	}
	loader := assets.NewAnimationLoader()
	registry, err := factory.BuildRegistry(loader, defs)
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	arena, err := assets.LoadArena(assets.Levels(), cfg.Arena.Map)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	scene := NewWorldScene(registry, loader, arena, nil)
	world := scene.ECS().World

	players := 0
	tags.Player.Each(world, func(e *donburi.Entry) {
		players++
		anim := components.Animation.Get(e)
		if anim.Current != cfg.Player.DefaultAnimation {
			t.Errorf("player starts on %v", anim.Current)
		}
	})
	if players != 1 {
		t.Fatalf("got %d players, want 1", players)
	}

	walls := 0
	tags.Wall.Each(world, func(*donburi.Entry) { walls++ })
	if walls != len(arena.Walls) {
		t.Fatalf("got %d walls, want %d", walls, len(arena.Walls))
	}

	if _, ok := components.Registry.First(world); !ok {
		t.Error("no registry")
	}
	if _, ok := components.Camera.First(world); !ok {
		t.Error("no camera")
	}
	if _, ok := components.Space.First(world); !ok {
		t.Error("no collision space")
	}
}
