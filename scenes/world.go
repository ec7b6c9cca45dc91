package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/systems"
	"github.com/automoto/lunar-posadas/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reloader feeds changed asset paths to the scene and rebuilds the registry
// from them.
type Reloader struct {
	Events <-chan string
	Build  systems.RegistryBuilder
}

// WorldScene is the arena with the player in it.
type WorldScene struct {
	ecs      *ecs.ECS
	registry *animations.Registry
	loader   *assets.AnimationLoader
	arena    *assets.ArenaLayout
	reloader *Reloader
	once     sync.Once
}

// NewWorldScene creates the arena scene. A nil arena is a plain walled
// rectangle the size of cfg.Arena; reloader may be nil.
func NewWorldScene(registry *animations.Registry, loader *assets.AnimationLoader, arena *assets.ArenaLayout, reloader *Reloader) *WorldScene {
	return &WorldScene{registry: registry, loader: loader, arena: arena, reloader: reloader}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// ECS exposes the scene's world, configuring it on first use.
func (ws *WorldScene) ECS() *ecs.ECS {
	ws.once.Do(ws.configure)
	return ws.ecs
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateWindow)
	if ws.reloader != nil {
		ecs.AddSystem(systems.NewReloadSystem(ws.reloader.Events, ws.reloader.Build))
	}
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateNotice)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawNotice)

	ws.ecs = ecs

	if ws.arena == nil {
		ws.arena = assets.RingArena(cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.WallSize)
	}
	factory.CreateSpace(ws.ecs,
		int(ws.arena.Width), int(ws.arena.Height),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	factory.CreateArena(ws.ecs, ws.arena)
	factory.CreateRegistry(ws.ecs, ws.registry, ws.loader)
	factory.CreatePlayer(ws.ecs, ws.registry, cfg.Player.SpawnX, cfg.Player.SpawnY)
	factory.CreateCamera(ws.ecs)
}
