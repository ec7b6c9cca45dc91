package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/lunar-posadas/assets"
	"github.com/automoto/lunar-posadas/assets/animations"
	"github.com/automoto/lunar-posadas/config"
	"github.com/automoto/lunar-posadas/fonts"
	"github.com/automoto/lunar-posadas/scenes"
	"github.com/automoto/lunar-posadas/systems"
	"github.com/automoto/lunar-posadas/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// buildRegistry reads the definitions and their sheets, picking up any
// changes made since the last call.
func buildRegistry(loader *assets.AnimationLoader) (*animations.Registry, error) {
	defs, err := config.LoadAnimationDefs(config.Debug.AnimationsFile)
	if err != nil {
		return nil, err
	}
	return factory.BuildRegistry(loader, defs)
}

func main() {
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "draw the animation debug overlay")
	flag.StringVar(&config.Debug.AnimationsFile, "animations", "", "animation definitions file overriding the embedded one")
	flag.StringVar(&config.Debug.AssetsDir, "assets", "", "directory searched for sprite sheets before the embedded images")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload animations when the definitions or sheets change")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var overrides []fs.FS
	if config.Debug.AssetsDir != "" {
		overrides = append(overrides, os.DirFS(config.Debug.AssetsDir))
	}
	loader := assets.NewAnimationLoader(overrides...)

	registry, err := buildRegistry(loader)
	if err != nil {
		log.Fatalf("Failed to build animations: %v", err)
	}

	arena, err := assets.LoadArena(assets.Levels(), config.Arena.Map)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	config.Arena.Width, config.Arena.Height = arena.Width, arena.Height

	var reloader *scenes.Reloader
	if paths := watchPaths(); config.Debug.Watch && len(paths) == 0 {
		log.Printf("Warning: -watch needs -animations or -assets; the embedded animations are not watched")
	} else if config.Debug.Watch {
		watcher, err := assets.NewWatcher(paths...)
		if err != nil {
			log.Printf("Warning: Could not watch animation files: %v", err)
		} else {
			defer watcher.Close()
			go func() {
				for err := range watcher.Errors {
					log.Printf("Warning: Animation watcher: %v", err)
				}
			}()
			reloader = &scenes.Reloader{Events: watcher.Events, Build: buildRegistry}
		}
	}

	ebiten.SetWindowSize(config.C.Width/2, config.C.Height/2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
		systems.InitialWindowMode = systems.ModeFromSettings(saved)
	}

	scene := scenes.NewWorldScene(registry, loader, arena, reloader)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

// watchPaths lists the on-disk locations the animations are read from.
func watchPaths() []string {
	var paths []string
	if config.Debug.AnimationsFile != "" {
		// Editors often replace files, which drops a watch on the file itself.
		paths = append(paths, filepath.Dir(config.Debug.AnimationsFile))
	}
	if config.Debug.AssetsDir != "" {
		paths = append(paths, config.Debug.AssetsDir)
		if entries, err := os.ReadDir(config.Debug.AssetsDir); err == nil {
			for _, e := range entries {
				if e.IsDir() {
					paths = append(paths, filepath.Join(config.Debug.AssetsDir, e.Name()))
				}
			}
		}
	}
	return paths
}
