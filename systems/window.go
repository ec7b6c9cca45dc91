package systems

import (
	"github.com/automoto/lunar-posadas/components"
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InitialWindowMode seeds the Settings singleton when it is first created.
// main sets it from the persisted settings.
var InitialWindowMode = cfg.WindowModeWindowed

// applyWindowMode is swapped out in tests, where there is no window.
var applyWindowMode = func(mode cfg.WindowModeID) {
	ebiten.SetFullscreen(mode == cfg.WindowModeBorderlessFullscreen)
}

// UpdateWindow handles the fullscreen and debug overlay toggles.
// Must run AFTER UpdateInput.
func UpdateWindow(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.WindowMode = settings.WindowMode.Toggle()
		applyWindowMode(settings.WindowMode)
		_ = SaveSettings(&SavedSettings{
			Fullscreen: settings.WindowMode == cfg.WindowModeBorderlessFullscreen,
		})
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			WindowMode: InitialWindowMode,
			Debug:      cfg.Debug.Overlay,
		})
	}
	return components.Settings.Get(entry)
}
