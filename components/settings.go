package components

import (
	cfg "github.com/automoto/lunar-posadas/config"
	"github.com/yohamta/donburi"
)

// SettingsData stores runtime toggles that outlive a single tick.
type SettingsData struct {
	WindowMode cfg.WindowModeID
	Debug      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
