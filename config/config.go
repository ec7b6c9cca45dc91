package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; every renderer draws on it in order.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed float64 // World units per second while a direction is held

	// DirectionDeadZone is the magnitude below which a direction component
	// counts as zero when picking a facing.
	DirectionDeadZone float64

	// Spawn
	SpawnX           float64
	SpawnY           float64
	DefaultAnimation AnimationID

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// ArenaConfig bounds the walkable area around the origin.
type ArenaConfig struct {
	Map       string // TMX file among the embedded levels
	Width     float64
	Height    float64
	WallSize  float64
	CellSize  int
	BackColor color.RGBA
}

// Origin is the world origin in collision space coordinates, the center of
// the arena. Collision space is y-down with (0, 0) at the arena's top left.
func (a ArenaConfig) Origin() (x, y float64) {
	return a.Width / 2, a.Height / 2
}

// ToSpace converts a y-up world point to collision space.
func (a ArenaConfig) ToSpace(x, y float64) (float64, float64) {
	ox, oy := a.Origin()
	return ox + x, oy - y
}

// WindowConfig contains window-mode configuration values
type WindowConfig struct {
	// Settings key used for persisted window settings
	SettingsKey string
	AppName     string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay        bool   // Draw the animation state overlay
	AnimationsFile string // Disk override for the animation definitions
	AssetsDir      string // Disk directory searched before the embedded images
	Watch          bool   // Reload animation definitions when they change on disk
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Arena ArenaConfig
var Window WindowConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	NightBlue  = color.RGBA{R: 18, G: 20, B: 38, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "Lunar Posadas",
	}

	Player = PlayerConfig{
		Speed:             200.0,
		DirectionDeadZone: 1e-3,

		SpawnX:           0,
		SpawnY:           0,
		DefaultAnimation: IdleFront,

		CollisionWidth:  40,
		CollisionHeight: 20,
	}

	Arena = ArenaConfig{
		Map:       "arena.tmx",
		Width:     1920,
		Height:    1080,
		WallSize:  32,
		CellSize:  16,
		BackColor: NightBlue,
	}

	Window = WindowConfig{
		SettingsKey: "window",
		AppName:     "lunar-posadas",
	}

	Debug = DebugConfig{}
}
