package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// WallsLayer is the object group holding the arena's solid rectangles.
const WallsLayer = "Walls"

// Rect is an axis-aligned rectangle in collision space.
type Rect struct {
	X, Y, W, H float64
}

// ArenaLayout is the collision geometry of the play area. Coordinates are
// y-down with the origin at the top left of the map.
type ArenaLayout struct {
	Width  float64
	Height float64
	Walls  []Rect
}

// Levels returns the embedded level maps.
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded levels: %v", err))
	}
	return sub
}

// LoadArena parses a TMX map and collects the rectangles of its walls layer.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaLayout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("assets: load TMX %s: %w", tmxPath, err)
	}

	layout := &ArenaLayout{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != WallsLayer {
			continue
		}
		for _, o := range og.Objects {
			if o.Width <= 0 || o.Height <= 0 {
				continue // points and polylines are not walls
			}
			layout.Walls = append(layout.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
		}
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, fmt.Errorf("assets: %s has no area", tmxPath)
	}
	return layout, nil
}

// RingArena is a width x height arena bounded by walls of the given
// thickness and nothing else.
func RingArena(width, height, wall float64) *ArenaLayout {
	return &ArenaLayout{
		Width:  width,
		Height: height,
		Walls: []Rect{
			{X: 0, Y: 0, W: width, H: wall},
			{X: 0, Y: height - wall, W: width, H: wall},
			{X: 0, Y: wall, W: wall, H: height - 2*wall},
			{X: width - wall, Y: wall, W: wall, H: height - 2*wall},
		},
	}
}
