package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed animations.yaml
var defaultAnimations []byte

// ErrInvalidAnimationDef is returned for definitions that could never play.
var ErrInvalidAnimationDef = errors.New("invalid animation definition")

// DisplaySize is the on-screen extent of a frame in world units.
type DisplaySize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimationDef declares one sprite sheet. Frame timing and display size are
// authored per animation, never derived from the image.
type AnimationDef struct {
	Name        string      `yaml:"name"`
	Path        string      `yaml:"path"`
	FrameWidth  int         `yaml:"frame_width"`
	FrameHeight int         `yaml:"frame_height"`
	FrameCount  int         `yaml:"frame_count"`
	FrameTime   float64     `yaml:"frame_time"` // seconds
	Display     DisplaySize `yaml:"display"`
}

// AnimationDefs is the decoded definitions file for one character.
type AnimationDefs struct {
	Character  string         `yaml:"character"`
	Animations []AnimationDef `yaml:"animations"`
}

// ParseAnimationDefs decodes and validates a definitions document.
func ParseAnimationDefs(data []byte) (AnimationDefs, error) {
	var defs AnimationDefs
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return AnimationDefs{}, fmt.Errorf("config: unmarshal animations: %w", err)
	}
	if _, err := defs.ByID(); err != nil {
		return AnimationDefs{}, err
	}
	return defs, nil
}

// LoadAnimationDefs reads the definitions from path when it is set and
// readable, falling back to the embedded table.
func LoadAnimationDefs(path string) (AnimationDefs, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			return ParseAnimationDefs(data)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return AnimationDefs{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return ParseAnimationDefs(defaultAnimations)
}

// ByID indexes the definitions, rejecting unknown names, duplicates and
// values that cannot produce a playable animation.
func (d AnimationDefs) ByID() (map[AnimationID]AnimationDef, error) {
	out := make(map[AnimationID]AnimationDef, len(d.Animations))
	for _, def := range d.Animations {
		id, err := ParseAnimationID(def.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("config: %w: %s declared twice", ErrInvalidAnimationDef, def.Name)
		}
		if err := def.validate(); err != nil {
			return nil, err
		}
		out[id] = def
	}
	return out, nil
}

func (def AnimationDef) validate() error {
	switch {
	case def.Path == "":
		return fmt.Errorf("config: %w: %s has no path", ErrInvalidAnimationDef, def.Name)
	case def.FrameWidth <= 0 || def.FrameHeight <= 0:
		return fmt.Errorf("config: %w: %s frame size %dx%d", ErrInvalidAnimationDef, def.Name, def.FrameWidth, def.FrameHeight)
	case def.FrameCount <= 0:
		return fmt.Errorf("config: %w: %s frame_count %d", ErrInvalidAnimationDef, def.Name, def.FrameCount)
	case !(def.FrameTime > 0) || math.IsInf(def.FrameTime, 0):
		return fmt.Errorf("config: %w: %s frame_time %v", ErrInvalidAnimationDef, def.Name, def.FrameTime)
	case def.Display.Width <= 0 || def.Display.Height <= 0:
		return fmt.Errorf("config: %w: %s display %vx%v", ErrInvalidAnimationDef, def.Name, def.Display.Width, def.Display.Height)
	}
	return nil
}
