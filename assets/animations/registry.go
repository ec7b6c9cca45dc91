package animations

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"sort"

	"github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrUnknownAnimation = errors.New("unknown animation")
	ErrInvalidConfig    = errors.New("invalid animation config")
)

// Config is everything needed to play and draw one animation.
type Config struct {
	ID          config.AnimationID
	Layout      Layout
	Texture     *ebiten.Image
	Filter      ebiten.Filter
	FrameCount  int
	FrameTime   float64   // seconds
	DisplaySize math.Vec2 // world units
}

func (c Config) validate() error {
	switch {
	case !c.ID.Valid():
		return fmt.Errorf("animations: %w: id %d", ErrInvalidConfig, int(c.ID))
	case c.FrameCount <= 0:
		return fmt.Errorf("animations: %w: %v frame count %d", ErrInvalidConfig, c.ID, c.FrameCount)
	case !(c.FrameTime > 0):
		return fmt.Errorf("animations: %w: %v frame time %v", ErrInvalidConfig, c.ID, c.FrameTime)
	case c.Layout.Len() != c.FrameCount:
		return fmt.Errorf("animations: %w: %v layout has %d frames, want %d", ErrInvalidConfig, c.ID, c.Layout.Len(), c.FrameCount)
	case c.Texture == nil:
		return fmt.Errorf("animations: %w: %v has no texture", ErrInvalidConfig, c.ID)
	case !c.Layout.Bounds().In(c.Texture.Bounds().Sub(c.Texture.Bounds().Min)):
		return fmt.Errorf("animations: %w: %v layout %v exceeds texture %v", ErrInvalidConfig, c.ID, c.Layout.Bounds(), c.Texture.Bounds())
	case c.DisplaySize.X <= 0 || c.DisplaySize.Y <= 0:
		return fmt.Errorf("animations: %w: %v display size %v", ErrInvalidConfig, c.ID, c.DisplaySize)
	}
	return nil
}

// Registry maps each animation to its config. It is filled once by
// NewRegistry and never changes afterwards, so any number of characters may
// read it without coordination.
type Registry struct {
	animations map[config.AnimationID]Config
	ids        []config.AnimationID
}

// NewRegistry validates configs and freezes them into a Registry.
func NewRegistry(configs ...Config) (*Registry, error) {
	r := &Registry{animations: make(map[config.AnimationID]Config, len(configs))}
	for _, c := range configs {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.animations[c.ID]; dup {
			return nil, fmt.Errorf("animations: %w: %v registered twice", ErrInvalidConfig, c.ID)
		}
		c.Layout = Layout{Frames: append([]image.Rectangle(nil), c.Layout.Frames...)}
		r.animations[c.ID] = c
		r.ids = append(r.ids, c.ID)
	}
	sort.Slice(r.ids, func(i, j int) bool { return r.ids[i] < r.ids[j] })
	return r, nil
}

// Lookup returns a copy of the config for id. Writes to the copy, its
// layout included, never reach the registry.
func (r *Registry) Lookup(id config.AnimationID) (Config, bool) {
	if r == nil {
		return Config{}, false
	}
	c, ok := r.animations[id]
	if ok {
		c.Layout = Layout{Frames: slices.Clone(c.Layout.Frames)}
	}
	return c, ok
}

// MustLookup returns the config for id and panics if it was never
// registered. A miss means the registry was built incompletely.
func (r *Registry) MustLookup(id config.AnimationID) Config {
	c, ok := r.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("animations: no config registered for %v", id))
	}
	return c
}

// Validate reports every id in ids that has no config.
func (r *Registry) Validate(ids ...config.AnimationID) error {
	var errs []error
	for _, id := range ids {
		if _, ok := r.Lookup(id); !ok {
			errs = append(errs, fmt.Errorf("animations: %w: %v", ErrUnknownAnimation, id))
		}
	}
	return errors.Join(errs...)
}

// IDs returns the registered animations in ascending order.
func (r *Registry) IDs() []config.AnimationID {
	if r == nil {
		return nil
	}
	return append([]config.AnimationID(nil), r.ids...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.animations)
}
