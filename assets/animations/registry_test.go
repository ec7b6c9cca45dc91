package animations

import (
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/automoto/lunar-posadas/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/features/math"
)

func testConfig(id config.AnimationID, frameW, frameH, count int) Config {
	return Config{
		ID:          id,
		Layout:      NewGridLayout(frameW, frameH, count, 1),
		Texture:     ebiten.NewImage(frameW*count, frameH),
		Filter:      ebiten.FilterNearest,
		FrameCount:  count,
		FrameTime:   0.5,
		DisplaySize: math.Vec2{X: 54, Y: 72},
	}
}

func TestRegistryLookup(t *testing.T) {
	r, err := NewRegistry(
		testConfig(config.IdleFront, 20, 25, 3),
		testConfig(config.IdleSide, 19, 25, 4),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	c, ok := r.Lookup(config.IdleSide)
	if !ok || c.FrameCount != 4 || c.ID != config.IdleSide {
		t.Fatalf("Lookup(IdleSide) = %+v, %v", c, ok)
	}
	if _, ok := r.Lookup(config.WalkBack); ok {
		t.Fatalf("Lookup of an unregistered id should miss")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	ids := r.IDs()
	if len(ids) != 2 || ids[0] != config.IdleFront || ids[1] != config.IdleSide {
		t.Fatalf("IDs = %v", ids)
	}
}

func TestRegistryLookupReturnsCopies(t *testing.T) {
	r, err := NewRegistry(testConfig(config.IdleFront, 20, 25, 3))
	if err != nil {
		t.Fatal(err)
	}
	c := r.MustLookup(config.IdleFront)
	first, _ := c.Layout.Rect(0)
	c.FrameCount = 99
	c.Layout.Frames[0] = image.Rect(1, 1, 2, 2)

	again := r.MustLookup(config.IdleFront)
	if again.FrameCount != 3 {
		t.Fatalf("mutating a looked-up config changed the registry")
	}
	if got, _ := again.Layout.Rect(0); got != first {
		t.Fatalf("frame 0 = %v after writing to a looked-up layout, want %v", got, first)
	}
}

func TestRegistryMustLookupPanics(t *testing.T) {
	r, err := NewRegistry(testConfig(config.IdleFront, 20, 25, 3))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatalf("MustLookup of an unregistered id should panic")
		}
		if !strings.Contains(rec.(string), "walk_side") {
			t.Fatalf("panic message %q should name the animation", rec)
		}
	}()
	r.MustLookup(config.WalkSide)
}

func TestRegistryValidate(t *testing.T) {
	r, err := NewRegistry(testConfig(config.IdleFront, 20, 25, 3))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Validate(config.IdleFront); err != nil {
		t.Fatalf("Validate(IdleFront) = %v", err)
	}
	err = r.Validate(config.AllAnimations...)
	if !errors.Is(err, ErrUnknownAnimation) {
		t.Fatalf("Validate(all) = %v, want ErrUnknownAnimation", err)
	}
	if !strings.Contains(err.Error(), "walk_side_back") {
		t.Fatalf("error %q should list missing animations", err)
	}
}

func TestNewRegistryRejectsInvalidConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown id", func(c *Config) { c.ID = config.AnimationNone }},
		{"zero frame count", func(c *Config) { c.FrameCount = 0 }},
		{"zero frame time", func(c *Config) { c.FrameTime = 0 }},
		{"layout mismatch", func(c *Config) { c.FrameCount = 4 }},
		{"no texture", func(c *Config) { c.Texture = nil }},
		{"layout outside texture", func(c *Config) { c.Texture = ebiten.NewImage(10, 10) }},
		{"no display size", func(c *Config) { c.DisplaySize = math.Vec2{} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testConfig(config.IdleFront, 20, 25, 3)
			tc.mutate(&c)
			if _, err := NewRegistry(c); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("NewRegistry error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		testConfig(config.IdleFront, 20, 25, 3),
		testConfig(config.IdleFront, 20, 25, 3),
	)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("duplicate ids error = %v", err)
	}
}
