package assets

import (
	"errors"
	"image"
	"io/fs"
	"testing"
	"testing/fstest"
)

func TestAnimationLoaderEmbeddedSheets(t *testing.T) {
	l := NewAnimationLoader()
	tex, err := l.Texture("player/posadas_idle_side.png")
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if got := tex.Bounds().Size(); got != image.Pt(760, 250) {
		t.Fatalf("idle side sheet size = %v, want 760x250", got)
	}

	again, err := l.Texture("player/./posadas_idle_side.png")
	if err != nil || again != tex {
		t.Fatalf("second load should hit the cache")
	}
}

func TestAnimationLoaderMissingSheet(t *testing.T) {
	l := NewAnimationLoader()
	_, err := l.Texture("player/nope.png")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Texture error = %v, want fs.ErrNotExist", err)
	}
}

func TestAnimationLoaderRejectsUndecodableOverride(t *testing.T) {
	override := fstest.MapFS{
		"player/posadas_idle_side.png": {Data: []byte("not a png")},
	}
	l := NewAnimationLoader(override)
	if _, err := l.Texture("player/posadas_idle_side.png"); err == nil {
		t.Fatalf("expected a decode error from the override")
	}
}

func TestAnimationLoaderFrameCache(t *testing.T) {
	l := NewAnimationLoader()
	tex, err := l.Texture("player/posadas_idle_front.png")
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	r := image.Rect(200, 0, 400, 250)
	a := l.Frame(tex, r)
	b := l.Frame(tex, r)
	if a != b {
		t.Fatalf("Frame should return the cached sub-image")
	}
	if a.Bounds() != r {
		t.Fatalf("frame bounds = %v, want %v", a.Bounds(), r)
	}
	l.Forget()
	if c := l.Frame(tex, r); c == a {
		t.Fatalf("Forget should drop cached frames")
	}
}

func TestIsWatchedFile(t *testing.T) {
	tests := map[string]bool{
		"config/animations.yaml":  true,
		"defs.YML":                true,
		"images/player/idle.png":  true,
		"notes.txt":               false,
		"images/player/idle.png~": false,
		"animations.yaml.swp":     false,
	}
	for p, want := range tests {
		if got := IsWatchedFile(p); got != want {
			t.Errorf("IsWatchedFile(%q) = %v, want %v", p, got, want)
		}
	}
}
