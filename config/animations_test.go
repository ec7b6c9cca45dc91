package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedAnimationsCoverEveryID(t *testing.T) {
	defs, err := LoadAnimationDefs("")
	if err != nil {
		t.Fatalf("LoadAnimationDefs: %v", err)
	}
	byID, err := defs.ByID()
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	for _, id := range AllAnimations {
		if _, ok := byID[id]; !ok {
			t.Errorf("embedded definitions missing %v", id)
		}
	}
	if got := byID[IdleSide]; got.FrameCount != 4 || got.FrameTime != 0.5 || got.FrameWidth != 190 {
		t.Errorf("idle_side = %+v", got)
	}
}

func TestParseAnimationDefsRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown name",
			doc: `animations:
  - {name: run_front, path: a.png, frame_width: 1, frame_height: 1, frame_count: 1, frame_time: 1, display: {width: 1, height: 1}}`,
			want: ErrUnknownAnimationName,
		},
		{
			name: "duplicate",
			doc: `animations:
  - {name: idle_front, path: a.png, frame_width: 1, frame_height: 1, frame_count: 1, frame_time: 1, display: {width: 1, height: 1}}
  - {name: idle_front, path: b.png, frame_width: 1, frame_height: 1, frame_count: 1, frame_time: 1, display: {width: 1, height: 1}}`,
			want: ErrInvalidAnimationDef,
		},
		{
			name: "zero frames",
			doc: `animations:
  - {name: idle_front, path: a.png, frame_width: 1, frame_height: 1, frame_count: 0, frame_time: 1, display: {width: 1, height: 1}}`,
			want: ErrInvalidAnimationDef,
		},
		{
			name: "zero frame time",
			doc: `animations:
  - {name: idle_front, path: a.png, frame_width: 1, frame_height: 1, frame_count: 2, frame_time: 0, display: {width: 1, height: 1}}`,
			want: ErrInvalidAnimationDef,
		},
		{
			name: "no display size",
			doc: `animations:
  - {name: idle_front, path: a.png, frame_width: 1, frame_height: 1, frame_count: 2, frame_time: 0.2}`,
			want: ErrInvalidAnimationDef,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAnimationDefs([]byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("ParseAnimationDefs error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadAnimationDefsDiskOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	doc := `character: player
animations:
  - {name: idle_front, path: front.png, frame_width: 8, frame_height: 8, frame_count: 2, frame_time: 0.25, display: {width: 16, height: 16}}
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	defs, err := LoadAnimationDefs(path)
	if err != nil {
		t.Fatalf("LoadAnimationDefs: %v", err)
	}
	if len(defs.Animations) != 1 || defs.Animations[0].Path != "front.png" {
		t.Fatalf("disk override not used: %+v", defs)
	}

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	defs, err = LoadAnimationDefs(missing)
	if err != nil {
		t.Fatalf("missing override should fall back: %v", err)
	}
	if len(defs.Animations) != len(AllAnimations) {
		t.Fatalf("fallback has %d animations, want %d", len(defs.Animations), len(AllAnimations))
	}
}
