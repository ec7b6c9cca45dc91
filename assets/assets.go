package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	animationFS embed.FS
)

// Provider resolves a declared sheet path to a texture.
type Provider interface {
	Texture(path string) (*ebiten.Image, error)
}

type frameKey struct {
	texture *ebiten.Image
	rect    image.Rectangle
}

// AnimationLoader decodes sprite sheets from an optional disk directory and
// then the embedded images, caching every texture and sub-image it hands out.
type AnimationLoader struct {
	sources    []fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

// NewAnimationLoader searches overrides in order before the embedded images.
// Paths are relative to the images root, e.g. "player/posadas_idle_front.png".
func NewAnimationLoader(overrides ...fs.FS) *AnimationLoader {
	embedded, err := fs.Sub(animationFS, "images")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded images: %v", err))
	}
	return &AnimationLoader{
		sources:    append(append([]fs.FS(nil), overrides...), embedded),
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

// Texture loads and caches the sheet at p.
func (l *AnimationLoader) Texture(p string) (*ebiten.Image, error) {
	p = path.Clean(p)
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	imgBytes, err := l.read(p)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

func (l *AnimationLoader) read(p string) ([]byte, error) {
	var firstErr error
	for _, src := range l.sources {
		data, err := fs.ReadFile(src, p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fs.ErrNotExist
}

// Frame returns a cached sub-image of texture. This prevents creating a new
// *ebiten.Image struct every time the same frame is drawn.
func (l *AnimationLoader) Frame(texture *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	key := frameKey{texture: texture, rect: rect}
	if img, ok := l.frameCache[key]; ok {
		return img
	}
	frame := texture.SubImage(rect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

// Forget drops every cached texture and frame so the next load hits the
// sources again.
func (l *AnimationLoader) Forget() {
	clear(l.cache)
	clear(l.frameCache)
}
