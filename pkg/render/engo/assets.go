// pkg/render/engo/assets.go
// Package engo provides the Engo-based windowed frontend. It adapts the
// engine's Surface, ImageLoader, and Keyboard contracts onto Engo's ECS
// render pipeline so the same game code drives both the window and the
// headless test surfaces.
package engo

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/EngoEngine/engo/common"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// Sprite is a GPU-backed image. The drawable is stretched to whatever
// size the surface blits it at, so scaled copies share the texture.
type Sprite struct {
	drawable common.Drawable
	width    int
	height   int
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// SpriteLoader loads PNG images from disk and converts them to Engo
// textures. Each path is decoded once and cached.
type SpriteLoader struct {
	sprites map[string]*Sprite
}

// NewSpriteLoader creates a sprite loader with an empty cache.
func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		sprites: make(map[string]*Sprite),
	}
}

// Load decodes the PNG at path into an Engo texture.
func (sl *SpriteLoader) Load(path string) (render.Image, error) {
	if sprite, ok := sl.sprites[path]; ok {
		return sprite, nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite file %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite file %s: %w", path, err)
	}

	bounds := img.Bounds()
	sprite := &Sprite{
		drawable: convertToEngoTexture(img),
		width:    bounds.Dx(),
		height:   bounds.Dy(),
	}
	sl.sprites[path] = sprite
	return sprite, nil
}

// convertToEngoTexture converts a decoded image to an Engo drawable.
func convertToEngoTexture(img image.Image) common.Drawable {
	nrgba := image.NewNRGBA(img.Bounds())
	draw.Draw(nrgba, img.Bounds(), img, img.Bounds().Min, draw.Src)

	texture := common.NewImageObject(nrgba)
	return common.NewTextureSingle(texture)
}

// SpriteScaler resizes sprites. The render system stretches each
// drawable to its space component's size, so both scale modes reuse the
// source texture and only the reported dimensions change.
type SpriteScaler struct{}

// SmoothScale returns a resized view of img.
func (SpriteScaler) SmoothScale(img render.Image, width, height int) (render.Image, error) {
	return SpriteScaler{}.Scale(img, width, height), nil
}

// Scale returns a resized view of img.
func (SpriteScaler) Scale(img render.Image, width, height int) render.Image {
	if sprite, ok := img.(*Sprite); ok {
		return &Sprite{
			drawable: sprite.drawable,
			width:    width,
			height:   height,
		}
	}
	return img
}
