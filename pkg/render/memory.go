// pkg/render/memory.go
package render

import "fmt"

// MemoryImage is an Image with dimensions only. It backs headless runs and
// tests, where no pixel data is ever rendered.
type MemoryImage struct {
	W, H int
}

// Width returns the image width in pixels
func (m *MemoryImage) Width() int { return m.W }

// Height returns the image height in pixels
func (m *MemoryImage) Height() int { return m.H }

// BlitOp records a single Blit call on a MemorySurface.
type BlitOp struct {
	Img  Image
	X, Y float64
}

// TextOp records a single DrawText call on a MemorySurface.
type TextOp struct {
	Text string
	X, Y float64
}

// MemorySurface is a Surface that records draw calls instead of rendering
// them. The engine's tests and the headless play mode run against it.
type MemorySurface struct {
	W, H  int
	Blits []BlitOp
	Texts []TextOp
}

// NewMemorySurface creates a recording surface with the given dimensions
func NewMemorySurface(w, h int) *MemorySurface {
	return &MemorySurface{W: w, H: h}
}

// Size implements Surface
func (s *MemorySurface) Size() (int, int) { return s.W, s.H }

// Blit implements Surface
func (s *MemorySurface) Blit(img Image, x, y float64) {
	s.Blits = append(s.Blits, BlitOp{Img: img, X: x, Y: y})
}

// DrawText implements Surface
func (s *MemorySurface) DrawText(text string, x, y float64) {
	s.Texts = append(s.Texts, TextOp{Text: text, X: x, Y: y})
}

// Clear discards everything recorded for the previous frame
func (s *MemorySurface) Clear() {
	s.Blits = s.Blits[:0]
	s.Texts = s.Texts[:0]
}

// StaticLoader is an ImageLoader backed by a fixed path-to-image table.
// The headless mode registers placeholder dimensions for every asset path
// named in the game configuration.
type StaticLoader struct {
	Images map[string]Image
}

// NewStaticLoader creates an empty static loader
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{Images: make(map[string]Image)}
}

// Register associates an image with an asset path
func (l *StaticLoader) Register(path string, img Image) {
	l.Images[path] = img
}

// Load implements ImageLoader
func (l *StaticLoader) Load(path string) (Image, error) {
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("no image registered for path %q", path)
	}
	return img, nil
}

// MemoryScaler is a Scaler for headless runs. Resizing a dimension-only
// image never needs filtering, so SmoothScale only fails when asked to via
// FailSmooth, which tests use to exercise the fallback path.
type MemoryScaler struct {
	FailSmooth bool
}

// SmoothScale implements Scaler
func (s *MemoryScaler) SmoothScale(img Image, w, h int) (Image, error) {
	if s.FailSmooth {
		return nil, fmt.Errorf("smooth scaling unsupported for %dx%d source", img.Width(), img.Height())
	}
	return &MemoryImage{W: w, H: h}, nil
}

// Scale implements Scaler
func (s *MemoryScaler) Scale(img Image, w, h int) Image {
	return &MemoryImage{W: w, H: h}
}
