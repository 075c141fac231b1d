// pkg/render/engo/assets_test.go
package engo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

func TestSpriteLoader_MissingFile(t *testing.T) {
	loader := NewSpriteLoader()
	if _, err := loader.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing sprite file")
	}
}

func TestSpriteLoader_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	loader := NewSpriteLoader()
	if _, err := loader.Load(path); err == nil {
		t.Error("expected error for malformed sprite file")
	}
}

func TestSpriteScaler_ResizesWithoutCopy(t *testing.T) {
	src := &Sprite{width: 64, height: 48}
	scaler := SpriteScaler{}

	scaled := scaler.Scale(src, 800, 600)
	sprite, ok := scaled.(*Sprite)
	if !ok {
		t.Fatalf("Scale returned %T, want *Sprite", scaled)
	}
	if sprite.Width() != 800 || sprite.Height() != 600 {
		t.Errorf("scaled size = %dx%d, want 800x600", sprite.Width(), sprite.Height())
	}
	if src.Width() != 64 || src.Height() != 48 {
		t.Error("Scale modified the source sprite")
	}
}

func TestSpriteScaler_SmoothScaleNeverFails(t *testing.T) {
	src := &Sprite{width: 10, height: 10}

	scaled, err := SpriteScaler{}.SmoothScale(src, 20, 30)
	if err != nil {
		t.Fatalf("SmoothScale returned error: %v", err)
	}
	if scaled.Width() != 20 || scaled.Height() != 30 {
		t.Errorf("scaled size = %dx%d, want 20x30", scaled.Width(), scaled.Height())
	}
}

func TestSpriteScaler_PassesThroughForeignImages(t *testing.T) {
	foreign := &render.MemoryImage{W: 5, H: 5}

	scaled := SpriteScaler{}.Scale(foreign, 10, 10)
	if scaled != foreign {
		t.Error("expected foreign image to pass through unchanged")
	}
}

func TestNoJoysticks_ReturnsNoDevices(t *testing.T) {
	if devices := (NoJoysticks{}).Joysticks(); len(devices) != 0 {
		t.Errorf("expected no joysticks, got %d", len(devices))
	}
}
