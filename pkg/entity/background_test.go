// pkg/entity/background_test.go
package entity

import (
	"testing"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

func TestNewBackground_ScalesToSurface(t *testing.T) {
	loader := render.NewStaticLoader()
	loader.Register("space.png", &render.MemoryImage{W: 100, H: 100})
	surface := render.NewMemorySurface(800, 600)

	bg, err := NewBackground(loader, &render.MemoryScaler{}, surface, "space.png", nil)
	if err != nil {
		t.Fatalf("NewBackground() failed: %v", err)
	}

	if bg.Collidable() {
		t.Error("background is collidable")
	}
	bounds := bg.Bounds()
	if bounds.W != 800 || bounds.H != 600 {
		t.Errorf("background box = %vx%v, expected surface size 800x600", bounds.W, bounds.H)
	}
	if bounds.X != 0 || bounds.Y != 0 {
		t.Errorf("background position = (%v, %v), expected the surface origin", bounds.X, bounds.Y)
	}
}

func TestNewBackground_SmoothScaleFallback(t *testing.T) {
	loader := render.NewStaticLoader()
	loader.Register("space.png", &render.MemoryImage{W: 100, H: 100})
	surface := render.NewMemorySurface(640, 480)

	// The smooth path fails; the fast path must cover the surface anyway
	// and the failure must not reach the caller.
	bg, err := NewBackground(loader, &render.MemoryScaler{FailSmooth: true}, surface, "space.png", nil)
	if err != nil {
		t.Fatalf("NewBackground() surfaced the scaling fallback: %v", err)
	}

	bounds := bg.Bounds()
	if bounds.W != 640 || bounds.H != 480 {
		t.Errorf("background box = %vx%v, expected 640x480", bounds.W, bounds.H)
	}
}

func TestNewBackground_Preconditions(t *testing.T) {
	loader := render.NewStaticLoader()
	loader.Register("space.png", &render.MemoryImage{W: 1, H: 1})
	surface := render.NewMemorySurface(10, 10)
	scaler := &render.MemoryScaler{}

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "nil_loader",
			call: func() error {
				_, err := NewBackground(nil, scaler, surface, "space.png", nil)
				return err
			},
		},
		{
			name: "nil_scaler",
			call: func() error {
				_, err := NewBackground(loader, nil, surface, "space.png", nil)
				return err
			},
		},
		{
			name: "nil_surface",
			call: func() error {
				_, err := NewBackground(loader, scaler, nil, "space.png", nil)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err == nil {
				t.Fatal("NewBackground() accepted a missing collaborator")
			}
		})
	}
}
