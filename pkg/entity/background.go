// pkg/entity/background.go
package entity

import (
	"context"

	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// Background is the element drawn first each frame so that its image sits
// behind every other element. It never moves, never collides, and never
// reacts: the base no-op Update and CollidedWith are used as is.
type Background struct {
	BaseElement
}

// NewBackground loads the background image and scales it once to cover
// the entire surface. Scaling prefers the smooth operation and falls back
// to the lower-quality one when smooth scaling cannot handle the source
// image; the fallback is recovered locally and never surfaced.
func NewBackground(loader render.ImageLoader, scaler render.Scaler, surface render.Surface, path string, logger *logging.Logger) (*Background, error) {
	if loader == nil || scaler == nil || surface == nil {
		return nil, logging.WrapError(ErrNotReady, "cannot construct background")
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	img, err := loader.Load(path)
	if err != nil {
		return nil, logging.WrapError(err, "loading background image %q", path)
	}

	w, h := surface.Size()
	scaled, err := scaler.SmoothScale(img, w, h)
	if err != nil {
		logger.Warn(context.Background(), "smooth scaling failed, using fast scaling",
			"path", path, "error", err.Error())
		scaled = scaler.Scale(img, w, h)
	}

	return &Background{
		BaseElement: NewBaseElement(scaled, false),
	}, nil
}
