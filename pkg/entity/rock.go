// pkg/entity/rock.go
package entity

import (
	"fmt"
	"math/rand/v2"

	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/physics"
	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// Rock is a drifting obstacle. A freshly spawned rock picks one of the
// configured size variants uniformly at random and starts centered on the
// caller-supplied point with zero velocity.
//
// The base no-op Update and CollidedWith are currently sufficient: rocks
// neither move nor react to hits.
type Rock struct {
	BaseElement

	variant int
}

// NewRock spawns a rock centered at the given point. variantPaths lists
// the image paths of the size variants; one is chosen uniformly at
// random using rng, or the shared generator when rng is nil.
func NewRock(loader render.ImageLoader, variantPaths []string, center physics.Vector2D, rng *rand.Rand) (*Rock, error) {
	if loader == nil {
		return nil, logging.WrapError(ErrNotReady, "cannot construct rock")
	}
	if len(variantPaths) == 0 {
		return nil, fmt.Errorf("no rock size variants configured")
	}

	var variant int
	if rng != nil {
		variant = rng.IntN(len(variantPaths))
	} else {
		variant = rand.IntN(len(variantPaths))
	}

	img, err := loader.Load(variantPaths[variant])
	if err != nil {
		return nil, logging.WrapError(err, "loading rock image %q", variantPaths[variant])
	}

	rock := &Rock{
		BaseElement: NewBaseElement(img, true),
		variant:     variant,
	}
	rock.Box = rock.Box.CenterOn(center)

	return rock, nil
}

// Variant returns the index of the size variant chosen at spawn
func (r *Rock) Variant() int {
	return r.variant
}
