// pkg/entity/ship.go
package entity

import (
	"fmt"

	"github.com/space-rocks/go-spacerocks/pkg/input"
	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/physics"
	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// DefaultOrientation points straight up in screen space. Ship images are
// drawn with the ship's nose at the top of the picture, matching it.
var DefaultOrientation = physics.Vector2D{X: 0, Y: -1}

// Ship is the player-controlled element. Its orientation is a unit vector
// pointing where the nose faces; the thrusters always accelerate along
// it. Orientation is fixed at construction.
type Ship struct {
	BaseElement

	orientation physics.Vector2D
	// thrusterSpeed is the velocity gained, in pixels per millisecond,
	// for each frame of full thrust.
	thrusterSpeed float64
}

// NewShip loads the ship image and places the ship centered at the given
// point, facing up, at rest.
func NewShip(loader render.ImageLoader, path string, center physics.Vector2D, thrusterSpeedPPM float64) (*Ship, error) {
	if loader == nil {
		return nil, logging.WrapError(ErrNotReady, "cannot construct ship")
	}
	if thrusterSpeedPPM <= 0 {
		return nil, fmt.Errorf("invalid thruster speed %v: must be positive", thrusterSpeedPPM)
	}

	img, err := loader.Load(path)
	if err != nil {
		return nil, logging.WrapError(err, "loading ship image %q", path)
	}

	ship := &Ship{
		BaseElement:   NewBaseElement(img, true),
		orientation:   DefaultOrientation,
		thrusterSpeed: thrusterSpeedPPM,
	}
	ship.Box = ship.Box.CenterOn(center)

	return ship, nil
}

// Update integrates the thrust signal into velocity and velocity into
// position. Thrust accumulates without decay: there is no drag term, so
// held thrust grows speed without bound. dt is in milliseconds.
func (s *Ship) Update(dt float64, ctrl *input.Controller, surface render.Surface) error {
	if ctrl == nil {
		return fmt.Errorf("ship update requires the controller input")
	}
	if surface == nil {
		return fmt.Errorf("ship update requires a draw surface for boundary checks")
	}

	s.Velocity = s.Velocity.Add(s.orientation.Scale(ctrl.Thrust() * s.thrusterSpeed))
	s.Box = s.Box.MoveTo(s.Box.TopLeft().Add(s.Velocity.Scale(dt)))

	return nil
}

// Orientation returns the unit vector the ship's nose points along
func (s *Ship) Orientation() physics.Vector2D {
	return s.orientation
}
