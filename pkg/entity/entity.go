// pkg/entity/entity.go
package entity

import (
	"errors"
	"sync/atomic"

	"github.com/space-rocks/go-spacerocks/pkg/input"
	"github.com/space-rocks/go-spacerocks/pkg/physics"
	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// ErrNotReady is returned when an element is constructed before the
// render subsystem it depends on is live. Elements never initialize the
// subsystem themselves.
var ErrNotReady = errors.New("render subsystem is not ready")

// Element is the base interface for every object participating in the
// per-frame update/draw/collision cycle. The driver keeps elements in an
// ordered list: insertion order determines update order, collision-scan
// order, and paint order, so later-registered elements occlude earlier
// ones.
type Element interface {
	ID() uint64
	// Bounds returns the element's axis-aligned bounding box, derived
	// from its image dimensions and current position. Collision tests use
	// it verbatim.
	Bounds() physics.Rect
	// Collidable reports whether the element participates in collision
	// detection at all.
	Collidable() bool
	// Update advances internal state by dt milliseconds.
	Update(dt float64, ctrl *input.Controller, surface render.Surface) error
	// CollidedWith reacts to a detected overlap with another element.
	// The default is a no-op, which lets an element stay collidable for
	// the other side's benefit while ignoring hits itself.
	CollidedWith(other Element)
	// Draw blits the element's image at its current position.
	Draw(surface render.Surface)
}

// nextID hands out element identifiers. Identifiers are only ever used
// to tell elements apart in collision events and logs.
var nextID atomic.Uint64

// BaseElement contains the state and default behavior shared by every
// element. The bounding box is the single holder of the element's
// position (its top-left corner), so box and position can never drift
// apart.
type BaseElement struct {
	id       uint64
	image    render.Image
	Box      physics.Rect
	Velocity physics.Vector2D

	collidable bool
}

// NewBaseElement creates the shared element state for the given image.
// The bounding box takes the image's pixel dimensions, positioned at the
// surface origin until the caller moves it.
func NewBaseElement(img render.Image, collidable bool) BaseElement {
	return BaseElement{
		id:         nextID.Add(1),
		image:      img,
		Box:        physics.NewRect(0, 0, float64(img.Width()), float64(img.Height())),
		collidable: collidable,
	}
}

// ID returns the element's unique identifier
func (e *BaseElement) ID() uint64 {
	return e.id
}

// Bounds returns the element's bounding box
func (e *BaseElement) Bounds() physics.Rect {
	return e.Box
}

// Collidable reports whether the element takes part in collision detection
func (e *BaseElement) Collidable() bool {
	return e.collidable
}

// Image returns the immutable pixel buffer assigned at construction
func (e *BaseElement) Image() render.Image {
	return e.image
}

// SetImage replaces the element's image and resizes the bounding box to
// match, keeping the current top-left position. Only constructors use
// this, for images that are adjusted once before the game starts.
func (e *BaseElement) SetImage(img render.Image) {
	e.image = img
	e.Box = physics.NewRect(e.Box.X, e.Box.Y, float64(img.Width()), float64(img.Height()))
}

// Update is a no-op, suitable for static elements. Variants with physics
// override it.
func (e *BaseElement) Update(dt float64, ctrl *input.Controller, surface render.Surface) error {
	return nil
}

// CollidedWith is a no-op. Variants that react to hits override it.
func (e *BaseElement) CollidedWith(other Element) {}

// Draw blits the element's image at the bounding box position.
func (e *BaseElement) Draw(surface render.Surface) {
	surface.Blit(e.image, e.Box.X, e.Box.Y)
}
