// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/space-rocks/go-spacerocks/pkg/input"
)

// Button names registered with Engo's input manager.
const (
	buttonLeft    = "steerLeft"
	buttonRight   = "steerRight"
	buttonThrust  = "thrust"
	buttonReverse = "reverse"
	buttonFire    = "fire"
	buttonOverlay = "debugOverlay"
	buttonQuit    = "quit"
)

// registerButtons binds the game's keyboard controls. Must run inside
// scene setup, after the Engo window exists.
func registerButtons() {
	engo.Input.RegisterButton(buttonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(buttonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(buttonThrust, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(buttonReverse, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(buttonFire, engo.KeySpace)
	engo.Input.RegisterButton(buttonOverlay, engo.KeyTab)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape)
}

// Keyboard reads key state from Engo's input manager.
type Keyboard struct{}

// State samples the currently held keys.
func (Keyboard) State() input.KeyState {
	return input.KeyState{
		Left:    engo.Input.Button(buttonLeft).Down(),
		Right:   engo.Input.Button(buttonRight).Down(),
		Up:      engo.Input.Button(buttonThrust).Down(),
		Down:    engo.Input.Button(buttonReverse).Down(),
		Fire:    engo.Input.Button(buttonFire).Down(),
		Overlay: engo.Input.Button(buttonOverlay).Down(),
	}
}

// NoJoysticks is a device source for platforms where no joystick
// backend is wired up. The controller still serves keyboard input.
type NoJoysticks struct{}

// Joysticks returns no devices.
func (NoJoysticks) Joysticks() []input.Joystick {
	return nil
}
