// Package input reconciles keyboard state and zero-or-more joystick
// devices into the unified gameplay signals the game elements read:
// lateral movement, thrust, and fire. The physical devices are consumed
// through the narrow interfaces below; enumerating them from the
// operating system is the frontend's job.
package input

// KeyState is a snapshot of the keyboard keys the game reads.
type KeyState struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Fire    bool
	Overlay bool
}

// Keyboard exposes the current keyboard key-state table.
type Keyboard interface {
	State() KeyState
}

// Joystick is a raw handle to one attached joystick device. The GUID is a
// stable identifier for the device model and keys the mapping table lookup.
type Joystick interface {
	GUID() string
	Name() string
	NumAxes() int
	NumButtons() int
	// Axis returns the current value of the given axis in [-1, 1].
	Axis(i int) float64
	// Button returns the current magnitude of the given button. Digital
	// buttons report 0 or 1; triggers may report intermediate values.
	Button(i int) float64
}

// DeviceSource enumerates the joysticks attached at controller
// construction time. There is no hot-plug handling: the returned list is
// read exactly once and fixed for the controller's lifetime.
type DeviceSource interface {
	Joysticks() []Joystick
}
