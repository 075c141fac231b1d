// pkg/input/controller.go
package input

import (
	"context"
	"errors"
	"math"

	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/physics"
)

// ErrNotReady is returned when the controller is constructed before the
// underlying input subsystem is live. The controller never initializes
// the subsystem itself.
var ErrNotReady = errors.New("input subsystem is not ready")

// FireThreshold is the button magnitude past which a joystick button
// counts as held.
const FireThreshold = 0.5

// Controller aggregates the keyboard and every attached joystick into
// three device-independent gameplay signals. The simulation driver owns
// exactly one Controller and passes it to every element's Update: the
// device list is enumerated and validated once at construction, and the
// per-frame reads below never re-check anything.
//
// Multiple devices driving the same signal simultaneously are summed,
// never flagged as a conflict.
type Controller struct {
	keyboard  Keyboard
	joysticks []Joystick
	// mappings[i] is the resolved, validated mapping for joysticks[i].
	mappings []DeviceMapping
	logger   *logging.Logger
}

// NewController enumerates the attached joysticks from source, resolves
// each device's mapping from table (falling back to the "default" entry),
// and validates every resolved mapping eagerly. Any missing required
// field is a fatal configuration error identifying the device GUID and
// whether its mapping was matched explicitly or fell back to default.
func NewController(keyboard Keyboard, source DeviceSource, table MappingTable, logger *logging.Logger) (*Controller, error) {
	if keyboard == nil || source == nil {
		return nil, logging.WrapError(ErrNotReady, "cannot construct controller")
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	c := &Controller{
		keyboard: keyboard,
		logger:   logger,
	}

	ctx := context.Background()
	joysticks := source.Joysticks()
	if len(joysticks) > 0 {
		logger.Info(ctx, "found joysticks", "count", len(joysticks))
	}

	for i, joystick := range joysticks {
		guid := joystick.GUID()
		logger.Info(ctx, "joystick attached",
			"index", i,
			"name", joystick.Name(),
			"guid", guid,
			"axes", joystick.NumAxes(),
			"buttons", joystick.NumButtons(),
		)

		mapping, explicit, err := table.Resolve(guid)
		if err != nil {
			return nil, err
		}
		if err := mapping.Validate(guid, explicit); err != nil {
			return nil, err
		}

		c.joysticks = append(c.joysticks, joystick)
		c.mappings = append(c.mappings, mapping)
	}

	return c, nil
}

// Lateral returns the combined left/right movement signal in [-1, 1].
// The keyboard's left and right arrows contribute -1 and +1; every
// joystick contributes its mapped paddle-axis value. Contributions are
// summed and clamped.
func (c *Controller) Lateral() float64 {
	movement := 0.0

	keys := c.keyboard.State()
	if keys.Left {
		movement -= 1.0
	}
	if keys.Right {
		movement += 1.0
	}

	for i, joystick := range c.joysticks {
		movement += joystick.Axis(*c.mappings[i].Paddle.Axis)
	}

	return physics.Clamp(movement, -1.0, 1.0)
}

// Thrust returns the combined forward/backward propulsion signal in
// [-1, 1]. The keyboard's up and down arrows contribute +1 and -1; every
// joystick contributes its mapped thrust-axis value multiplied by the
// mapping's invert flag. Contributions are summed and clamped.
func (c *Controller) Thrust() float64 {
	thrust := 0.0

	keys := c.keyboard.State()
	if keys.Up {
		thrust += 1.0
	}
	if keys.Down {
		thrust -= 1.0
	}

	for i, joystick := range c.joysticks {
		mapping := c.mappings[i].Thrust
		thrust += joystick.Axis(*mapping.Axis) * *mapping.Invert
	}

	return physics.Clamp(thrust, -1.0, 1.0)
}

// FireRequested reports whether any configured source is asking to fire:
// the keyboard's fire key held, or any joystick's mapped fire button past
// the threshold. It short-circuits on the first active source.
func (c *Controller) FireRequested() bool {
	if c.keyboard.State().Fire {
		return true
	}

	for i, joystick := range c.joysticks {
		if math.Abs(joystick.Button(*c.mappings[i].Fire.Button)) > FireThreshold {
			return true
		}
	}

	return false
}

// Joysticks returns the fixed device list enumerated at construction.
func (c *Controller) Joysticks() []Joystick {
	return c.joysticks
}
