// pkg/input/overlay.go
package input

import (
	"fmt"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// overlayLineHeight is the vertical spacing of the diagnostic text lines.
const overlayLineHeight = 24

// DebugOverlay renders the live keyboard and per-joystick axis/button
// values as stacked text lines, wrapping into a second column at half the
// surface width when vertical space runs out. Diagnostic only; gameplay
// never reads anything from it.
func (c *Controller) DebugOverlay(surface render.Surface) {
	var lines []string

	keys := c.keyboard.State()
	lines = append(lines,
		"Keyboard:",
		fmt.Sprintf("  Left Arrow: %t", keys.Left),
		fmt.Sprintf("  Right Arrow: %t", keys.Right),
		fmt.Sprintf("  Up Arrow: %t", keys.Up),
		fmt.Sprintf("  Down Arrow: %t", keys.Down),
		fmt.Sprintf("  Fire: %t", keys.Fire),
	)

	for i, joystick := range c.joysticks {
		lines = append(lines,
			fmt.Sprintf("Joystick %d", i),
			fmt.Sprintf("  Name: %s", joystick.Name()),
			fmt.Sprintf("  GUID: %s", joystick.GUID()),
		)
		for axis := 0; axis < joystick.NumAxes(); axis++ {
			lines = append(lines, fmt.Sprintf("  Axis %d: %.3f", axis, joystick.Axis(axis)))
		}
		for button := 0; button < joystick.NumButtons(); button++ {
			lines = append(lines, fmt.Sprintf("  Button %d: %.3f", button, joystick.Button(button)))
		}
	}

	w, h := surface.Size()
	x, y := 10.0, 10.0
	for _, line := range lines {
		surface.DrawText(line, x, y)
		y += overlayLineHeight
		if y+overlayLineHeight+10 >= float64(h) {
			x = float64(w) / 2
			y = 10
		}
	}
}
