// pkg/input/overlay_test.go
package input

import (
	"strings"
	"testing"

	"github.com/space-rocks/go-spacerocks/pkg/render"
)

func TestDebugOverlay_KeyboardOnly(t *testing.T) {
	ctrl := newTestController(t, KeyState{Left: true})
	surface := render.NewMemorySurface(800, 600)

	ctrl.DebugOverlay(surface)

	if len(surface.Texts) == 0 {
		t.Fatal("DebugOverlay() drew no text")
	}
	if surface.Texts[0].Text != "Keyboard:" {
		t.Errorf("first line = %q, expected the keyboard header", surface.Texts[0].Text)
	}

	var found bool
	for _, op := range surface.Texts {
		if strings.Contains(op.Text, "Left Arrow: true") {
			found = true
		}
	}
	if !found {
		t.Error("DebugOverlay() did not report the held left arrow")
	}
}

func TestDebugOverlay_ListsJoystickAxesAndButtons(t *testing.T) {
	device := &fakeJoystick{
		guid:    "g1",
		name:    "Test Pad",
		axes:    []float64{0.25, -0.5},
		buttons: []float64{1, 0},
	}
	ctrl := newTestController(t, KeyState{}, device)
	surface := render.NewMemorySurface(800, 600)

	ctrl.DebugOverlay(surface)

	joined := make([]string, len(surface.Texts))
	for i, op := range surface.Texts {
		joined[i] = op.Text
	}
	all := strings.Join(joined, "\n")

	for _, want := range []string{"Test Pad", "g1", "Axis 0: 0.250", "Axis 1: -0.500", "Button 0: 1.000", "Button 1: 0.000"} {
		if !strings.Contains(all, want) {
			t.Errorf("overlay output missing %q", want)
		}
	}
}

func TestDebugOverlay_WrapsIntoSecondColumn(t *testing.T) {
	// Ten axes on a short surface forces the line cursor past the bottom.
	device := &fakeJoystick{
		guid:    "g1",
		name:    "Tall Pad",
		axes:    make([]float64, 10),
		buttons: []float64{0},
	}
	ctrl := newTestController(t, KeyState{}, device)
	surface := render.NewMemorySurface(400, 200)

	ctrl.DebugOverlay(surface)

	var wrapped bool
	for _, op := range surface.Texts {
		if op.X == 200 { // half the surface width
			wrapped = true
		}
	}
	if !wrapped {
		t.Error("DebugOverlay() never wrapped into the second column")
	}
}
