// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/space-rocks/go-spacerocks/pkg/config"
	"github.com/space-rocks/go-spacerocks/pkg/entity"
	"github.com/space-rocks/go-spacerocks/pkg/event"
	"github.com/space-rocks/go-spacerocks/pkg/input"
	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/physics"
	"github.com/space-rocks/go-spacerocks/pkg/render"
)

// Game drives the simulation. It owns the ordered element list, the one
// controller instance, and the event bus. Each frame is a fully
// synchronous sequence on a single goroutine: update every element,
// detect and dispatch collisions, then draw. Insertion order of the
// element list fixes update order, collision-scan order, and paint order.
type Game struct {
	Config     *config.GameConfig
	Elements   []entity.Element
	Controller *input.Controller
	EventBus   *event.Bus

	Running     bool
	CurrentTick uint64

	logger      *logging.Logger
	rng         *rand.Rand
	showOverlay bool
}

// NewGame builds the standard scenario: one background covering the
// surface, the player ship at the surface center, and the configured
// number of rocks at random positions. The surface must already be live;
// its dimensions place the elements.
func NewGame(cfg *config.GameConfig, ctrl *input.Controller, loader render.ImageLoader, scaler render.Scaler, surface render.Surface, logger *logging.Logger) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ctrl == nil {
		return nil, fmt.Errorf("controller input is required")
	}
	if surface == nil {
		return nil, fmt.Errorf("draw surface is required")
	}
	if logger == nil {
		logger = logging.NewLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game := &Game{
		Config:      cfg,
		Controller:  ctrl,
		EventBus:    event.NewEventBus(),
		logger:      logger,
		rng:         rand.New(rand.NewPCG(seed, seed)),
		showOverlay: cfg.ShowOverlay,
	}

	background, err := entity.NewBackground(loader, scaler, surface, cfg.Assets.Background, logger)
	if err != nil {
		return nil, err
	}
	game.AddElement(background)

	w, h := surface.Size()
	for i := 0; i < cfg.Rocks.Count; i++ {
		center := physics.Vector2D{
			X: game.rng.Float64() * float64(w),
			Y: game.rng.Float64() * float64(h),
		}
		rock, err := entity.NewRock(loader, cfg.Assets.Rocks, center, game.rng)
		if err != nil {
			return nil, err
		}
		game.AddElement(rock)
	}

	ship, err := entity.NewShip(loader, cfg.Assets.Ship,
		physics.Vector2D{X: float64(w) / 2, Y: float64(h) / 2},
		cfg.Physics.ThrusterSpeedPPM)
	if err != nil {
		return nil, err
	}
	game.AddElement(ship)

	return game, nil
}

// AddElement appends an element to the ordered list. Elements added
// later are updated, scanned, and painted after (and therefore on top
// of) elements added earlier.
func (g *Game) AddElement(el entity.Element) {
	g.Elements = append(g.Elements, el)
}

// Step runs one frame: update, collide, draw. dt is the elapsed
// milliseconds since the previous frame. The caller has already cleared
// the surface. Any element error aborts the frame and propagates; there
// is no per-frame recovery.
func (g *Game) Step(dt float64, surface render.Surface) error {
	if surface == nil {
		return fmt.Errorf("step requires a draw surface")
	}
	g.CurrentTick++

	for _, el := range g.Elements {
		if err := el.Update(dt, g.Controller, surface); err != nil {
			return logging.WrapError(err, "updating element %d", el.ID())
		}
	}

	g.dispatchCollisions()

	for _, el := range g.Elements {
		el.Draw(surface)
	}

	if g.showOverlay {
		g.Controller.DebugOverlay(surface)
	}

	return nil
}

// dispatchCollisions tests every collidable element against every other
// collidable element and notifies each detected overlap. The outer loop
// visits each element independently, so an overlapping pair (A, B)
// triggers CollidedWith on both sides without a symmetric check. One
// collision event per unordered pair is published before the draw phase.
//
// All-pairs is O(n^2) over collidable elements, which is fine at the
// element counts this game runs (tens).
func (g *Game) dispatchCollisions() {
	collidable := make([]entity.Element, 0, len(g.Elements))
	for _, el := range g.Elements {
		if el.Collidable() {
			collidable = append(collidable, el)
		}
	}

	for i, a := range collidable {
		for j, b := range collidable {
			if i == j {
				continue
			}
			if !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			a.CollidedWith(b)
			if i < j {
				g.EventBus.Publish(event.NewCollisionEvent(g, a.ID(), b.ID()))
			}
		}
	}
}

// AnnounceDevices publishes one DeviceAttached event per joystick the
// controller found. It runs at loop start rather than in NewGame so
// subscribers registered between construction and Run observe them.
func (g *Game) AnnounceDevices() {
	for _, joystick := range g.Controller.Joysticks() {
		g.EventBus.Publish(event.NewDeviceEvent(g, joystick.GUID(), joystick.Name()))
	}
}

// ToggleOverlay flips the controller diagnostic overlay.
func (g *Game) ToggleOverlay() {
	g.showOverlay = !g.showOverlay
}

// Run drives the frame loop until the context is cancelled or a frame
// fails. The clock's Tick is the loop's only blocking call: it paces the
// loop to the configured frame rate and reports the elapsed
// milliseconds to integrate over.
func (g *Game) Run(ctx context.Context, clock Clock, surface render.Surface) error {
	if clock == nil {
		return fmt.Errorf("run requires a frame clock")
	}

	g.Running = true
	g.AnnounceDevices()
	g.EventBus.Publish(event.NewGameEvent(event.GameStarted, g, g.CurrentTick))
	g.logger.Info(ctx, "game started",
		"elements", len(g.Elements),
		"fps", g.Config.Screen.FPS,
	)

	defer func() {
		g.Running = false
		g.EventBus.Publish(event.NewGameEvent(event.GameEnded, g, g.CurrentTick))
		g.logger.Info(ctx, "game ended", "ticks", g.CurrentTick)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		dt := clock.Tick(g.Config.Screen.FPS)
		if err := g.Step(dt, surface); err != nil {
			return err
		}
	}
}
