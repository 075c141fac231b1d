package main

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/space-rocks/go-spacerocks/pkg/config"
	"github.com/space-rocks/go-spacerocks/pkg/engine"
	"github.com/space-rocks/go-spacerocks/pkg/event"
	"github.com/space-rocks/go-spacerocks/pkg/input"
	"github.com/space-rocks/go-spacerocks/pkg/logging"
	"github.com/space-rocks/go-spacerocks/pkg/render"
	engorender "github.com/space-rocks/go-spacerocks/pkg/render/engo"
)

var (
	flagHeadless bool
	flagFrames   int
	flagOverlay  bool
	flagSeed     uint64
	flagFPS      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game in a window, or headless for a smoke run.

Controls:
  Arrows/WASD - Steer and thrust
  Space       - Fire
  Tab         - Toggle the input debug overlay
  Esc         - Quit

Headless mode runs the full simulation against an in-memory surface.
With --frames it stops after that many frames, which makes it usable
as a deterministic smoke test:

  spacerocks play --headless --frames 550 --seed 42`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a window")
	playCmd.Flags().IntVar(&flagFrames, "frames", 0, "Headless: stop after this many frames (0 = until interrupted)")
	playCmd.Flags().BoolVar(&flagOverlay, "overlay", false, "Start with the input debug overlay visible")
	playCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Override the RNG seed (0 = use config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Override the target frame rate (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger()

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagOverlay {
		cfg.ShowOverlay = true
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}

	mappings, err := loadMappings(cfg, logger)
	if err != nil {
		return err
	}

	if flagHeadless {
		return runHeadless(cfg, mappings, logger)
	}

	engorender.Run(cfg, mappings, logger)
	return nil
}

// loadGameConfig reads --config, or falls back to the built-in defaults.
func loadGameConfig() (*config.GameConfig, error) {
	if flagConfig == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(flagConfig)
}

// loadMappings reads the controller mapping table named by the config.
// A missing file is not an error: the built-in table covers the
// keyboard and the known controllers.
func loadMappings(cfg *config.GameConfig, logger *logging.Logger) (input.MappingTable, error) {
	if _, err := os.Stat(cfg.MappingPath); os.IsNotExist(err) {
		logger.Debug(context.Background(), "no mapping file, using built-in table",
			"path", cfg.MappingPath,
		)
		return input.DefaultMappingTable(), nil
	}
	return input.LoadMappingTable(cfg.MappingPath)
}

// idleKeyboard is the headless keyboard: no keys are ever down.
type idleKeyboard struct{}

func (idleKeyboard) State() input.KeyState { return input.KeyState{} }

// noDevices is the headless device source.
type noDevices struct{}

func (noDevices) Joysticks() []input.Joystick { return nil }

// limitClock paces the headless loop. Each tick starts a new frame, so
// it drops the previous frame's recorded draw ops, and it cancels the
// run context once the frame budget is spent.
type limitClock struct {
	inner   engine.Clock
	surface *render.MemorySurface
	limit   int
	ticks   int
	cancel  context.CancelFunc
}

func (c *limitClock) Tick(targetFPS int) float64 {
	c.surface.Clear()
	c.ticks++
	if c.limit > 0 && c.ticks >= c.limit {
		c.cancel()
	}
	return c.inner.Tick(targetFPS)
}

func runHeadless(cfg *config.GameConfig, mappings input.MappingTable, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl, err := input.NewController(idleKeyboard{}, noDevices{}, mappings, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize input controller: %w", err)
	}

	surface := render.NewMemorySurface(cfg.Screen.Width, cfg.Screen.Height)
	loader := &dimsLoader{logger: logger}

	game, err := engine.NewGame(cfg, ctrl, loader, &render.MemoryScaler{}, surface, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	game.EventBus.Subscribe(event.DeviceAttached, func(e event.Event) {
		if d, ok := e.(*event.DeviceEvent); ok {
			logger.Info(ctx, "joystick attached",
				"guid", d.GUID,
				"name", d.Name,
			)
		}
	})
	game.EventBus.Subscribe(event.ElementCollision, func(e event.Event) {
		if c, ok := e.(*event.CollisionEvent); ok {
			logger.Info(ctx, "collision",
				"elementA", c.ElementA,
				"elementB", c.ElementB,
			)
		}
	})

	clock := &limitClock{
		inner:   engine.NewWallClock(),
		surface: surface,
		limit:   flagFrames,
		cancel:  cancel,
	}
	if err := game.Run(ctx, clock, surface); err != nil {
		return err
	}

	fmt.Printf("headless run finished: %d frames, %d elements\n",
		game.CurrentTick, len(game.Elements))
	return nil
}

// dimsLoader backs the headless run. Only image dimensions matter to
// the simulation, so it decodes each asset's header; if the file is
// missing it substitutes a placeholder size so smoke runs work without
// shipped artwork.
type dimsLoader struct {
	logger *logging.Logger
}

func (l *dimsLoader) Load(path string) (render.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		l.logger.Warn(context.Background(), "asset missing, using placeholder size",
			"path", path,
		)
		return &render.MemoryImage{W: 64, H: 64}, nil
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", path, err)
	}
	return &render.MemoryImage{W: cfg.Width, H: cfg.Height}, nil
}
