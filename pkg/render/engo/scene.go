// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/space-rocks/go-spacerocks/pkg/config"
	"github.com/space-rocks/go-spacerocks/pkg/engine"
	"github.com/space-rocks/go-spacerocks/pkg/event"
	"github.com/space-rocks/go-spacerocks/pkg/input"
	"github.com/space-rocks/go-spacerocks/pkg/logging"
)

// GameScene is the single Engo scene. Setup wires the keyboard, the
// input controller, and the game itself; the frame loop then runs as
// an ECS system driven by Engo's update cadence.
type GameScene struct {
	cfg      *config.GameConfig
	mappings input.MappingTable
	logger   *logging.Logger

	world *ecs.World
	game  *engine.Game
}

// NewGameScene creates the scene for the given configuration and
// controller mapping table.
func NewGameScene(cfg *config.GameConfig, mappings input.MappingTable, logger *logging.Logger) *GameScene {
	return &GameScene{
		cfg:      cfg,
		mappings: mappings,
		logger:   logger,
		world:    &ecs.World{},
	}
}

// Type uniquely identifies the scene within Engo.
func (scene *GameScene) Type() string {
	return "spaceRocksGame"
}

// Preload queues the overlay font with Engo's asset loader.
func (scene *GameScene) Preload() {
	if scene.cfg.Assets.Font == "" {
		return
	}
	if err := engo.Files.Load(scene.cfg.Assets.Font); err != nil {
		scene.logger.Warn(context.Background(), "failed to preload overlay font, overlay text disabled",
			"path", scene.cfg.Assets.Font,
			"error", err,
		)
	}
}

// Setup builds the game world. Engo gives no way to report a setup
// failure, so unrecoverable errors panic.
func (scene *GameScene) Setup(u engo.Updater) {
	ctx := context.Background()
	scene.world = &ecs.World{}

	renderSystem := &common.RenderSystem{}
	scene.world.AddSystem(renderSystem)

	registerButtons()

	surface := NewSurface(renderSystem, scene.cfg.Screen.Width, scene.cfg.Screen.Height)
	if scene.cfg.Assets.Font != "" {
		font := &common.Font{
			URL:  scene.cfg.Assets.Font,
			FG:   color.White,
			Size: 14,
		}
		if err := font.CreatePreloaded(); err != nil {
			scene.logger.Warn(ctx, "failed to create overlay font, overlay text disabled",
				"path", scene.cfg.Assets.Font,
				"error", err,
			)
		} else {
			surface.SetFont(font)
		}
	}

	ctrl, err := input.NewController(Keyboard{}, NoJoysticks{}, scene.mappings, scene.logger)
	if err != nil {
		panic("failed to initialize input controller: " + err.Error())
	}

	game, err := engine.NewGame(scene.cfg, ctrl, NewSpriteLoader(), SpriteScaler{}, surface, scene.logger)
	if err != nil {
		panic("failed to initialize game: " + err.Error())
	}
	scene.game = game

	scene.world.AddSystem(&frameSystem{
		game:    game,
		surface: surface,
		logger:  scene.logger,
	})

	// Engo owns the frame loop here, so the lifecycle events that
	// Game.Run would publish are raised from the scene instead.
	game.Running = true
	game.AnnounceDevices()
	game.EventBus.Publish(event.NewGameEvent(event.GameStarted, game, game.CurrentTick))

	scene.logger.Info(ctx, "scene ready",
		"width", scene.cfg.Screen.Width,
		"height", scene.cfg.Screen.Height,
	)
}

// Exit runs when the window closes.
func (scene *GameScene) Exit() {
	if scene.game == nil {
		return
	}
	scene.game.Running = false
	scene.game.EventBus.Publish(event.NewGameEvent(event.GameEnded, scene.game, scene.game.CurrentTick))
	scene.logger.Info(context.Background(), "game ended", "ticks", scene.game.CurrentTick)
}

// frameSystem advances the game once per Engo update. Engo paces the
// frame rate, so the system only converts the elapsed seconds to
// milliseconds and steps the simulation.
type frameSystem struct {
	game    *engine.Game
	surface *Surface
	logger  *logging.Logger
}

// Remove satisfies the ecs.System interface. The system tracks no
// entities.
func (fs *frameSystem) Remove(basic ecs.BasicEntity) {}

// Update runs one frame: input edge handling, then a simulation step
// against the retained-entity surface.
func (fs *frameSystem) Update(dt float32) {
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
		return
	}
	if engo.Input.Button(buttonOverlay).JustPressed() {
		fs.game.ToggleOverlay()
	}

	fs.surface.BeginFrame()
	if err := fs.game.Step(float64(dt)*1000, fs.surface); err != nil {
		fs.logger.Error(context.Background(), "frame step failed", err)
		engo.Exit()
		return
	}
	fs.surface.EndFrame()
}

// Run opens the game window and blocks until the player quits.
func Run(cfg *config.GameConfig, mappings input.MappingTable, logger *logging.Logger) {
	opts := engo.RunOptions{
		Title:  cfg.Screen.Title,
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		VSync:  true,
	}
	engo.Run(opts, NewGameScene(cfg, mappings, logger))
}
