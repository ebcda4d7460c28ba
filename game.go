package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *system.InputSystem
	physics   *system.PhysicsSystem

	sprites *render.SpriteRenderer
	overlay *render.OverlayUI

	watcher *prefabs.Watcher
	logger  *zap.Logger

	width        int
	height       int
	debugPhysics bool

	now  func() time.Time
	last time.Time
}

type gameOptions struct {
	spec         *prefabs.GameSpec
	keys         system.KeySource
	watcher      *prefabs.Watcher
	debugPhysics bool
}

func NewGame(opts gameOptions, logger *zap.Logger) (*Game, error) {
	if opts.spec == nil {
		return nil, fmt.Errorf("game: nil spec")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := ecs.NewWorld()
	if err := spawnWorld(w); err != nil {
		return nil, err
	}

	input := system.NewInputSystem(opts.keys)
	physics := system.NewPhysicsSystem(system.PhysicsConfig{
		PixelsPerMeter: opts.spec.Physics.PixelsPerMeter,
		Gravity:        opts.spec.Physics.Gravity,
		Iterations:     opts.spec.Physics.Iterations,
		MaxSubsteps:    opts.spec.Physics.MaxSubsteps,
	}, logger)
	scheduler := newScheduler(input, physics, opts.spec.Diagnostics, logger)

	return &Game{
		world:        w,
		scheduler:    scheduler,
		input:        input,
		physics:      physics,
		sprites:      render.NewSpriteRenderer(),
		overlay:      render.NewOverlayUI(),
		watcher:      opts.watcher,
		logger:       logger,
		width:        opts.spec.Width,
		height:       opts.spec.Height,
		debugPhysics: opts.debugPhysics || opts.spec.Physics.Debug,
		now:          time.Now,
	}, nil
}

// spawnWorld creates the startup entities.
func spawnWorld(w *ecs.World) error {
	if _, err := entity.NewCamera(w); err != nil {
		return err
	}
	if _, err := entity.NewPlayer(w); err != nil {
		return err
	}
	if _, err := entity.NewFPSOverlay(w); err != nil {
		return err
	}
	if _, err := entity.NewGround(w); err != nil {
		return err
	}
	return nil
}

// newScheduler fixes the per-frame order. The camera runs after the player
// controller and physics so it never lags the player by a frame.
func newScheduler(input *system.InputSystem, physics *system.PhysicsSystem, diagSpec prefabs.DiagnosticsSpec, logger *zap.Logger) *ecs.Scheduler {
	diag := system.NewFrameDiagnostics(diagSpec.HistoryLength)
	return ecs.NewScheduler(
		diag,
		input,
		system.NewPlayerControllerSystem(logger),
		physics,
		system.NewPlayerAnimationSystem(),
		system.NewAnimationSystem(),
		system.NewCameraSystem(logger),
		system.NewFPSOverlaySystem(diag),
		system.NewDiagnosticsLogSystem(diag, diagSpec.LogInterval, logger),
	)
}

func (g *Game) Update() error {
	now := g.now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.reloadPrefabs()
	g.scheduler.Update(g.world, dt)

	if g.input.QuitRequested() {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	g.overlay.Update(g.world)
	return nil
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Changed() {
		switch name {
		case "player.yaml":
			g.reloadPlayer()
		default:
			g.logger.Debug("prefab changed, no live reload", zap.String("file", name))
		}
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			g.logger.Warn("prefab watcher error", zap.Error(err))
		}
	default:
	}
}

func (g *Game) reloadPlayer() {
	player, ok := g.world.Singletons().Player(g.world)
	if !ok {
		g.logger.Warn("player.yaml changed but there is no player")
		return
	}
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		g.logger.Warn("reload player.yaml", zap.Error(err))
		return
	}
	if err := entity.ApplyPlayerSpec(g.world, player, spec); err != nil {
		g.logger.Warn("apply player.yaml", zap.Error(err))
		return
	}
	g.logger.Info("player.yaml reloaded", zap.Float64("move_speed", spec.MoveSpeed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	vp := render.CameraViewport(g.world, float64(g.width), float64(g.height))
	g.sprites.Draw(g.world, screen, vp)
	if g.debugPhysics {
		render.DrawPhysicsDebug(g.physics.Space(), screen, vp)
	}
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
