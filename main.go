package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes")
	watch := flag.Bool("watch", false, "hot reload prefabs from ./prefabs")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := common.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*debug, *watch, logger); err != nil {
		logger.Fatal("game exited with error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func run(debug, watch bool, logger *zap.Logger) error {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return err
	}
	width, height := spec.Width, spec.Height
	if width <= 0 || height <= 0 {
		width, height = common.BaseWidth, common.BaseHeight
		spec.Width, spec.Height = width, height
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	if _, err := render.LoadImage(playerSpec.Sprite.Image); err != nil {
		return fmt.Errorf("load player sheet: %w", err)
	}

	var watcher *prefabs.Watcher
	if watch {
		watcher, err = prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		logger.Info("watching prefabs", zap.String("dir", prefabs.DiskDir))
	}

	game, err := NewGame(gameOptions{
		spec:         spec,
		keys:         newEbitenKeys(),
		watcher:      watcher,
		debugPhysics: debug,
	}, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(spec.Title)
	if spec.TPS > 0 {
		ebiten.SetTPS(spec.TPS)
	}

	logger.Info("starting",
		zap.String("title", spec.Title),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return ebiten.RunGame(game)
}
