package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cube-boxer/audio"
	"github.com/lixenwraith/cube-boxer/config"
	"github.com/lixenwraith/cube-boxer/core"
	"github.com/lixenwraith/cube-boxer/input"
	"github.com/lixenwraith/cube-boxer/parameter"
	"github.com/lixenwraith/cube-boxer/render"
)

var (
	configFlag = flag.String("config", "", "path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "write debug logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "random seed, 0 picks one")
	muteFlag   = flag.Bool("mute", false, "start with sound muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cube-boxer: %v\n", err)
		os.Exit(2)
	}
	applyFlags(&cfg)

	logFile := setupLogging(cfg.Host.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("exit", "err", err)
		fmt.Fprintf(os.Stderr, "cube-boxer: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set command line flags win over file and environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Host.Debug = *debugFlag
		case "seed":
			cfg.Host.Seed = *seedFlag
		case "mute":
			cfg.Host.Mute = *muteFlag
		}
	})
}

func run(cfg config.Config) error {
	gameCfg, err := cfg.GameConfig()
	if err != nil {
		return err
	}

	overrides, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return err
	}
	keys := input.MergeKeyTable(input.DefaultKeyTable(), overrides)

	seed := cfg.Host.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger := slog.Default()
	logger.Info("starting", "seed", seed, "config", *configFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.RegisterScreen(screen)
	defer core.RegisterScreen(nil)
	screen.HideCursor()

	sound := audio.NewManager(nil)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(cfg.Host.Mute)

	h, err := newHost(gameCfg, keys, render.NewRenderer(screen), sound, seed, logger, cfg.Host.Debug)
	if err != nil {
		return err
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() { screen.ChannelEvents(events, quit) })

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !h.handleEvent(ev) {
				logger.Info("quit", "result", h.game.Result())
				return nil
			}

		case now := <-frameTicker.C:
			dt := min(now.Sub(last), parameter.MaxTickDelta)
			last = now
			h.frame(dt)
		}
	}
}
