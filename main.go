package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golangdaddy/pistonbay/pkg/config"
	"github.com/golangdaddy/pistonbay/pkg/dyno"
	"github.com/golangdaddy/pistonbay/pkg/game"
	"github.com/golangdaddy/pistonbay/pkg/models/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	opts, err := config.ParseArgs(config.NewFlagSet("pistonbay"), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := logrus.New()
	log.SetLevel(opts.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	presets, preset, err := selectEngine(opts)
	if err != nil {
		log.WithError(err).Fatal("engine")
	}
	log.WithFields(logrus.Fields{
		"engine":    presets[preset].Name,
		"cylinders": presets[preset].CylinderCount,
		"layout":    presets[preset].Layout,
	}).Info("engine selected")

	if opts.Dyno {
		plan := dyno.DefaultPlan()
		plan.Duration = opts.DynoSeconds
		plan.Step = opts.DynoStep
		samples := dyno.Run(presets[preset], plan)
		log.WithField("samples", len(samples)).Debug("dyno pull finished")
		fmt.Println(dyno.Report(presets[preset], samples))
		return
	}

	g := game.New(opts, presets, preset, log)
	defer g.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Piston Bay")
	ebiten.SetTPS(opts.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game stopped")
	}
}

// selectEngine returns the engines the menu offers and which one is selected.
// An engine file is offered first, ahead of the built-in presets.
func selectEngine(opts config.Options) ([]engine.Config, int, error) {
	presets := engine.Presets()
	if opts.EngineFile != "" {
		cfg, err := engine.LoadConfigFile(opts.EngineFile)
		if err != nil {
			return nil, 0, err
		}
		return append([]engine.Config{cfg}, presets...), 0, nil
	}
	if opts.Preset >= len(presets) {
		return nil, 0, fmt.Errorf("preset %d out of range, %d presets available", opts.Preset, len(presets))
	}
	return presets, opts.Preset, nil
}
