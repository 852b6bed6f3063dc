package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 600
	DefaultTPS    = 60
)

// Options holds all command line flags
type Options struct {
	// Window
	Width  int
	Height int
	TPS    int

	// Engine
	Preset     int    // index into engine.Presets()
	EngineFile string // optional JSON engine description, overrides Preset
	SaveFile   string // optional workshop save, remembers the engine between runs

	// Ambient
	Mute     bool
	LogLevel logrus.Level

	// Headless dynamometer run
	Dyno        bool
	DynoSeconds float64
	DynoStep    float64
}

// NewFlagSet returns a FlagSet with usage text
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s: piston engine workshop\n\nUsage of %s:\n", name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs binds the flags to fs and parses args
func ParseArgs(fs *flag.FlagSet, args []string) (Options, error) {
	var o Options
	var level string

	fs.IntVar(&o.Width, "width", DefaultWidth, "window width")
	fs.IntVar(&o.Height, "height", DefaultHeight, "window height")
	fs.IntVar(&o.TPS, "tps", DefaultTPS, "simulation ticks per second")
	fs.IntVar(&o.Preset, "preset", 0, "engine preset index")
	fs.StringVar(&o.EngineFile, "engine", "", "JSON engine description to load instead of a preset")
	fs.StringVar(&o.SaveFile, "save", "", "workshop save file that remembers the selected engine")
	fs.BoolVar(&o.Mute, "mute", false, "disable engine sound")
	fs.StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")
	fs.BoolVar(&o.Dyno, "dyno", false, "run a headless dyno pull and print the report")
	fs.Float64Var(&o.DynoSeconds, "dyno-seconds", 20, "length of the dyno pull in seconds")
	fs.Float64Var(&o.DynoStep, "dyno-dt", 1.0/DefaultTPS, "dyno time step in seconds")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return o, fmt.Errorf("invalid --log-level: %w", err)
	}
	o.LogLevel = lvl

	if o.Width <= 0 || o.Height <= 0 {
		return o, errors.New("--width and --height must be positive")
	}
	if o.TPS <= 0 {
		return o, errors.New("--tps must be positive")
	}
	if o.Preset < 0 {
		return o, errors.New("--preset must not be negative")
	}
	if o.Dyno && (o.DynoSeconds <= 0 || o.DynoStep <= 0) {
		return o, errors.New("--dyno-seconds and --dyno-dt must be positive")
	}
	return o, nil
}

// TickSeconds is the length of one Update call
func (o Options) TickSeconds() float64 {
	return 1.0 / float64(o.TPS)
}
