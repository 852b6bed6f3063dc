package config

import (
	"flag"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return o
}

func TestDefaults(t *testing.T) {
	o := mustParse(t)
	if o.Width != DefaultWidth || o.Height != DefaultHeight || o.TPS != DefaultTPS {
		t.Errorf("bad window defaults %+v", o)
	}
	if o.LogLevel != logrus.InfoLevel || o.Mute || o.Dyno {
		t.Errorf("bad ambient defaults %+v", o)
	}
	if o.TickSeconds() != 1.0/60 {
		t.Errorf("tick = %v", o.TickSeconds())
	}
}

func TestEngineAndDynoFlags(t *testing.T) {
	o := mustParse(t,
		"--preset", "2",
		"--engine", "v6.json",
		"--save", "workshop.json",
		"--mute",
		"--log-level", "debug",
		"--dyno", "--dyno-seconds", "5", "--dyno-dt", "0.01",
	)
	if o.Preset != 2 || o.EngineFile != "v6.json" || o.SaveFile != "workshop.json" || !o.Mute {
		t.Errorf("bad engine flags %+v", o)
	}
	if o.LogLevel != logrus.DebugLevel {
		t.Errorf("log level = %v", o.LogLevel)
	}
	if !o.Dyno || o.DynoSeconds != 5 || o.DynoStep != 0.01 {
		t.Errorf("bad dyno flags %+v", o)
	}
}

func TestRejects(t *testing.T) {
	cases := [][]string{
		{"--width", "0"},
		{"--tps", "-1"},
		{"--preset", "-3"},
		{"--log-level", "loud"},
		{"--dyno", "--dyno-seconds", "0"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}
