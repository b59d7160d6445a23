// Package config parses the pong command line and optional HCL config file.
package config

import (
	"github.com/alecthomas/kong"
	konghcl "github.com/alecthomas/kong-hcl/v2"
	"github.com/pkg/errors"

	"pong/internal/app"
	"pong/internal/logger"
)

// PanicConfig controls the crash report shown when the game panics.
type PanicConfig struct {
	NoDialog      bool `help:"Only log panics, never show a native error dialog"`
	NoChain       bool `help:"Do not run the previously installed panic report after ours"`
	DebugPanicKey bool `help:"Panic when F12 is pressed, to exercise the crash report"`
}

type Arguments struct {
	Config kong.ConfigFlag  `help:"Path to config file" type:"existingfile"`
	Window app.WindowConfig `help:"Window configuration" embed:"" prefix:"window-"`
	Log    logger.Config    `help:"Configuration for the logger" embed:"" prefix:"log-"`
	Panic  PanicConfig      `help:"Panic handler configuration" embed:"" prefix:"panic-"`
}

// Load parses args and configures the process logger from the result.
func Load(args []string) (*Arguments, error) {
	cfg := &Arguments{}
	parser, err := kong.New(cfg,
		kong.Name("pong"),
		kong.Description("Pong."),
		kong.Configuration(konghcl.Loader),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Log.Configure(); err != nil {
		return nil, errors.WithStack(err)
	}
	return cfg, nil
}

func (a *Arguments) Validate() error {
	if a.Window.Width <= 0 || a.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", a.Window.Width, a.Window.Height)
	}
	return nil
}
