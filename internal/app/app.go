// Package app is the plugin host the game is assembled in.
package app

import (
	"go.uber.org/zap"

	"pong/internal/logger"
)

// WindowConfig is embedded into the command line arguments with a "window-"
// prefix.
type WindowConfig struct {
	Title      string `help:"Window title" default:"Pong"`
	Width      int    `help:"Window width in pixels when not fullscreen" default:"1280"`
	Height     int    `help:"Window height in pixels when not fullscreen" default:"720"`
	Fullscreen bool   `help:"Run borderless fullscreen on the primary monitor" default:"true"`
	VSync      bool   `help:"Wait for vertical sync" name:"vsync" default:"true"`
	Resizable  bool   `help:"Allow the window to be resized" default:"true"`
}

// Plugin configures an App when it is added.
type Plugin interface {
	Build(a *App)
}

type App struct {
	window  WindowConfig
	log     *zap.Logger
	plugins []Plugin
	guard   func()
}

func New(window WindowConfig) *App {
	return &App{
		window: window,
		log:    logger.Named("app"),
		guard:  func() {},
	}
}

// AddPlugins builds each plugin immediately, in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		a.plugins = append(a.plugins, p)
		p.Build(a)
	}
	return a
}

func (a *App) Plugins() []Plugin {
	return a.plugins
}

func (a *App) Window() WindowConfig {
	return a.window
}

func (a *App) Logger() *zap.Logger {
	return a.log
}

// SetPanicGuard sets the function deferred around every engine callback.
// It must call recover itself, so pass the guard function, not a wrapper.
func (a *App) SetPanicGuard(guard func()) {
	if guard == nil {
		guard = func() {}
	}
	a.guard = guard
}

func (a *App) PanicGuard() func() {
	return a.guard
}
