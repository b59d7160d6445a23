package main

import (
    "fmt"
    "os"

    "github.com/hajimehoshi/ebiten/v2"

    "pong/internal/app"
    "pong/internal/assets"
    "pong/internal/config"
    log "pong/internal/logger"
    "pong/internal/panichandler"
)

func main() {
    defer panichandler.Guard()

    // 1. Config + Logger
    cfg, err := config.Load(os.Args[1:])
    if err != nil {
        fmt.Fprintf(os.Stderr, "error: %v\n", err)
        os.Exit(1)
    }
    defer log.Sync()

    // 2. Plugins
    a := app.New(cfg.Window).AddPlugins(panicHandler(cfg.Panic))

    // 3. Window Setup
    setupWindow(a.Window())

    // 4. Run Loop
    game := &guardedGame{
        game:  NewGame(a.Window().Title, cfg.Panic.DebugPanicKey),
        guard: a.PanicGuard(),
    }
    if err := ebiten.RunGame(game); err != nil {
        log.Errorf("game stopped: %v", err)
        log.Sync()
        os.Exit(1)
    }
}

func panicHandler(cfg config.PanicConfig) *panichandler.Handler {
    b := panichandler.New()
    if !cfg.NoChain {
        b.TakeExistingHook()
    }
    if cfg.NoDialog {
        b.DisableDialog()
    }
    return b.Build()
}

func setupWindow(w app.WindowConfig) {
    ebiten.SetWindowTitle(w.Title)
    ebiten.SetWindowSize(w.Width, w.Height)
    ebiten.SetVsyncEnabled(w.VSync)
    if w.Resizable {
        ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
    }
    // Borderless fullscreen on the primary monitor
    ebiten.SetFullscreen(w.Fullscreen)

    icons, err := assets.WindowIcons()
    if err != nil {
        log.Warnf("no window icon: %v", err)
        return
    }
    ebiten.SetWindowIcon(icons)
}
