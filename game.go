package main

import (
    "image/color"

    "github.com/hajimehoshi/ebiten/v2"
    "github.com/hajimehoshi/ebiten/v2/ebitenutil"
    "github.com/hajimehoshi/ebiten/v2/inpututil"
    "github.com/hajimehoshi/ebiten/v2/vector"
)

// Logical screen, scaled up by Ebiten
const (
    ScreenWidth  = 320
    ScreenHeight = 240
)

var (
    ColBg    = color.RGBA{0x2b, 0x2b, 0x2b, 0xff} // Dark Grey
    ColCourt = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
)

// Game holds global state
type Game struct {
    Title string
    Tick  int

    // F12 raises a panic so the crash report can be checked by hand
    DebugPanicKey bool
}

func NewGame(title string, debugPanicKey bool) *Game {
    return &Game{
        Title:         title,
        DebugPanicKey: debugPanicKey,
    }
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
    g.Tick++

    if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
        return ebiten.Termination
    }
    if g.DebugPanicKey && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
        panic("debug panic requested with F12")
    }
    return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
    // 1. Clear Screen
    screen.Fill(ColBg)

    // 2. Court: dashed centre line
    for y := float32(0); y < ScreenHeight; y += 16 {
        vector.DrawFilledRect(screen, ScreenWidth/2-1, y, 2, 8, ColCourt, false)
    }

    // 3. Title
    ebitenutil.DebugPrintAt(screen, g.Title, 8, 8)
}

// Layout: Scaling Strategy
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
    // Always render at 320x240, let Ebiten scale it up
    return ScreenWidth, ScreenHeight
}

// guardedGame defers the app's panic guard around every engine callback so a
// panic on the engine's goroutine still goes through the panic handler.
type guardedGame struct {
    game  ebiten.Game
    guard func()
}

func (g *guardedGame) Update() error {
    defer g.guard()
    return g.game.Update()
}

func (g *guardedGame) Draw(screen *ebiten.Image) {
    defer g.guard()
    g.game.Draw(screen)
}

func (g *guardedGame) Layout(outsideWidth, outsideHeight int) (int, int) {
    defer g.guard()
    return g.game.Layout(outsideWidth, outsideHeight)
}
