package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/swiper"
)

// Game runs a swiper.Host inside the Ebitengine loop.
// It implements ebiten.Game.
type Game struct {
	host     *swiper.Host
	renderer *Renderer
	input    *InputAdapter

	width, height int
	margin        float32
	background    color.Color
	quit          bool
}

// NewGame creates a game showing items on a width×height screen. The swiper
// fills the screen except for margin pixels above and below.
func NewGame(width, height int, margin float32, items []any, opts ...swiper.Option) *Game {
	g := &Game{
		renderer:   NewRenderer(),
		input:      NewInputAdapter(),
		width:      width,
		height:     height,
		margin:     margin,
		background: color.RGBA{R: 30, G: 30, B: 36, A: 255},
	}
	g.renderer.Resize(width, height)
	g.host = swiper.NewHost(g.renderer, g.bounds(), items, opts...)
	return g
}

// Host returns the swiper host.
func (g *Game) Host() *swiper.Host { return g.host }

func (g *Game) bounds() swiper.Rect {
	return swiper.Rect{
		X: 0,
		Y: g.margin,
		W: float32(g.width),
		H: max(float32(g.height)-2*g.margin, 0),
	}
}

// Update advances the swiper one tick.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	in := g.input.Update()
	if in.KeyPressed(swiper.KeyEscape) {
		g.quit = true
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	g.host.Update(in, dt)
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.renderer.SetTarget(screen)
	if err := g.host.Draw(); err != nil {
		swiper.Logger().Error("failed to draw swiper", "error", err)
	}
}

// Layout follows the window size and relayouts the swiper on change.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(outsideWidth, outsideHeight)
		g.host.Resize(g.bounds())
	}
	return g.width, g.height
}

// Close stops the swiper's timers.
func (g *Game) Close() {
	g.host.Close()
}
