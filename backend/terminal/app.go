package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/swiper"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// App runs a swiper.Host on a tcell screen.
type App struct {
	screen tcell.Screen
	canvas *Canvas
	host   *swiper.Host
	input  *swiper.InputState

	cols, rows int
}

// NewApp initializes the terminal and lays out a swiper over the whole
// screen.
func NewApp(items []any, opts ...swiper.Option) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return NewAppWithScreen(screen, items, opts...), nil
}

// NewAppWithScreen uses an initialized screen, such as a
// tcell.SimulationScreen.
func NewAppWithScreen(screen tcell.Screen, items []any, opts ...swiper.Option) *App {
	screen.EnableMouse()
	screen.HideCursor()

	a := &App{
		screen: screen,
		canvas: NewCanvas(0, 0, swiper.RGBA(20, 20, 20, 255)),
		input:  swiper.NewInputState(),
	}
	a.cols, a.rows = screen.Size()
	a.canvas.Resize(a.cols, a.rows*2)
	a.host = swiper.NewHost(a.canvas, a.bounds(), items, opts...)
	return a
}

// Host returns the swiper host.
func (a *App) Host() *swiper.Host { return a.host }

// Canvas returns the pixel canvas.
func (a *App) Canvas() *Canvas { return a.canvas }

func (a *App) bounds() swiper.Rect {
	return swiper.Rect{W: float32(a.cols), H: float32(a.rows * 2)}
}

// resize follows the terminal size.
func (a *App) resize() {
	a.cols, a.rows = a.screen.Size()
	a.canvas.Resize(a.cols, a.rows*2)
	a.host.Resize(a.bounds())
}

// HandleEvent feeds one tcell event into the input state. It returns false
// when the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.input.PressKey(swiper.KeyLeft)
		case tcell.KeyRight:
			a.input.PressKey(swiper.KeyRight)
		case tcell.KeyHome:
			a.input.PressKey(swiper.KeyHome)
		case tcell.KeyEnd:
			a.input.PressKey(swiper.KeyEnd)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.input.PressKey(swiper.KeyLeft)
			case 'l':
				a.input.PressKey(swiper.KeyRight)
			case ' ':
				a.input.PressKey(swiper.KeySpace)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.SetPointerPos(float32(x), float32(y*2))
		a.input.SetPointerDown(ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()
	}
	return true
}

// Step advances the host by dt, paints the canvas and shows it.
func (a *App) Step(dt time.Duration) error {
	a.host.Update(a.input, dt)
	a.input.Reset()
	if err := a.host.Draw(); err != nil {
		return err
	}
	a.flush()
	return nil
}

// flush copies canvas pixel pairs into cells.
func (a *App) flush() {
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			top := a.canvas.At(col, row*2)
			bottom := a.canvas.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			a.screen.SetContent(col, row, '▀', nil, style)
		}
	}
	a.screen.Show()
}

func tcellColor(c uint32) tcell.Color {
	r, g, b, _ := swiper.UnpackRGBA(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Run polls events and renders frames until the user quits.
func (a *App) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := a.Step(dt); err != nil {
				return err
			}
		}
	}
}

// Close stops the swiper and restores the terminal.
func (a *App) Close() {
	a.host.Close()
	a.screen.Fini()
}
