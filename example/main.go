// Example demonstrates a looping swiper in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag the items with the mouse, use Left/Right/Home/End to move, Space to
// toggle autoplay and Escape to quit. Pass -config to load a YAML config.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/swiper"
	"github.com/go-theft-auto/swiper/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "swiper example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML swiper config")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	swiper.SetVerbose(*verbose)
	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) swiper.Config {
	if path == "" {
		cfg := swiper.DefaultConfig()
		cfg.Loop = true
		cfg.ItemWidth = swiper.Percent(70)
		cfg.InactiveScale = 0.8
		cfg.InactiveOpacity = 0.6
		cfg.Autoplay = true
		return cfg
	}
	cfg, err := swiper.LoadConfig(path)
	if err != nil {
		slog.Warn("using default config", "error", err)
	}
	return cfg
}

func run(configPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("swiper renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	store, err := swiper.OpenGdataStateStore("swiper_example")
	if err != nil {
		slog.Warn("state will not persist", "error", err)
	}

	items := []any{"one", "two", "three", "four", "five"}
	bounds := swiper.Rect{X: 0, Y: 100, W: windowWidth, H: 400}
	host := swiper.NewHost(renderer, bounds, items,
		swiper.WithConfig(loadConfig(configPath)),
		swiper.WithID("example"),
		swiper.WithStateStore(store),
		swiper.WithOnIndexChanged(func(real int) {
			slog.Info("index changed", "index", real, "item", items[real])
		}),
	)
	defer host.Close()

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()
		in := inputAdapter.Update()
		if in.KeyPressed(swiper.KeyEscape) {
			window.SetShouldClose(true)
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := host.Frame(in, dt); err != nil {
			return fmt.Errorf("swiper render: %w", err)
		}
		inputAdapter.EndFrame()

		window.SwapBuffers()
	}

	return nil
}
