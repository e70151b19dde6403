// Command gen renders swiper configurations at fixed scroll offsets,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/swiper"
	"github.com/go-theft-auto/swiper/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single swiper screenshot to capture.
type screenshot struct {
	name   string        // filename without extension
	width  int           // viewport width
	height int           // viewport height
	config swiper.Config // swiper options
	items  int           // number of real items
	offset float64       // scroll offset in item widths from the first real item
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("swiper renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800×600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	items := make([]any, s.items)
	for i := range items {
		items[i] = i
	}
	bounds := swiper.Rect{W: float32(s.width), H: float32(s.height)}
	host := swiper.NewHost(renderer, bounds, items, swiper.WithConfig(s.config))
	defer host.Close()

	// Deliver the initial offset, then place the surface mid-scroll.
	host.Update(nil, 0)
	sw := host.Swiper()
	if seq := sw.Sequence(); seq != nil {
		base := seq.Offset(seq.BaseOffset())
		sw.OnScroll(base + s.offset*sw.Width())
	}

	for i := 0; i < 2; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := host.Draw(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	base := swiper.DefaultConfig()

	peek := base
	peek.ItemWidth = swiper.Percent(70)
	peek.InactiveScale = 0.8
	peek.InactiveOpacity = 0.5

	loop := peek
	loop.Loop = true

	offset := peek
	offset.InactiveOffset = 40

	topAligned := peek
	topAligned.ScaleAlign = swiper.AlignTop

	plain := base
	plain.AutoplayDelay = time.Second

	return []screenshot{
		{name: "swiper_plain", width: 480, height: 240, config: plain, items: 3},
		{name: "swiper_peek", width: 480, height: 240, config: peek, items: 5, offset: 1},
		{name: "swiper_peek_scrolling", width: 480, height: 240, config: peek, items: 5, offset: 1.4},
		{name: "swiper_loop_edge", width: 480, height: 240, config: loop, items: 5, offset: 0},
		{name: "swiper_inactive_offset", width: 480, height: 240, config: offset, items: 5, offset: 2},
		{name: "swiper_scale_top", width: 480, height: 240, config: topAligned, items: 4, offset: 1},
	}
}
