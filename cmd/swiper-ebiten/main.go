// Command swiper-ebiten shows a swiper in an Ebitengine window.
//
// Drag with the mouse or a finger, use the arrow keys to step, Space to
// toggle autoplay and Escape to quit.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/swiper"
	swiperebiten "github.com/go-theft-auto/swiper/backend/ebiten"
)

const (
	screenWidth  = 800
	screenHeight = 480
)

func main() {
	configPath := flag.String("config", "", "YAML swiper config")
	count := flag.Int("items", 5, "number of items")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	swiper.SetVerbose(*verbose)

	cfg := swiper.DefaultConfig()
	cfg.Loop = true
	cfg.ItemWidth = swiper.Percent(80)
	cfg.InactiveScale = 0.85
	cfg.InactiveOpacity = 0.5
	if *configPath != "" {
		loaded, err := swiper.LoadConfig(*configPath)
		if err != nil {
			swiper.Logger().Warn("using default config", "error", err)
		}
		cfg = loaded
	}

	items := make([]any, max(*count, 0))
	for i := range items {
		items[i] = i
	}

	store, err := swiper.OpenGdataStateStore("swiper_ebiten")
	if err != nil {
		swiper.Logger().Warn("state will not persist", "error", err)
	}

	game := swiperebiten.NewGame(screenWidth, screenHeight, 40, items,
		swiper.WithConfig(cfg),
		swiper.WithID("ebiten"),
		swiper.WithStateStore(store),
		swiper.WithOnIndexChanged(func(real int) {
			swiper.Logger().Info("index changed", "index", real)
		}),
	)
	defer game.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("swiper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
