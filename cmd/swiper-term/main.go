// Command swiper-term shows a swiper in the terminal.
//
// Drag with the mouse, use Left/Right or h/l to step, Home/End to jump,
// Space to toggle autoplay and q or Escape to quit. Logs go to stderr, so
// redirect it when running with -v.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-theft-auto/swiper"
	"github.com/go-theft-auto/swiper/backend/terminal"
)

func main() {
	configPath := flag.String("config", "", "YAML swiper config")
	count := flag.Int("items", 6, "number of items")
	verbose := flag.Bool("v", false, "debug logging")
	light := flag.Bool("light", false, "light item style")
	flag.Parse()

	swiper.SetVerbose(*verbose)
	if err := run(*configPath, *count, *light); err != nil {
		fmt.Fprintf(os.Stderr, "swiper-term: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, count int, light bool) error {
	cfg := swiper.DefaultConfig()
	cfg.Loop = true
	cfg.ItemWidth = swiper.Percent(70)
	cfg.InactiveScale = 0.8
	cfg.InactiveOpacity = 0.4
	cfg.Autoplay = true
	if configPath != "" {
		loaded, err := swiper.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	items := make([]any, max(count, 0))
	for i := range items {
		items[i] = i
	}

	app, err := terminal.NewApp(items, swiper.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer app.Close()
	if light {
		app.Host().Presenter().SetStyle(swiper.LightStyle())
	}
	return app.Run()
}
