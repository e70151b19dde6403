/*
Package swiper implements a horizontally scrolling item carousel engine.

# Overview

A Swiper owns a list of source items and a virtual Sequence built from them.
With looping enabled the sequence is padded with clone items on both sides,
so the user can keep scrolling in one direction; once a scroll settles on a
clone the swiper silently jumps back to the matching real item.

The engine never renders and never recognizes gestures. A host reports the
container width and every scroll offset, and the engine answers with:

  - which real item is active (IndexChanging while scrolling, IndexChanged
    once settled)
  - a per-item ItemStyle (scale, opacity, translation, zIndex) interpolated
    from the item's distance to the viewport
  - the pagination dot state
  - scroll requests for snap-back, autoplay and programmatic navigation

Timers are frame driven: call Swiper.Update with the frame delta and nothing
ever runs on another goroutine.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	host := swiper.NewHost(renderer, swiper.Rect{W: 800, H: 400}, items,
	    swiper.WithConfig(cfg),
	    swiper.WithOnIndexChanged(func(real int) { log.Println("now at", real) }),
	)
	defer host.Close()

	// Game loop
	for !window.ShouldClose() {
	    input := pollInput(window)
	    if err := host.Frame(input, deltaTime); err != nil {
	        log.Println(err)
	    }
	    window.SwapBuffers()
	}

Hosts with their own scroll view skip Host and drive a Swiper directly:
implement Surface, forward the scroll view callbacks to the ScrollListener
methods, and read Swiper.Frame when painting.

# Configuration

Config holds every option. DefaultConfig returns the stock values and
LoadConfig reads a YAML file on top of them:

	loop: true
	itemWidth: 80%
	inactiveScale: 0.85
	inactiveOpacity: 0.5
	scaleAlign: middle
	autoplay: true
	autoplayDelay: 1s
	autoplayInterval: 3s

SetConfig applies a new Config at runtime and only recomputes what changed;
the sequence is rebuilt when the item width, loop options or input range
mode change, and the active real item survives the rebuild.

# Platforms

Platform describes the scroll view the swiper talks to. PlatformImmediate
accepts overlapping scroll requests and content offset jumps right away.
PlatformDeferred queues a scroll while one is in flight and waits for the
host to report a content size large enough for the initial offset.

# Keyboard Shortcuts Reference

Host understands the following keys:

	Left Arrow       Scroll one item back
	Right Arrow      Scroll one item forward
	Home             Scroll to the first real item
	End              Scroll to the last real item
	Space            Toggle autoplay

The terminal backend also maps h and l to Left and Right; Escape quits the
demos.

# Persistence

With WithID and WithStateStore the swiper records the last settled item in
the store and starts there next time. GdataStateStore keeps that state on
disk between runs.

# Logging

The package logs through log/slog. Debug messages trace rebuilds, queued
scrolls and snap-backs; enable them with SetVerbose(true).
*/
package swiper
