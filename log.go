package swiper

import (
	"log/slog"
	"os"
)

// swiperLogLevel controls the log level for swiper debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var swiperLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the swiper engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		swiperLogLevel.Set(slog.LevelDebug)
	} else {
		swiperLogLevel.Set(slog.LevelInfo)
	}
}

// swiperLogger is the logger for controller, sequence and scheduler debugging.
var swiperLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: swiperLogLevel}))

// Logger returns the swiper logger for backends and commands.
func Logger() *slog.Logger { return swiperLogger }
