package main

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// Global logger for diagnostics; reports go to stdout.
var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogger replaces the diagnostics logger.
func SetLogger(l *slog.Logger) {
	log = l
}

func setVerbose(verbose bool) {
	if verbose {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}
