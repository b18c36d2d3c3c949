package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = time.RFC3339

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, levelErr := zerolog.ParseLevel(level)
	if levelErr != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: consoleTimeFormat,
	}).Level(lvl).With().Timestamp().Logger()

	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", level, lvl)
	}
	return log
}
