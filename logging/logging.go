// Package logging holds the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// Init sets the level to debug when debug is true and switches to a
// human-readable console writer when human is true. Both write to stderr.
func Init(debug bool, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var output zerolog.LevelWriter
	if human {
		output = zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}}
	} else {
		output = zerolog.LevelWriterAdapter{Writer: os.Stderr}
	}

	logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func L() *zerolog.Logger {
	return &logger
}

// SetLogger replaces the logger, mostly so tests can capture output.
func SetLogger(l zerolog.Logger) {
	logger = l
}
