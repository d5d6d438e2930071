package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger tagged with the service name. Output is plain
// JSON unless pretty is set, which switches to the human-readable console writer.
func New(service string, pretty bool) zerolog.Logger {
	var logger zerolog.Logger
	if pretty {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.With().
		Timestamp().
		Str("service", service).
		Logger()
}
