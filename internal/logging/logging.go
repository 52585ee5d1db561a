package logging

import (
	"io"
	"os"
	"strings"

	"optik-arcade/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var sink io.Writer = os.Stdout

// Init configures the global zerolog logger. When cfg.File is set, log
// output goes to a size-capped file instead of stdout; Writer exposes the
// active sink so the HTTP request logger can share it.
func Init(cfg config.LogConfig) {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level))); err == nil && cfg.Level != "" {
		level = parsed
	}

	sink = os.Stdout
	if cfg.File != "" {
		if w, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB); err == nil {
			sink = w
		}
	}

	output := sink
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: sink}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Writer returns the sink Init selected.
func Writer() io.Writer {
	return sink
}
