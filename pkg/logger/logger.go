// Package logger holds the process-wide zerolog logger.
//
// Call Init once in main; library code receives the logger explicitly and
// only falls back to Get where threading it through is impractical.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options describes the logger built by New and Init.
type Options struct {
	// Level is one of trace, debug, info, warn (or warning), error.
	// Anything else selects info.
	Level string
	// Pretty switches to zerolog's console writer for local development.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service, when set, is stamped on every entry.
	Service string
}

var (
	mu       sync.Mutex
	instance *zerolog.Logger
)

// New builds a logger from opts without touching the process-wide one.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

// Init installs the process-wide logger and sets zerolog's global level and
// time format to match. Later calls return the logger from the first one.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return *instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(parseLevel(opts.Level))

	log := New(opts)
	instance = &log
	return log
}

// Get returns the logger installed by Init. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		panic("logger: Get() called before Init()")
	}
	return *instance
}

// Reset forgets the installed logger. Tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" || lvl < zerolog.TraceLevel || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
