package logging

import (
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

var (
	root  atomic.Pointer[zerolog.Logger]
	debug atomic.Bool
)

func init() {
	nop := zerolog.Nop()
	root.Store(&nop)
}

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs go to that file and Bubble Tea logs are enabled too.
func SetupLogging(filename, level string) (cleanup func(), err error) {
	if filename == "" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(io.Discard)
		nop := zerolog.Nop()
		root.Store(&nop)
		debug.Store(false)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// configure stdlib logger
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// configure Bubble Tea logger
	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	Setup(zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}, level)

	// cleanup closes both files
	cleanup = func() {
		tf.Close()
		f.Close()
	}
	return cleanup, nil
}

// Setup points the root logger at w. Headless runs use it with stderr.
func Setup(w io.Writer, level string) {
	lvl := parseLevel(level)
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	root.Store(&l)
	debug.Store(lvl <= zerolog.DebugLevel)
}

// L returns the root logger.
func L() *zerolog.Logger { return root.Load() }

// Named returns a child logger tagged with component.
func Named(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

func IsDebugMode() bool { return debug.Load() }

func Debugf(format string, args ...any) { L().Debug().Msgf(format, args...) }

func Infof(format string, args ...any) { L().Info().Msgf(format, args...) }

func Warnf(format string, args ...any) { L().Warn().Msgf(format, args...) }

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
