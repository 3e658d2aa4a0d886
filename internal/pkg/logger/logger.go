// Package logger holds the process-wide zerolog logger. Components that are built in bootstrap
// receive the configured zerolog.Logger directly; package-level helpers serve the rest.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var global zerolog.Logger

// LogLevel is a configured verbosity
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

var zerologLevels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// Config represents logger configuration
type Config struct {
	Level   LogLevel
	Pretty  bool      // console output instead of JSON lines
	Output  io.Writer // defaults to os.Stdout
	Service string    // attached to every entry when set
}

// ParseLevel maps a configuration string onto a LogLevel. Unknown values mean info.
func ParseLevel(level string) LogLevel {
	l := LogLevel(strings.ToLower(strings.TrimSpace(level)))
	if _, ok := zerologLevels[l]; ok {
		return l
	}
	return InfoLevel
}

// Configure replaces the global logger and returns it for injection
func Configure(config Config) zerolog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	if config.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, ok := zerologLevels[config.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	ctx := zerolog.New(out).With().Timestamp()
	if config.Service != "" {
		ctx = ctx.Str("service", config.Service)
	}
	global = ctx.Logger()
	log.Logger = global
	return global
}

func Debug() *zerolog.Event { return global.Debug() }

func Info() *zerolog.Event { return global.Info() }

func Warn() *zerolog.Event { return global.Warn() }

func Error() *zerolog.Event { return global.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
