package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// The MCP protocol stream owns stdout, so all logging goes to stderr.
var defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func SetOutput(w io.Writer) {
	defaultLogger = defaultLogger.Output(w)
}

func SetLevel(level zerolog.Level) {
	defaultLogger = defaultLogger.Level(level)
}

func Debug(format string, args ...interface{}) {
	defaultLogger.Debug().Msg(fmt.Sprintf(format, args...))
}

func Info(format string, args ...interface{}) {
	defaultLogger.Info().Msg(fmt.Sprintf(format, args...))
}

func Warn(format string, args ...interface{}) {
	defaultLogger.Warn().Msg(fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	defaultLogger.Error().Msg(fmt.Sprintf(format, args...))
}

func Fatal(format string, args ...interface{}) {
	defaultLogger.Fatal().Msg(fmt.Sprintf(format, args...))
}
