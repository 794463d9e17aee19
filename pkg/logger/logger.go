package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper over zerolog used by the background workers.
type Logger struct {
	ZL zerolog.Logger
}

func New() *Logger {
	return &Logger{
		ZL: zerolog.New(os.Stdout).With().Timestamp().Logger(),
	}
}

func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	ctx := l.ZL.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{ZL: ctx.Logger()}
}

func (l *Logger) Info(msg string) {
	l.ZL.Info().Msg(msg)
}

func (l *Logger) Error(err error, msg string) {
	l.ZL.Error().Err(err).Msg(msg)
}
