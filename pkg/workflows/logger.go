package workflows

import (
	temporallog "go.temporal.io/sdk/log"

	"github.com/baustelle-app/lager/pkg/logger"
)

// Logger adapts logger.Logger to Temporal's log.Logger.
type Logger struct {
	log logger.Logger
}

var (
	_ temporallog.Logger     = (*Logger)(nil)
	_ temporallog.WithLogger = (*Logger)(nil)
)

func NewLogger(log logger.Logger) *Logger {
	return &Logger{log: log.With("component", "temporal")}
}

func (l *Logger) Debug(msg string, keyvals ...any) { l.log.Debug(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...any)  { l.log.Info(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...any)  { l.log.Warn(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...any) { l.log.Error(msg, keyvals...) }

func (l *Logger) With(keyvals ...any) temporallog.Logger {
	return &Logger{log: l.log.With(keyvals...)}
}
