package events

import (
	"github.com/ThreeDotsLabs/watermill"

	"github.com/baustelle-app/lager/pkg/logger"
)

// LoggerAdapter bridges logger.Logger to watermill.LoggerAdapter.
type LoggerAdapter struct{ log logger.Logger }

func NewLoggerAdapter(log logger.Logger) *LoggerAdapter {
	return &LoggerAdapter{log: log}
}

func (a *LoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}

func (a *LoggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}

func (a *LoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

// Trace maps to Debug; slog has no trace level.
func (a *LoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}

func (a *LoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &LoggerAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
