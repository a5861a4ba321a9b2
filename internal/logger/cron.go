package logger

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger adapts the global zap logger to cron.Logger
type cronLogger struct{}

// CronLogger returns a cron.Logger backed by the global zap logger
func CronLogger() cron.Logger {
	return cronLogger{}
}

// Info logs routine scheduler messages at debug level
func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug(msg, keyvalsToFields(keysAndValues...)...)
}

// Error logs scheduler errors, including recovered job panics
func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := append(keyvalsToFields(keysAndValues...), zap.String("message", msg))
	Error(err, fields...)
}

// keyvalsToFields converts alternating key/value pairs to zap fields.
// A trailing key without a value is dropped.
func keyvalsToFields(keyvals ...interface{}) []zap.Field {
	if len(keyvals)%2 != 0 {
		keyvals = keyvals[:len(keyvals)-1]
	}

	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}
	return fields
}
