package logging

import (
	"context"
)

type logDataKey struct{}

// NewContext returns a context carrying the given LogData.
func NewContext(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when the request did not
// pass through the logging wrapper.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}
