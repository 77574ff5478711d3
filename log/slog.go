package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"
	"sync"
)

const actionKey = "action"

var (
	std   *sLogger
	mutex sync.Mutex
)

func init() {
	std = newLogger(os.Stdout, new(slog.LevelVar))
	std.level.Set(slog.LevelInfo)
}

func newLogger(w io.Writer, lvl *slog.LevelVar) *sLogger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	return &sLogger{
		logger: slog.New(handler),
		level:  lvl,
	}
}

type sLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	// mu guards fields, Inject may run concurrently with logging.
	mu     sync.RWMutex
	fields []any
}

// injected returns the injected fields, clipped so appends never share them.
func (l *sLogger) injected() []any {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clip(l.fields)
}

func (l *sLogger) log(level slog.Level, msgOrFormat string, args []any) {
	if len(args) > 0 {
		msgOrFormat = fmt.Sprintf(msgOrFormat, args...)
	}
	l.logger.Log(context.Background(), level, msgOrFormat, l.injected()...)
}

// Debug logs a message at DebugLevel with the fields accumulated on the logger.
func (l *sLogger) Debug(msgOrFormat string, args ...any) {
	l.log(slog.LevelDebug, msgOrFormat, args)
}

// Info logs a message at InfoLevel.
func (l *sLogger) Info(msgOrFormat string, args ...any) {
	l.log(slog.LevelInfo, msgOrFormat, args)
}

// Warn logs a message at WarnLevel.
func (l *sLogger) Warn(msgOrFormat string, args ...any) {
	l.log(slog.LevelWarn, msgOrFormat, args)
}

// Error logs a message at ErrorLevel.
func (l *sLogger) Error(msgOrFormat string, args ...any) {
	l.log(slog.LevelError, msgOrFormat, args)
}

// Action logger with just an action key.
func (l *sLogger) Action(action string) StdLogger {
	return &sLogger{
		logger: l.logger.With(slog.String(actionKey, action)),
		level:  l.level,
		fields: l.injected(),
	}
}

// With add custom maps for logger
func (l *sLogger) With(m map[string]any) StdLogger {
	return &sLogger{
		logger: l.logger.With(tagsToFields(m)...),
		level:  l.level,
		fields: l.injected(),
	}
}

// Inject appends tags to every later log line of this logger.
func (l *sLogger) Inject(m map[string]any) {
	fields := tagsToFields(m)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields = append(l.fields, fields...)
}

func tagsToFields(m map[string]any) []any {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]any, len(keys))
	for i, key := range keys {
		switch v := m[key].(type) {
		case string:
			fields[i] = slog.String(key, v)
		case int:
			fields[i] = slog.Int(key, v)
		case int32:
			fields[i] = slog.Int(key, int(v))
		case int64:
			fields[i] = slog.Int64(key, v)
		case bool:
			fields[i] = slog.Bool(key, v)
		case float32:
			fields[i] = slog.Float64(key, float64(v))
		case float64:
			fields[i] = slog.Float64(key, v)
		default:
			fields[i] = slog.Any(key, v)
		}
	}
	return fields
}
