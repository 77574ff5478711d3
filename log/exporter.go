// Package log implements the structured JSON logger used across the module.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// Default returns the process wide logger.
func Default() Logger {
	mutex.Lock()
	defer mutex.Unlock()
	return std
}

// Action set action filed for logger
func Action(action string) StdLogger {
	return Default().Action(action)
}

// With any map data, the value of key must be string, int ... basic value
func With(m map[string]any) StdLogger {
	return Default().With(m)
}

// SetLevel set the log level with: debug, info, warn, error
func SetLevel(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return err
	}
	mutex.Lock()
	defer mutex.Unlock()
	std.level.Set(l)
	return nil
}

// SetOutput redirects the default logger, loggers derived before the call keep
// their old writer.
func SetOutput(w io.Writer) {
	mutex.Lock()
	defer mutex.Unlock()
	std = newLogger(w, std.level)
}
