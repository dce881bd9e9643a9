// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards everything until Redirect names a
// file, so packages and tests can log freely without printing. Init configures it in
// place so entries derived at package init stay valid.
var Log = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init configures the level and format of Log. level and format come from the run configuration;
// LOG_LEVEL and LOG_FORMAT override them when set.
func Init(level, format string) {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Redirect sends Log to the file at path, appending. An empty path discards
// output; the terminal screen owns both stdout and stderr while a game runs.
// The returned func closes the file.
func Redirect(path string) (func() error, error) {
	if path == "" {
		Log.SetOutput(io.Discard)
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Log.SetOutput(f)
	return f.Close, nil
}

// SetOutput redirects Log, e.g. to a file while the game screen is active.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// For returns an entry tagged with the subsystem name.
func For(component string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{"component": component})
}
