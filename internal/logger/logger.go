/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide leveled logger.
// It can be silenced for library embedding and raised to debug for tracing resolution.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "resolvewith",
		Level:  log.WarnLevel,
	})
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetOutput configures the logger output destination, keeping the level.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level := logger.GetLevel()
	logger = newLogger(w)
	logger.SetLevel(level)
}

// SetVerbose switches debug output on or off.
func SetVerbose(verbose bool) {
	if verbose {
		current().SetLevel(log.DebugLevel)
		return
	}
	current().SetLevel(log.WarnLevel)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Warnf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug logs a debug message. Hidden unless verbose.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}
