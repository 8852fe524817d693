/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"io"

	"go.uber.org/zap/zapcore"
)

// Global is the logging system used by MustGetLogger.
var Global *Logging

func init() {
	logging, err := New(Config{})
	if err != nil {
		panic(err)
	}
	Global = logging
}

// Init configures the global logging system.
func Init(config Config) {
	err := Global.Apply(config)
	if err != nil {
		panic(err)
	}
}

// Reset restores the global logging system to its defaults.
func Reset() {
	Global.Apply(Config{})
}

// LoggerLevel gets the current logging level for the logger with the
// provided name.
func LoggerLevel(loggerName string) string {
	return Global.Level(loggerName).String()
}

// MustGetLogger creates a logger with the specified name. If an invalid name
// is provided, the operation will panic.
func MustGetLogger(loggerName string) *Logger {
	return Global.Logger(loggerName)
}

// ActivateSpec activates a logging specification for the global logging
// system.
func ActivateSpec(spec string) {
	err := Global.ActivateSpec(spec)
	if err != nil {
		panic(err)
	}
}

// DefaultLevel returns the default log level.
func DefaultLevel() string {
	return Global.DefaultLevel().String()
}

// SetWriter calls SetWriter on the global logging system.
func SetWriter(w io.Writer) io.Writer {
	Global.mutex.Lock()
	old := Global.writer
	Global.mutex.Unlock()
	Global.SetWriter(w)
	return old
}

// IsEnabledFor reports whether the named logger logs at the level.
func IsEnabledFor(loggerName string, level zapcore.Level) bool {
	return Global.Level(loggerName).Enabled(level)
}
