/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = zapcore.InfoLevel

var loggerNameRegexp = regexp.MustCompile(`^[[:alnum:]_#:-]+(\.[[:alnum:]_#:-]+)*$`)

func isValidLoggerName(name string) bool { return loggerNameRegexp.MatchString(name) }

// NameToLevel converts a level name to a zapcore.Level. Unknown names map to
// the info level.
func NameToLevel(level string) zapcore.Level {
	l, err := nameToLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

func nameToLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "PAYLOAD", "DEBUG":
		return zapcore.DebugLevel, nil
	case "INFO":
		return zapcore.InfoLevel, nil
	case "WARNING", "WARN":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	case "DPANIC":
		return zapcore.DPanicLevel, nil
	case "PANIC":
		return zapcore.PanicLevel, nil
	case "FATAL":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

// IsValidLevel reports whether the name is a known level.
func IsValidLevel(level string) bool {
	_, err := nameToLevel(level)
	return err == nil
}

// LoggerLevels tracks the level of named loggers. A logger without an explicit
// level inherits the level of its closest dotted parent, and finally the
// default level.
type LoggerLevels struct {
	mutex        sync.RWMutex
	levelCache   map[string]zapcore.Level
	specs        map[string]zapcore.Level
	defaultLevel zapcore.Level
	minLevel     zapcore.Level
}

// ActivateSpec applies a spec of the form
//
//	[<logger>[,<logger>...]=]<level>[:[<logger>[,<logger>...]=]<level>...]
//
// A bare level sets the default.
func (l *LoggerLevels) ActivateSpec(spec string) error {
	defaultLevel := zapcore.InfoLevel
	specs := map[string]zapcore.Level{}
	for _, field := range strings.Split(spec, ":") {
		split := strings.Split(field, "=")
		switch len(split) {
		case 1:
			if field != "" && !IsValidLevel(field) {
				return errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
			}
			defaultLevel = NameToLevel(field)

		case 2:
			if split[0] == "" {
				return errors.Errorf("invalid logging specification '%s': no logger specified in segment '%s'", spec, field)
			}
			if field != "" && !IsValidLevel(split[1]) {
				return errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
			}

			level := NameToLevel(split[1])
			for _, logger := range strings.Split(split[0], ",") {
				if !isValidLoggerName(strings.TrimSuffix(logger, ".")) {
					return errors.Errorf("invalid logging specification '%s': bad logger name '%s'", spec, logger)
				}
				specs[logger] = level
			}

		default:
			return errors.Errorf("invalid logging specification '%s': bad segment '%s'", spec, field)
		}
	}

	minLevel := defaultLevel
	for _, lvl := range specs {
		if lvl < minLevel {
			minLevel = lvl
		}
	}

	l.mutex.Lock()
	l.defaultLevel = defaultLevel
	l.specs = specs
	l.minLevel = minLevel
	l.levelCache = map[string]zapcore.Level{}
	l.mutex.Unlock()

	return nil
}

// Level returns the effective level of a logger.
func (l *LoggerLevels) Level(loggerName string) zapcore.Level {
	l.mutex.RLock()
	lvl, ok := l.levelCache[loggerName]
	l.mutex.RUnlock()
	if ok {
		return lvl
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	lvl = l.calculateLevel(loggerName)
	if l.levelCache == nil {
		l.levelCache = map[string]zapcore.Level{}
	}
	l.levelCache[loggerName] = lvl
	return lvl
}

// calculateLevel walks up the dotted name. A trailing dot in a spec entry
// matches only that exact logger.
func (l *LoggerLevels) calculateLevel(loggerName string) zapcore.Level {
	if lvl, ok := l.specs[loggerName+"."]; ok {
		return lvl
	}
	for {
		if lvl, ok := l.specs[loggerName]; ok {
			return lvl
		}
		i := strings.LastIndex(loggerName, ".")
		if i < 0 {
			return l.defaultLevel
		}
		loggerName = loggerName[:i]
	}
}

// Spec renders the active spec.
func (l *LoggerLevels) Spec() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var fields []string
	for k, v := range l.specs {
		fields = append(fields, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(fields)
	fields = append(fields, l.defaultLevel.String())

	return strings.Join(fields, ":")
}

// DefaultLevel returns the level used by loggers without a spec entry.
func (l *LoggerLevels) DefaultLevel() zapcore.Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.defaultLevel
}

// Enabled reports whether any logger is enabled at the level. It is used as a
// fast path before the per logger check.
func (l *LoggerLevels) Enabled(lvl zapcore.Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.minLevel.Enabled(lvl)
}
