/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabenc

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// TimeLayout is the default layout used by the %{time} verb.
const TimeLayout = "2006-01-02T15:04:05.999Z07:00"

// formatRE matches %{verb} and %{verb:arg} directives.
var formatRE = regexp.MustCompile(`%{(color|id|level|message|module|shortfunc|time)(?::(.*?))?}`)

// ParseFormat parses a log format spec into formatters. Supported verbs:
//
//	%{color}      level color escape, %{color:reset} resets it
//	%{id}         per-process sequence number
//	%{level}      level name
//	%{message}    log message
//	%{module}     logger name
//	%{shortfunc}  calling function
//	%{time}       entry time, %{time:<layout>} for a custom layout
//
// Every verb accepts a printf style argument, e.g. %{level:.4s}. Text between
// verbs is written as is.
func ParseFormat(spec string) ([]Formatter, error) {
	var formatters []Formatter
	cursor := 0
	for _, m := range formatRE.FindAllStringSubmatchIndex(spec, -1) {
		start, end := m[0], m[1]
		verb := spec[m[2]:m[3]]
		arg := ""
		if m[4] != -1 {
			arg = spec[m[4]:m[5]]
		}
		if start > cursor {
			formatters = append(formatters, StringFormatter{Value: spec[cursor:start]})
		}
		f, err := NewFormatter(verb, arg)
		if err != nil {
			return nil, err
		}
		formatters = append(formatters, f)
		cursor = end
	}
	if cursor < len(spec) {
		formatters = append(formatters, StringFormatter{Value: spec[cursor:]})
	}
	return formatters, nil
}

// NewFormatter creates the formatter for a single verb.
func NewFormatter(verb, arg string) (Formatter, error) {
	switch verb {
	case "color":
		return newColorFormatter(arg)
	case "id":
		return newSequenceFormatter(arg), nil
	case "level":
		return newLevelFormatter(arg), nil
	case "message":
		return newMessageFormatter(arg), nil
	case "module":
		return newModuleFormatter(arg), nil
	case "shortfunc":
		return newShortFuncFormatter(arg), nil
	case "time":
		return newTimeFormatter(arg), nil
	default:
		return nil, fmt.Errorf("unknown verb: %s", verb)
	}
}

func printfFormat(arg, dflt string) string {
	if arg == "" {
		return dflt
	}
	return "%" + arg
}

// StringFormatter writes a literal.
type StringFormatter struct{ Value string }

func (s StringFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprint(w, s.Value)
}

// ColorFormatter writes the escape sequence for the entry level, or a reset.
type ColorFormatter struct{ Reset bool }

func newColorFormatter(arg string) (ColorFormatter, error) {
	switch arg {
	case "":
		return ColorFormatter{}, nil
	case "reset":
		return ColorFormatter{Reset: true}, nil
	default:
		return ColorFormatter{}, fmt.Errorf("invalid color option: %s", arg)
	}
}

func (c ColorFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	if c.Reset {
		fmt.Fprint(w, ResetColor())
		return
	}
	fmt.Fprint(w, LevelColor(entry.Level))
}

var sequence uint64

// SequenceFormatter writes a process wide, monotonically increasing number.
type SequenceFormatter struct{ format string }

func newSequenceFormatter(arg string) SequenceFormatter {
	return SequenceFormatter{format: printfFormat(arg, "%d")}
}

func (s SequenceFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprintf(w, s.format, atomic.AddUint64(&sequence, 1))
}

// SetSequence resets the sequence counter. Used by tests.
func SetSequence(s uint64) { atomic.StoreUint64(&sequence, s) }

type LevelFormatter struct{ format string }

func newLevelFormatter(arg string) LevelFormatter {
	return LevelFormatter{format: printfFormat(arg, "%s")}
}

func (l LevelFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprintf(w, l.format, entry.Level.CapitalString())
}

type MessageFormatter struct{ format string }

func newMessageFormatter(arg string) MessageFormatter {
	return MessageFormatter{format: printfFormat(arg, "%s")}
}

func (m MessageFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprintf(w, m.format, strings.TrimSuffix(entry.Message, "\n"))
}

type ModuleFormatter struct{ format string }

func newModuleFormatter(arg string) ModuleFormatter {
	return ModuleFormatter{format: printfFormat(arg, "%s")}
}

func (m ModuleFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprintf(w, m.format, entry.LoggerName)
}

type ShortFuncFormatter struct{ format string }

func newShortFuncFormatter(arg string) ShortFuncFormatter {
	return ShortFuncFormatter{format: printfFormat(arg, "%s")}
}

func (s ShortFuncFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fn := "(unknown)"
	if entry.Caller.Defined && entry.Caller.Function != "" {
		fn = entry.Caller.Function
		if i := strings.LastIndex(fn, "."); i >= 0 {
			fn = fn[i+1:]
		}
	}
	fmt.Fprintf(w, s.format, fn)
}

type TimeFormatter struct{ Layout string }

func newTimeFormatter(arg string) TimeFormatter {
	if arg == "" {
		arg = TimeLayout
	}
	return TimeFormatter{Layout: arg}
}

func (t TimeFormatter) Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field) {
	fmt.Fprint(w, entry.Time.Format(t.Layout))
}
