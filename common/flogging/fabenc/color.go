/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabenc

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

type Color uint8

const (
	ColorNone Color = iota
	ColorRed  Color = iota + 30
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

func (c Color) Normal() string { return fmt.Sprintf("\x1b[%dm", c) }
func (c Color) Bold() string {
	if c == ColorNone {
		return c.Normal()
	}
	return fmt.Sprintf("\x1b[%d;1m", c)
}

// LevelColor returns the escape sequence used for a level.
func LevelColor(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return ColorCyan.Normal()
	case zapcore.InfoLevel:
		return ColorBlue.Normal()
	case zapcore.WarnLevel:
		return ColorYellow.Normal()
	case zapcore.ErrorLevel:
		return ColorRed.Normal()
	case zapcore.DPanicLevel, zapcore.PanicLevel:
		return ColorMagenta.Bold()
	case zapcore.FatalLevel:
		return ColorRed.Bold()
	default:
		return ColorNone.Normal()
	}
}

func ResetColor() string { return ColorNone.Normal() }
