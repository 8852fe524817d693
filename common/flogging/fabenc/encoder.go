/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fabenc

import (
	"io"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// A FormatEncoder is a zapcore.Encoder that writes the entry through a list of
// formatters and appends the structured fields in console form.
type FormatEncoder struct {
	zapcore.Encoder
	formatters []Formatter
	pool       buffer.Pool
}

// A Formatter writes one piece of a log entry.
type Formatter interface {
	Format(w io.Writer, entry zapcore.Entry, fields []zapcore.Field)
}

func NewFormatEncoder(formatters ...Formatter) *FormatEncoder {
	return &FormatEncoder{
		Encoder:    zapcore.NewConsoleEncoder(fieldsOnlyConfig()),
		formatters: formatters,
		pool:       buffer.NewPool(),
	}
}

// fieldsOnlyConfig disables every entry key so the console encoder only renders
// the context fields.
func fieldsOnlyConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LineEnding:     "\n",
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format(TimeLayout))
		},
	}
}

// Clone creates a new instance of this encoder with the same configuration.
func (f *FormatEncoder) Clone() zapcore.Encoder {
	return &FormatEncoder{
		Encoder:    f.Encoder.Clone(),
		formatters: f.formatters,
		pool:       f.pool,
	}
}

// EncodeEntry formats a zap log record. Entries always end with a newline.
func (f *FormatEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	line := f.pool.Get()
	for _, fm := range f.formatters {
		fm.Format(line, entry, fields)
	}

	encodedFields, err := f.Encoder.EncodeEntry(entry, fields)
	if err != nil {
		line.Free()
		return nil, err
	}
	defer encodedFields.Free()

	// a bare line ending means there were no fields to render
	if line.Len() > 0 && encodedFields.Len() != 1 {
		line.AppendByte(' ')
	}
	line.AppendString(encodedFields.String())
	return line, nil
}
