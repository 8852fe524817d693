/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package flogging_test

import (
	"testing"

	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerLevelsActivateSpec(t *testing.T) {
	tests := []struct {
		spec                 string
		expectedLevels       map[string]zapcore.Level
		expectedDefaultLevel zapcore.Level
	}{
		{
			spec:                 "DEBUG",
			expectedLevels:       map[string]zapcore.Level{},
			expectedDefaultLevel: zapcore.DebugLevel,
		},
		{
			spec: "vcp.backend=debug:warning",
			expectedLevels: map[string]zapcore.Level{
				"vcp.backend":        zapcore.DebugLevel,
				"vcp.backend.client": zapcore.DebugLevel,
				"vcp":                zapcore.WarnLevel,
			},
			expectedDefaultLevel: zapcore.WarnLevel,
		},
		{
			spec: "vcp.signer,vcp.proof=error:info",
			expectedLevels: map[string]zapcore.Level{
				"vcp.signer":   zapcore.ErrorLevel,
				"vcp.proof":    zapcore.ErrorLevel,
				"vcp.verifier": zapcore.InfoLevel,
			},
			expectedDefaultLevel: zapcore.InfoLevel,
		},
		{
			spec: "vcp.=debug:info",
			expectedLevels: map[string]zapcore.Level{
				"vcp":        zapcore.DebugLevel,
				"vcp.signer": zapcore.InfoLevel,
			},
			expectedDefaultLevel: zapcore.InfoLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}

			err := ll.ActivateSpec(tc.spec)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDefaultLevel, ll.DefaultLevel())
			for name, lvl := range tc.expectedLevels {
				assert.Equal(t, lvl, ll.Level(name), name)
			}
		})
	}
}

func TestLoggerLevelsActivateSpecErrors(t *testing.T) {
	tests := []struct {
		spec string
		err  string
	}{
		{spec: "=INFO", err: "invalid logging specification '=INFO': no logger specified in segment '=INFO'"},
		{spec: "vcp=foo", err: "invalid logging specification 'vcp=foo': bad segment 'vcp=foo'"},
		{spec: "bogus", err: "invalid logging specification 'bogus': bad segment 'bogus'"},
		{spec: "a.b=info:a=b=c", err: "invalid logging specification 'a.b=info:a=b=c': bad segment 'a=b=c'"},
		{spec: ".a=info", err: "invalid logging specification '.a=info': bad logger name '.a'"},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			ll := &flogging.LoggerLevels{}
			err := ll.ActivateSpec("fatal:a=warn")
			require.NoError(t, err)

			err = ll.ActivateSpec(tc.spec)
			assert.EqualError(t, err, tc.err)

			assert.Equal(t, zapcore.FatalLevel, ll.DefaultLevel(), "default should not change")
			assert.Equal(t, zapcore.WarnLevel, ll.Level("a.b"), "log levels should not change")
		})
	}
}

func TestSpec(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("vcp.proof=debug:vcp.backend=error:warn"))
	assert.Equal(t, "vcp.backend=error:vcp.proof=debug:warn", ll.Spec())
}

func TestEnabled(t *testing.T) {
	ll := &flogging.LoggerLevels{}
	require.NoError(t, ll.ActivateSpec("vcp.proof=debug:warn"))
	assert.True(t, ll.Enabled(zapcore.DebugLevel))

	require.NoError(t, ll.ActivateSpec("error"))
	assert.False(t, ll.Enabled(zapcore.WarnLevel))
	assert.True(t, ll.Enabled(zapcore.ErrorLevel))
}
