/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ConfigurationError marks a request that is inconsistent before it reaches
// the backend: unresolved labels, indices out of range, a bad blinded
// partition, colliding registry entries.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ConfigErrorf creates a ConfigurationError.
func ConfigErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// BackendError reports a failed backend operation. Code is the HTTP status of
// the response, or 0 when no response was received. Reason and Location come
// from the backend error body.
type BackendError struct {
	Op       string
	Code     int
	Reason   string
	Location string
	Err      error
}

func (e *BackendError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "backend operation %s failed", e.Op)
	if e.Code != 0 {
		fmt.Fprintf(&b, " with status %d", e.Code)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, " (at %s)", e.Location)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %s", e.Err)
	}
	return b.String()
}

func (e *BackendError) Unwrap() error { return e.Err }

// ProtocolWarningError is returned when a backend result carries warnings.
// The result it accompanied must not be used.
type ProtocolWarningError struct {
	Op       string
	Warnings []Warning
}

func (e *ProtocolWarningError) Error() string {
	msgs := make([]string, len(e.Warnings))
	for i, w := range e.Warnings {
		msgs[i] = w.String()
	}
	return fmt.Sprintf("%s returned %d warning(s): %s", e.Op, len(e.Warnings), strings.Join(msgs, "; "))
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// AsBackendError returns the BackendError in err's chain, if any.
func AsBackendError(err error) (*BackendError, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func IsBackendError(err error) bool {
	_, ok := AsBackendError(err)
	return ok
}

// AsProtocolWarning returns the ProtocolWarningError in err's chain, if any.
func AsProtocolWarning(err error) (*ProtocolWarningError, bool) {
	var pw *ProtocolWarningError
	if errors.As(err, &pw) {
		return pw, true
	}
	return nil, false
}

func IsProtocolWarning(err error) bool {
	_, ok := AsProtocolWarning(err)
	return ok
}
