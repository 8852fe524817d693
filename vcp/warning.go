/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"encoding/json"
	"fmt"
)

const (
	WarningUnsupportedFeature = "UnsupportedFeature"
	WarningRevealPrivacy      = "RevealPrivacyWarning"
)

// Warning is a non-fatal diagnostic from proof creation or verification. Any
// warning makes the surrounding result untrustworthy.
type Warning struct {
	Tag      string          `json:"tag"`
	Contents json.RawMessage `json:"contents"`
}

func UnsupportedFeature(msg string) Warning {
	c, _ := json.Marshal(msg)
	return Warning{Tag: WarningUnsupportedFeature, Contents: c}
}

func RevealPrivacyWarning(cred CredentialLabel, idx CredAttrIndex, msg string) Warning {
	c, _ := json.Marshal([]interface{}{cred, idx, msg})
	return Warning{Tag: WarningRevealPrivacy, Contents: c}
}

func (w Warning) String() string {
	switch w.Tag {
	case WarningUnsupportedFeature:
		var msg string
		if json.Unmarshal(w.Contents, &msg) == nil {
			return fmt.Sprintf("%s: %s", w.Tag, msg)
		}
	case WarningRevealPrivacy:
		var parts []json.RawMessage
		if json.Unmarshal(w.Contents, &parts) == nil && len(parts) == 3 {
			var (
				cred string
				idx  uint64
				msg  string
			)
			json.Unmarshal(parts[0], &cred)
			json.Unmarshal(parts[1], &idx)
			json.Unmarshal(parts[2], &msg)
			return fmt.Sprintf("%s: %s[%d]: %s", w.Tag, cred, idx, msg)
		}
	}
	return fmt.Sprintf("%s: %s", w.Tag, string(w.Contents))
}
