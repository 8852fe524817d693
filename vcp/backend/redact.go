/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package backend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-vcp/common/flogging"
)

const redacted = "<redacted>"

// secretFields are the body fields that never reach a log.
var secretFields = map[string]bool{
	"signerSecretData":       true,
	"accumulatorSecretData":  true,
	"authoritySecretData":    true,
	"authorityDecryptionKey": true,
	"decryptionKeys":         true,
	"infoForUnblinding":      true,
}

// loggable returns body with every secret field replaced, truncated for
// debug output. Bodies that are not JSON are reduced to their size.
func loggable(body []byte) string {
	d := json.NewDecoder(bytes.NewReader(body))
	d.UseNumber()
	var v interface{}
	if err := d.Decode(&v); err != nil {
		return fmt.Sprintf("(%d bytes)", len(body))
	}
	b, err := json.Marshal(redact(v))
	if err != nil {
		return fmt.Sprintf("(%d bytes)", len(body))
	}
	return flogging.Truncate(string(b), maxLoggedBody)
}

func redact(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, e := range v {
			if secretFields[k] {
				v[k] = redacted
				continue
			}
			v[k] = redact(e)
		}
	case []interface{}:
		for i, e := range v {
			v[i] = redact(e)
		}
	}
	return v
}
