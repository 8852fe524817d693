/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Opaque material handed out by the simulator is a kind prefix followed by
// base64 encoded JSON. Nothing is hidden; the prefix only lets the simulator
// reject material of the wrong kind the way a real backend would fail to
// deserialize it.

const (
	kindSignerSecret   = "ssk"
	kindSignerPublic   = "spk"
	kindBlindInfo      = "bis"
	kindUnblindInfo    = "ifu"
	kindBlindSignature = "bsig"
	kindAccPublic      = "apd"
	kindAccSecret      = "asd"
	kindAccumulator    = "acc"
	kindWitness        = "wit"
	kindUpdateInfo     = "wui"
	kindMembershipKey  = "mpk"
	kindRangeKey       = "rppk"
	kindAuthPublic     = "apub"
	kindAuthSecret     = "asec"
	kindDecryptionKey  = "adk"
	kindProof          = "proof"
	kindDecryptProof   = "dproof"
)

func seal(kind string, v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("cannot seal %s: %s", kind, err))
	}
	return kind + "." + base64.RawURLEncoding.EncodeToString(b)
}

func unseal(kind, s string, v interface{}) error {
	prefix := kind + "."
	if !strings.HasPrefix(s, prefix) {
		return general("expected %s material, got '%s'", kind, abbreviate(s))
	}
	b, err := base64.RawURLEncoding.DecodeString(s[len(prefix):])
	if err != nil {
		return general("malformed %s material: %s", kind, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return general("malformed %s material: %s", kind, err)
	}
	return nil
}

// digest hashes its parts with length prefixes so that part boundaries are
// unambiguous.
func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(strconv.Itoa(len(p))))
		h.Write([]byte{':'})
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func digestJSON(tag string, v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("cannot digest %s: %s", tag, err))
	}
	return digest(tag, string(b))
}

// general formats a failure the way the backend reports its errors.
func general(format string, args ...interface{}) error {
	return errors.Errorf("General(%q)", fmt.Sprintf(format, args...))
}

func abbreviate(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "..."
}
