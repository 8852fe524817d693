/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// DecryptKey identifies one decryption: an encrypted attribute of a
// credential, decrypted by one authority.
type DecryptKey struct {
	Credential CredentialLabel
	Index      CredAttrIndex
	Authority  AuthorityLabel
}

func (k DecryptKey) String() string {
	return fmt.Sprintf("%s[%d]@%s", k.Credential, k.Index, k.Authority)
}

// Less orders keys by credential, index and authority.
func (k DecryptKey) Less(o DecryptKey) bool {
	if k.Credential != o.Credential {
		return k.Credential < o.Credential
	}
	if k.Index != o.Index {
		return k.Index < o.Index
	}
	return k.Authority < o.Authority
}

type (
	DecryptRequests  map[DecryptKey]DecryptRequest
	DecryptResponses map[DecryptKey]DecryptResponse
)

// Keys returns the request keys in order.
func (d DecryptRequests) Keys() []DecryptKey {
	keys := make([]DecryptKey, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Keys returns the response keys in order.
func (d DecryptResponses) Keys() []DecryptKey {
	keys := make([]DecryptKey, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys(keys []DecryptKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}

// DecryptionKeys collects the decryption key of every authority named in the
// requests. Two requests naming the same authority with different keys are a
// configuration error.
func (d DecryptRequests) DecryptionKeys() (map[AuthorityLabel]AuthorityDecryptionKey, error) {
	keys := map[AuthorityLabel]AuthorityDecryptionKey{}
	for _, k := range d.Keys() {
		dk := d[k].AuthorityDecryptionKey
		if existing, ok := keys[k.Authority]; ok && existing != dk {
			return nil, ConfigErrorf("conflicting decryption keys for authority '%s'", k.Authority)
		}
		keys[k.Authority] = dk
	}
	return keys, nil
}

// SameKeys checks that responses has exactly the key set of requests.
func SameKeys(requests DecryptRequests, responses DecryptResponses) error {
	var missing, extra []DecryptKey
	for k := range requests {
		if _, ok := responses[k]; !ok {
			missing = append(missing, k)
		}
	}
	for k := range responses {
		if _, ok := requests[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sortKeys(missing)
	sortKeys(extra)
	return errors.Errorf("decrypt responses do not match requests: missing %v, unexpected %v", missing, extra)
}

// Nested is the wire form of decrypt maps: credential -> index -> authority.
type Nested[T any] map[CredentialLabel]map[CredAttrIndex]map[AuthorityLabel]T

// Nest converts the requests to the wire form.
func (d DecryptRequests) Nest() Nested[DecryptRequest] {
	return nest(map[DecryptKey]DecryptRequest(d))
}

// Nest converts the responses to the wire form.
func (d DecryptResponses) Nest() Nested[DecryptResponse] {
	return nest(map[DecryptKey]DecryptResponse(d))
}

func nest[T any](flat map[DecryptKey]T) Nested[T] {
	out := Nested[T]{}
	for k, v := range flat {
		byIndex, ok := out[k.Credential]
		if !ok {
			byIndex = map[CredAttrIndex]map[AuthorityLabel]T{}
			out[k.Credential] = byIndex
		}
		byAuth, ok := byIndex[k.Index]
		if !ok {
			byAuth = map[AuthorityLabel]T{}
			byIndex[k.Index] = byAuth
		}
		byAuth[k.Authority] = v
	}
	return out
}

// Flatten converts the wire form to a flat map.
func (n Nested[T]) Flatten() map[DecryptKey]T {
	out := map[DecryptKey]T{}
	for cred, byIndex := range n {
		for idx, byAuth := range byIndex {
			for auth, v := range byAuth {
				out[DecryptKey{Credential: cred, Index: idx, Authority: auth}] = v
			}
		}
	}
	return out
}
