/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package sharedparams holds the labelled public parameters that the holder
// and the verifier must agree on: signer public data, proving keys,
// accumulators, range bounds and authority public data.
package sharedparams

import (
	"encoding/json"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("vcp.sharedparams")

// Registry is safe for concurrent use. Every label is written once: writing
// the same value again is a no-op and writing a different value is a
// configuration error.
type Registry struct {
	mutex   sync.RWMutex
	entries *orderedmap.OrderedMap[vcp.SharedParamKey, vcp.SharedParamValue]
}

func New() *Registry {
	return &Registry{
		entries: orderedmap.NewOrderedMap[vcp.SharedParamKey, vcp.SharedParamValue](),
	}
}

// Put publishes v under label.
func (r *Registry) Put(label vcp.SharedParamKey, v vcp.SharedParamValue) error {
	if label == "" {
		return vcp.ConfigErrorf("shared parameter label must not be empty")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, ok := r.entries.Get(label); ok {
		if existing.Equal(v) {
			return nil
		}
		return vcp.ConfigErrorf("shared parameter '%s' is already set to a different value", label)
	}
	r.entries.Set(label, v)
	logger.Debugf("published shared parameter %s", label)
	return nil
}

func (r *Registry) PutInt(label vcp.SharedParamKey, i uint64) error {
	return r.Put(label, vcp.One(vcp.Int(i)))
}

// PutOpaque publishes opaque backend material, quoted the way the backend
// expects it.
func (r *Registry) PutOpaque(label vcp.SharedParamKey, s string) error {
	if s == "" {
		return vcp.ConfigErrorf("opaque shared parameter '%s' must not be empty", label)
	}
	return r.Put(label, vcp.OpaqueParam(s))
}

// PutSignerPublicData publishes spd as JSON text.
func (r *Registry) PutSignerPublicData(label vcp.SharedParamKey, spd *vcp.SignerPublicData) error {
	b, err := json.Marshal(spd)
	if err != nil {
		return errors.Wrapf(err, "failed to encode signer public data for '%s'", label)
	}
	return r.Put(label, vcp.One(vcp.Text(string(b))))
}

func (r *Registry) PutAccumulator(label vcp.SharedParamKey, acc vcp.Accumulator) error {
	return r.PutOpaque(label, string(acc))
}

func (r *Registry) PutAccumulatorPublicData(label vcp.SharedParamKey, apd vcp.AccumulatorPublicData) error {
	return r.PutOpaque(label, string(apd))
}

func (r *Registry) PutMembershipProvingKey(label vcp.SharedParamKey, k vcp.MembershipProvingKey) error {
	return r.PutOpaque(label, string(k))
}

func (r *Registry) PutRangeProofProvingKey(label vcp.SharedParamKey, k vcp.RangeProofProvingKey) error {
	return r.PutOpaque(label, string(k))
}

func (r *Registry) PutAuthorityPublicData(label vcp.SharedParamKey, apd vcp.AuthorityPublicData) error {
	return r.PutOpaque(label, string(apd))
}

func (r *Registry) Lookup(label vcp.SharedParamKey) (vcp.SharedParamValue, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.entries.Get(label)
}

func (r *Registry) lookup(label vcp.SharedParamKey) (vcp.SharedParamValue, error) {
	v, ok := r.Lookup(label)
	if !ok {
		return vcp.SharedParamValue{}, vcp.ConfigErrorf("shared parameter '%s' is not set", label)
	}
	return v, nil
}

// Int resolves a single integer entry.
func (r *Registry) Int(label vcp.SharedParamKey) (uint64, error) {
	v, err := r.lookup(label)
	if err != nil {
		return 0, err
	}
	one, ok := v.One()
	if !ok {
		return 0, vcp.ConfigErrorf("shared parameter '%s' is a list, expected an integer", label)
	}
	i, ok := one.AsInt()
	if !ok {
		return 0, vcp.ConfigErrorf("shared parameter '%s' is text, expected an integer", label)
	}
	return i, nil
}

// Opaque resolves an entry published with PutOpaque.
func (r *Registry) Opaque(label vcp.SharedParamKey) (string, error) {
	v, err := r.lookup(label)
	if err != nil {
		return "", err
	}
	s, ok := v.Opaque()
	if !ok {
		return "", vcp.ConfigErrorf("shared parameter '%s' is not opaque material", label)
	}
	return s, nil
}

// SignerPublicData resolves an entry published with PutSignerPublicData.
func (r *Registry) SignerPublicData(label vcp.SharedParamKey) (*vcp.SignerPublicData, error) {
	v, err := r.lookup(label)
	if err != nil {
		return nil, err
	}
	one, ok := v.One()
	if !ok {
		return nil, vcp.ConfigErrorf("shared parameter '%s' is a list, expected signer public data", label)
	}
	text, ok := one.AsText()
	if !ok {
		return nil, vcp.ConfigErrorf("shared parameter '%s' is an integer, expected signer public data", label)
	}
	spd := &vcp.SignerPublicData{}
	if err := json.Unmarshal([]byte(text), spd); err != nil || len(spd.SignerPublicSchema) == 0 {
		return nil, vcp.ConfigErrorf("shared parameter '%s' is not signer public data", label)
	}
	return spd, nil
}

// Labels returns the labels in publication order.
func (r *Registry) Labels() []vcp.SharedParamKey {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	labels := make([]vcp.SharedParamKey, 0, r.entries.Len())
	for el := r.entries.Front(); el != nil; el = el.Next() {
		labels = append(labels, el.Key)
	}
	return labels
}

func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.entries.Len()
}

// Map returns a copy of the entries in the form sent to the backend.
func (r *Registry) Map() map[vcp.SharedParamKey]vcp.SharedParamValue {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	out := make(map[vcp.SharedParamKey]vcp.SharedParamValue, r.entries.Len())
	for el := r.entries.Front(); el != nil; el = el.Next() {
		out[el.Key] = el.Value
	}
	return out
}
