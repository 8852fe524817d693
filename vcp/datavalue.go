/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

const (
	tagDVText  = "DVText"
	tagDVInt   = "DVInt"
	tagSPVOne  = "SPVOne"
	tagSPVList = "SPVList"
)

// tagged is the wire form of every sum type: {"tag": ..., "contents": ...}.
type tagged struct {
	Tag      string          `json:"tag"`
	Contents json.RawMessage `json:"contents"`
}

type dataValueKind uint8

const (
	kindInvalid dataValueKind = iota
	kindText
	kindInt
)

// DataValue is an attribute value: either Text or an unsigned Int. The zero
// value is invalid and cannot be marshalled.
type DataValue struct {
	kind dataValueKind
	text string
	num  uint64
}

func Text(s string) DataValue { return DataValue{kind: kindText, text: s} }
func Int(i uint64) DataValue  { return DataValue{kind: kindInt, num: i} }

func (v DataValue) IsText() bool { return v.kind == kindText }
func (v DataValue) IsInt() bool  { return v.kind == kindInt }
func (v DataValue) Valid() bool  { return v.kind != kindInvalid }

func (v DataValue) AsText() (string, bool) { return v.text, v.kind == kindText }
func (v DataValue) AsInt() (uint64, bool)  { return v.num, v.kind == kindInt }

// Plain renders the value the way decrypted plaintext is reported: text as is,
// integers in decimal.
func (v DataValue) Plain() string {
	if v.kind == kindInt {
		return strconv.FormatUint(v.num, 10)
	}
	return v.text
}

func (v DataValue) String() string {
	switch v.kind {
	case kindText:
		return tagDVText + " " + strconv.Quote(v.text)
	case kindInt:
		return tagDVInt + " " + strconv.FormatUint(v.num, 10)
	default:
		return "<invalid>"
	}
}

func (v DataValue) MarshalJSON() ([]byte, error) {
	var (
		tag      string
		contents []byte
		err      error
	)
	switch v.kind {
	case kindText:
		tag = tagDVText
		contents, err = json.Marshal(v.text)
	case kindInt:
		tag = tagDVInt
		contents, err = json.Marshal(v.num)
	default:
		return nil, errors.New("cannot marshal an uninitialized DataValue")
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(tagged{Tag: tag, Contents: contents})
}

func (v *DataValue) UnmarshalJSON(b []byte) error {
	var t tagged
	if err := json.Unmarshal(b, &t); err != nil {
		return errors.Wrap(err, "malformed DataValue")
	}
	switch t.Tag {
	case tagDVText:
		var s string
		if err := json.Unmarshal(t.Contents, &s); err != nil {
			return errors.Wrap(err, "malformed DVText contents")
		}
		*v = Text(s)
	case tagDVInt:
		var n uint64
		if err := json.Unmarshal(t.Contents, &n); err != nil {
			return errors.Wrap(err, "malformed DVInt contents")
		}
		*v = Int(n)
	default:
		return errors.Errorf("unknown DataValue tag '%s'", t.Tag)
	}
	return nil
}

// SharedParamValue is a registry entry: a single value or a list of values.
type SharedParamValue struct {
	list   bool
	values []DataValue
}

// One wraps a single value.
func One(v DataValue) SharedParamValue { return SharedParamValue{values: []DataValue{v}} }

// List wraps a list of values.
func List(vs ...DataValue) SharedParamValue {
	return SharedParamValue{list: true, values: append([]DataValue{}, vs...)}
}

// OpaqueParam publishes opaque material such as keys and accumulators. The
// backend expects it JSON quoted inside a Text value.
func OpaqueParam(s string) SharedParamValue {
	q, _ := json.Marshal(s)
	return One(Text(string(q)))
}

// One returns the wrapped value of a single-valued entry.
func (s SharedParamValue) One() (DataValue, bool) {
	if s.list || len(s.values) != 1 {
		return DataValue{}, false
	}
	return s.values[0], true
}

// List returns the values of a list entry.
func (s SharedParamValue) List() ([]DataValue, bool) {
	if !s.list {
		return nil, false
	}
	return append([]DataValue{}, s.values...), true
}

// Opaque unwraps a value published with OpaqueParam.
func (s SharedParamValue) Opaque() (string, bool) {
	v, ok := s.One()
	if !ok {
		return "", false
	}
	t, ok := v.AsText()
	if !ok {
		return "", false
	}
	var out string
	if err := json.Unmarshal([]byte(t), &out); err != nil {
		return "", false
	}
	return out, true
}

func (s SharedParamValue) Equal(o SharedParamValue) bool {
	if s.list != o.list || len(s.values) != len(o.values) {
		return false
	}
	for i := range s.values {
		if s.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

func (s SharedParamValue) String() string {
	if v, ok := s.One(); ok {
		return tagSPVOne + " (" + v.String() + ")"
	}
	out := tagSPVList + " ["
	for i, v := range s.values {
		if i > 0 {
			out += ", "
		}
		out += v.String()
	}
	return out + "]"
}

func (s SharedParamValue) MarshalJSON() ([]byte, error) {
	var (
		tag      = tagSPVList
		contents []byte
		err      error
	)
	if s.list {
		vs := s.values
		if vs == nil {
			vs = []DataValue{}
		}
		contents, err = json.Marshal(vs)
	} else {
		v, ok := s.One()
		if !ok {
			return nil, errors.New("cannot marshal an uninitialized SharedParamValue")
		}
		tag = tagSPVOne
		contents, err = json.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(tagged{Tag: tag, Contents: contents})
}

func (s *SharedParamValue) UnmarshalJSON(b []byte) error {
	var t tagged
	if err := json.Unmarshal(b, &t); err != nil {
		return errors.Wrap(err, "malformed SharedParamValue")
	}
	switch t.Tag {
	case tagSPVOne:
		var v DataValue
		if err := json.Unmarshal(t.Contents, &v); err != nil {
			return err
		}
		*s = One(v)
	case tagSPVList:
		var vs []DataValue
		if err := json.Unmarshal(t.Contents, &vs); err != nil {
			return err
		}
		*s = List(vs...)
	default:
		return errors.Errorf("unknown SharedParamValue tag '%s'", t.Tag)
	}
	return nil
}
