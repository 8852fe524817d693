/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

// AttributeSet is the ordered list of values a credential is issued for,
// together with the claim type of each position.
type AttributeSet struct {
	ClaimTypes []ClaimType
	Values     []DataValue
}

func (a AttributeSet) Len() int { return len(a.Values) }

// Pairs returns the values at the given indices. Indices must be in range.
func (a AttributeSet) Pairs(idxs []CredAttrIndex) []CredAttrIndexAndDataValue {
	out := make([]CredAttrIndexAndDataValue, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, CredAttrIndexAndDataValue{Index: i, Value: a.Values[i]})
	}
	return out
}

// Value returns the value at idx.
func (a AttributeSet) Value(idx CredAttrIndex) (DataValue, bool) {
	if idx >= uint64(len(a.Values)) {
		return DataValue{}, false
	}
	return a.Values[idx], true
}
