/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"encoding/json"
)

// InAccumInfo requires the attribute at Index to be a member of the
// accumulator named by AccumulatorLabel at the sequence number named by
// AccumulatorSeqNumLabel.
type InAccumInfo struct {
	Index                      CredAttrIndex  `json:"index"`
	AccumulatorPublicDataLabel SharedParamKey `json:"accumulatorPublicDataLabel"`
	MembershipProvingKeyLabel  SharedParamKey `json:"membershipProvingKeyLabel"`
	AccumulatorLabel           SharedParamKey `json:"accumulatorLabel"`
	AccumulatorSeqNumLabel     SharedParamKey `json:"accumulatorSeqNumLabel"`
}

// IndexAndLabel ties an attribute to one registry entry. It is used for
// non-membership (accumulator) and verifiable encryption (authority)
// constraints.
type IndexAndLabel struct {
	Index CredAttrIndex  `json:"index"`
	Label SharedParamKey `json:"label"`
}

// InRangeInfo requires min <= value <= max for an integer attribute.
type InRangeInfo struct {
	Index                CredAttrIndex  `json:"index"`
	MinLabel             SharedParamKey `json:"minLabel"`
	MaxLabel             SharedParamKey `json:"maxLabel"`
	RangeProvingKeyLabel SharedParamKey `json:"rangeProvingKeyLabel"`
}

// EqInfo requires this credential's FromIndex attribute to equal the ToIndex
// attribute of the credential labelled ToLabel.
type EqInfo struct {
	FromIndex CredAttrIndex   `json:"fromIndex"`
	ToLabel   CredentialLabel `json:"toLabel"`
	ToIndex   CredAttrIndex   `json:"toIndex"`
}

// CredentialReqs is the verifier's constraint set for one credential.
type CredentialReqs struct {
	SignerLabel  SharedParamKey  `json:"signerLabel"`
	Disclosed    []CredAttrIndex `json:"disclosed"`
	InAccum      []InAccumInfo   `json:"inAccum"`
	NotInAccum   []IndexAndLabel `json:"notInAccum"`
	InRange      []InRangeInfo   `json:"inRange"`
	EncryptedFor []IndexAndLabel `json:"encryptedFor"`
	EqualTo      []EqInfo        `json:"equalTo"`
}

// MarshalJSON always emits every list, empty rather than null.
func (c CredentialReqs) MarshalJSON() ([]byte, error) {
	type plain CredentialReqs
	p := plain(c)
	if p.Disclosed == nil {
		p.Disclosed = []CredAttrIndex{}
	}
	if p.InAccum == nil {
		p.InAccum = []InAccumInfo{}
	}
	if p.NotInAccum == nil {
		p.NotInAccum = []IndexAndLabel{}
	}
	if p.InRange == nil {
		p.InRange = []InRangeInfo{}
	}
	if p.EncryptedFor == nil {
		p.EncryptedFor = []IndexAndLabel{}
	}
	if p.EqualTo == nil {
		p.EqualTo = []EqInfo{}
	}
	return json.Marshal(p)
}

// SignatureAndRelatedData is a holder's credential: the signature, the signed
// values and the accumulator witnesses attached at the index they prove
// membership for.
type SignatureAndRelatedData struct {
	Signature            Signature                                      `json:"signature"`
	Values               []DataValue                                    `json:"values"`
	AccumulatorWitnesses map[CredAttrIndex]AccumulatorMembershipWitness `json:"accumulatorWitnesses"`
}

func NewSignatureAndRelatedData(sig Signature, values []DataValue) *SignatureAndRelatedData {
	return &SignatureAndRelatedData{
		Signature:            sig,
		Values:               append([]DataValue{}, values...),
		AccumulatorWitnesses: map[CredAttrIndex]AccumulatorMembershipWitness{},
	}
}

// AttachWitness stores the witness for the attribute at idx. A slot holds at
// most one witness; use RefreshWitness to replace it.
func (s *SignatureAndRelatedData) AttachWitness(idx CredAttrIndex, w AccumulatorMembershipWitness) error {
	if idx >= uint64(len(s.Values)) {
		return ConfigErrorf("witness index %d out of range for a credential with %d attributes", idx, len(s.Values))
	}
	if _, ok := s.AccumulatorWitnesses[idx]; ok {
		return ConfigErrorf("a witness is already attached at index %d", idx)
	}
	if s.AccumulatorWitnesses == nil {
		s.AccumulatorWitnesses = map[CredAttrIndex]AccumulatorMembershipWitness{}
	}
	s.AccumulatorWitnesses[idx] = w
	return nil
}

// RefreshWitness replaces the witness attached at idx, typically after the
// accumulator advanced.
func (s *SignatureAndRelatedData) RefreshWitness(idx CredAttrIndex, w AccumulatorMembershipWitness) error {
	if _, ok := s.AccumulatorWitnesses[idx]; !ok {
		return ConfigErrorf("no witness attached at index %d", idx)
	}
	s.AccumulatorWitnesses[idx] = w
	return nil
}

func (s *SignatureAndRelatedData) Witness(idx CredAttrIndex) (AccumulatorMembershipWitness, bool) {
	w, ok := s.AccumulatorWitnesses[idx]
	return w, ok
}

func (s SignatureAndRelatedData) MarshalJSON() ([]byte, error) {
	type plain SignatureAndRelatedData
	p := plain(s)
	if p.AccumulatorWitnesses == nil {
		p.AccumulatorWitnesses = map[CredAttrIndex]AccumulatorMembershipWitness{}
	}
	if p.Values == nil {
		p.Values = []DataValue{}
	}
	return json.Marshal(p)
}
