/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"github.com/hyperledger/fabric-vcp/vcp"
)

const (
	// AuthorityLabel is the registry label of the decryption authority.
	AuthorityLabel = "authorityPublic"
	// Nonce is the verifier nonce used by every scenario.
	Nonce = "nonce-from-typescript"
)

// Fixture describes one test credential and the registry labels of the
// parameters its constraints refer to.
type Fixture struct {
	Label       vcp.CredentialLabel
	SignerLabel vcp.SharedParamKey
	SignerSeed  uint64
	Attributes  vcp.AttributeSet
	Blinded     []vcp.CredAttrIndex
	Revealed    []vcp.CredAttrIndex

	AccumulatorSeed        uint64
	AccumulatorIndex       vcp.CredAttrIndex
	AccumulatorLabel       vcp.SharedParamKey
	AccumulatorPublicLabel vcp.SharedParamKey
	MembershipKeyLabel     vcp.SharedParamKey
	SeqNumLabel            vcp.SharedParamKey
	HolderID               vcp.HolderID

	RangeIndex    vcp.CredAttrIndex
	RangeKeyLabel vcp.SharedParamKey
	MinLabel      vcp.SharedParamKey
	Min           uint64
	MaxLabel      vcp.SharedParamKey
	Max           uint64

	EncryptIndex vcp.CredAttrIndex
}

// Plaintext returns the issued value at idx in the form a decryption
// recovers it.
func (f *Fixture) Plaintext(idx vcp.CredAttrIndex) (string, bool) {
	v, ok := f.Attributes.Value(idx)
	if !ok {
		return "", false
	}
	return v.Plain(), true
}

func (f *Fixture) inAccum() vcp.InAccumInfo {
	return vcp.InAccumInfo{
		Index:                      f.AccumulatorIndex,
		AccumulatorPublicDataLabel: f.AccumulatorPublicLabel,
		MembershipProvingKeyLabel:  f.MembershipKeyLabel,
		AccumulatorLabel:           f.AccumulatorLabel,
		AccumulatorSeqNumLabel:     f.SeqNumLabel,
	}
}

func (f *Fixture) inRange() vcp.InRangeInfo {
	return vcp.InRangeInfo{
		Index:                f.RangeIndex,
		MinLabel:             f.MinLabel,
		MaxLabel:             f.MaxLabel,
		RangeProvingKeyLabel: f.RangeKeyLabel,
	}
}

// DriverLicense returns the driver licence credential.
func DriverLicense() *Fixture {
	return &Fixture{
		Label:       "DL",
		SignerLabel: "dlSignerPublic",
		SignerSeed:  0,
		Attributes: vcp.AttributeSet{
			ClaimTypes: []vcp.ClaimType{vcp.CTText, vcp.CTInt, vcp.CTEncryptableText, vcp.CTInt, vcp.CTAccumulatorMember},
			Values: []vcp.DataValue{
				vcp.Text(`CredentialMetadata (fromList [("purpose",DVText "DriverLicense"),("version",DVText "1.0")])`),
				vcp.Int(37852),
				vcp.Text("123-45-6789"),
				vcp.Int(180),
				vcp.Text("abcdef0123456789abcdef0123456789"),
			},
		},
		Blinded:  []vcp.CredAttrIndex{1, 2, 3, 4},
		Revealed: []vcp.CredAttrIndex{0},

		AccumulatorSeed:        0,
		AccumulatorIndex:       4,
		AccumulatorLabel:       "dlAcc",
		AccumulatorPublicLabel: "dlAccPublicData",
		MembershipKeyLabel:     "dlMpk",
		SeqNumLabel:            "DL_ACC_SEQ_NUM_LABEL",
		HolderID:               "dlHolderID",

		RangeIndex:    1,
		RangeKeyLabel: "dlRppk",
		MinLabel:      "dlMinBDdays",
		Min:           37696,
		MaxLabel:      "dlMaxBDdays",
		Max:           999999999,

		EncryptIndex: 2,
	}
}

// Subscription returns the monthly subscription credential.
func Subscription() *Fixture {
	return &Fixture{
		Label:       "sub",
		SignerLabel: "subSignerPublic",
		SignerSeed:  1,
		Attributes: vcp.AttributeSet{
			ClaimTypes: []vcp.ClaimType{vcp.CTText, vcp.CTAccumulatorMember, vcp.CTInt, vcp.CTEncryptableText},
			Values: []vcp.DataValue{
				vcp.Text(`CredentialMetadata (fromList [("purpose",DVText "MonthlySubscription"),("version",DVText "1.0")])`),
				vcp.Text("aaaabcdef0123456789abcdef0123456"),
				vcp.Int(49997),
				vcp.Text("123-45-6789"),
			},
		},
		Blinded:  []vcp.CredAttrIndex{1, 2, 3},
		Revealed: []vcp.CredAttrIndex{0},

		AccumulatorSeed:        1,
		AccumulatorIndex:       1,
		AccumulatorLabel:       "subAcc",
		AccumulatorPublicLabel: "subAccPublicData",
		MembershipKeyLabel:     "subMpk",
		SeqNumLabel:            "SUB_ACC_SEQ_NUM_LABEL",
		HolderID:               "subHolderID",

		RangeIndex:    2,
		RangeKeyLabel: "subRppk",
		MinLabel:      "subMinValiddays",
		Min:           0,
		MaxLabel:      "subMaxValiddays",
		Max:           49998,

		EncryptIndex: 3,
	}
}

// Fixtures returns the credentials every session issues.
func Fixtures() []*Fixture {
	return []*Fixture{DriverLicense(), Subscription()}
}
