/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signer runs credential issuance, either directly by the signer or
// through the three step blind signing protocol between holder and signer.
package signer

import (
	"context"

	"github.com/bits-and-blooms/bitset"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("vcp.signer")

//go:generate counterfeiter -o mock/backend.go -fake-name Backend . Backend

// Backend is the part of the proof backend used for issuance.
type Backend interface {
	CreateSignerData(ctx context.Context, claimTypes []vcp.ClaimType, blinded []vcp.CredAttrIndex) (*vcp.SignerData, error)
	Sign(ctx context.Context, values []vcp.DataValue, sd *vcp.SignerData) (vcp.Signature, error)
	CreateBlindSigningInfo(ctx context.Context, spd *vcp.SignerPublicData, blinded []vcp.CredAttrIndexAndDataValue) (*vcp.BlindSigningInfo, error)
	SignWithBlindedAttributes(ctx context.Context, sd *vcp.SignerData, nonBlinded []vcp.CredAttrIndexAndDataValue, info vcp.BlindInfoForSigner) (vcp.BlindSignature, error)
	UnblindBlindedSignature(ctx context.Context, claimTypes []vcp.ClaimType, blinded []vcp.CredAttrIndexAndDataValue, info vcp.InfoForUnblinding, sig vcp.BlindSignature) (vcp.Signature, error)
}

// Issuance is the result of a successful issuance. SignerData holds the
// signer's secret and stays with the issuer; PublicData is what gets
// published.
type Issuance struct {
	SignerData *vcp.SignerData
	PublicData vcp.SignerPublicData
	Signature  vcp.Signature
	Values     []vcp.DataValue
}

// Credential returns the holder's copy of the issued credential.
func (i *Issuance) Credential() *vcp.SignatureAndRelatedData {
	return vcp.NewSignatureAndRelatedData(i.Signature, i.Values)
}

type Workflow struct {
	Backend Backend
}

func New(b Backend) *Workflow {
	return &Workflow{Backend: b}
}

// Issue creates signer data for attrs and signs them. With no blinded
// indices the signer sees and signs every value. Otherwise the values at the
// blinded indices are hidden from the signer and the blind signing protocol
// is run. No partial result survives a failed step.
func (w *Workflow) Issue(ctx context.Context, attrs vcp.AttributeSet, blinded []vcp.CredAttrIndex) (*Issuance, error) {
	if len(blinded) == 0 {
		return w.issueDirect(ctx, attrs)
	}
	return w.issueBlinded(ctx, attrs, blinded)
}

// issueDirect leaves schema and value count checks to the backend.
func (w *Workflow) issueDirect(ctx context.Context, attrs vcp.AttributeSet) (*Issuance, error) {
	logger.Debugf("creating signer data for %d claim types", len(attrs.ClaimTypes))
	sd, err := w.Backend.CreateSignerData(ctx, attrs.ClaimTypes, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create signer data")
	}

	logger.Debugf("signing %d values", attrs.Len())
	sig, err := w.Backend.Sign(ctx, attrs.Values, sd)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to sign")
	}

	return &Issuance{
		SignerData: sd,
		PublicData: sd.SignerPublicData,
		Signature:  sig,
		Values:     append([]vcp.DataValue{}, attrs.Values...),
	}, nil
}

func (w *Workflow) issueBlinded(ctx context.Context, attrs vcp.AttributeSet, blinded []vcp.CredAttrIndex) (*Issuance, error) {
	if attrs.Len() != len(attrs.ClaimTypes) {
		return nil, vcp.ConfigErrorf("%d values given for %d claim types", attrs.Len(), len(attrs.ClaimTypes))
	}
	hidden, visible, err := Partition(len(attrs.ClaimTypes), blinded)
	if err != nil {
		return nil, err
	}

	logger.Debugf("creating signer data for %d claim types, blinding %v", len(attrs.ClaimTypes), hidden)
	sd, err := w.Backend.CreateSignerData(ctx, attrs.ClaimTypes, hidden)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create signer data")
	}

	session, err := w.NewBlindSession(ctx, &sd.SignerPublicData, attrs.ClaimTypes, attrs.Pairs(hidden))
	if err != nil {
		return nil, err
	}
	bsig, err := session.Sign(ctx, sd, attrs.Pairs(visible))
	if err != nil {
		return nil, err
	}
	sig, err := session.Unblind(ctx, bsig)
	if err != nil {
		return nil, err
	}

	return &Issuance{
		SignerData: sd,
		PublicData: sd.SignerPublicData,
		Signature:  sig,
		Values:     append([]vcp.DataValue{}, attrs.Values...),
	}, nil
}

// Partition splits the indices of an n attribute credential into the
// blinded and the non-blinded ones, both in ascending order. Every blinded
// index must be in range and appear once.
func Partition(n int, blinded []vcp.CredAttrIndex) (hidden, visible []vcp.CredAttrIndex, err error) {
	set := bitset.New(uint(n))
	for _, idx := range blinded {
		if idx >= uint64(n) {
			return nil, nil, vcp.ConfigErrorf("blinded index %d out of range for a credential with %d attributes", idx, n)
		}
		if set.Test(uint(idx)) {
			return nil, nil, vcp.ConfigErrorf("blinded index %d given more than once", idx)
		}
		set.Set(uint(idx))
	}
	return indices(set), indices(set.Complement()), nil
}

func indices(set *bitset.BitSet) []vcp.CredAttrIndex {
	out := make([]vcp.CredAttrIndex, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, uint64(i))
	}
	return out
}
