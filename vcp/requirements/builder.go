/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package requirements

import (
	"github.com/hyperledger/fabric-vcp/vcp"
)

// Builder assembles Requirements. Constraints for a credential label that
// was never declared with Credential make Build fail.
type Builder struct {
	reqs       Requirements
	undeclared []vcp.CredentialLabel
}

func NewBuilder() *Builder {
	return &Builder{reqs: Requirements{}}
}

func (b *Builder) update(label vcp.CredentialLabel, f func(*vcp.CredentialReqs)) *Builder {
	cr, ok := b.reqs[label]
	if !ok {
		b.undeclared = append(b.undeclared, label)
		return b
	}
	f(&cr)
	b.reqs[label] = cr
	return b
}

// Credential declares a credential signed by the signer published under
// signerLabel.
func (b *Builder) Credential(label vcp.CredentialLabel, signerLabel vcp.SharedParamKey) *Builder {
	if _, ok := b.reqs[label]; !ok {
		b.reqs[label] = vcp.CredentialReqs{SignerLabel: signerLabel}
	}
	return b
}

func (b *Builder) Disclose(label vcp.CredentialLabel, idxs ...vcp.CredAttrIndex) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.Disclosed = append(cr.Disclosed, idxs...)
	})
}

// Equal requires label[from] to equal other[to].
func (b *Builder) Equal(label vcp.CredentialLabel, from vcp.CredAttrIndex, other vcp.CredentialLabel, to vcp.CredAttrIndex) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.EqualTo = append(cr.EqualTo, vcp.EqInfo{FromIndex: from, ToLabel: other, ToIndex: to})
	})
}

func (b *Builder) InRange(label vcp.CredentialLabel, ir vcp.InRangeInfo) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.InRange = append(cr.InRange, ir)
	})
}

func (b *Builder) InAccum(label vcp.CredentialLabel, ia vcp.InAccumInfo) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.InAccum = append(cr.InAccum, ia)
	})
}

func (b *Builder) NotInAccum(label vcp.CredentialLabel, idx vcp.CredAttrIndex, accLabel vcp.SharedParamKey) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.NotInAccum = append(cr.NotInAccum, vcp.IndexAndLabel{Index: idx, Label: accLabel})
	})
}

// EncryptFor requires label[idx] to be encrypted for the authority published
// under authLabel.
func (b *Builder) EncryptFor(label vcp.CredentialLabel, idx vcp.CredAttrIndex, authLabel vcp.SharedParamKey) *Builder {
	return b.update(label, func(cr *vcp.CredentialReqs) {
		cr.EncryptedFor = append(cr.EncryptedFor, vcp.IndexAndLabel{Index: idx, Label: authLabel})
	})
}

func (b *Builder) Build() (Requirements, error) {
	if len(b.undeclared) > 0 {
		return nil, vcp.ConfigErrorf("constraints given for undeclared credential '%s'", b.undeclared[0])
	}
	out := make(Requirements, len(b.reqs))
	for k, v := range b.reqs {
		out[k] = v
	}
	return out, nil
}
