/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package proof drives proof creation on the holder side.
package proof

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

var logger = flogging.MustGetLogger("vcp.proof")

//go:generate counterfeiter -o mock/backend.go -fake-name Backend . Backend

// Backend is the part of the proof backend used by holders.
type Backend interface {
	CreateProof(
		ctx context.Context,
		reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
		shared map[vcp.SharedParamKey]vcp.SharedParamValue,
		sigs map[vcp.CredentialLabel]vcp.SignatureAndRelatedData,
		nonce string,
	) (*vcp.WarningsAndDataForVerifier, error)
}

// Registry is the shared parameter view a holder proves against.
type Registry interface {
	requirements.Registry
	Map() map[vcp.SharedParamKey]vcp.SharedParamValue
}

// Artifact is a proof together with the values it reveals.
type Artifact struct {
	DataForVerifier vcp.DataForVerifier
	Nonce           string
}

func (a *Artifact) Proof() vcp.Proof { return a.DataForVerifier.Proof }

// Revealed returns the value revealed for label at idx.
func (a *Artifact) Revealed(label vcp.CredentialLabel, idx vcp.CredAttrIndex) (vcp.DataValue, bool) {
	v, ok := a.DataForVerifier.RevealedIdxsAndVals[label][idx]
	return v, ok
}

type Orchestrator struct {
	Backend Backend
}

func New(b Backend) *Orchestrator {
	return &Orchestrator{Backend: b}
}

// CreateProof proves possession of creds satisfying reqs. The nonce is
// supplied by the verifier and binds the proof to one verification. A
// result carrying warnings is rejected, as is one whose revealed values do
// not match the disclosed indices.
func (o *Orchestrator) CreateProof(
	ctx context.Context,
	creds map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData,
	reqs requirements.Requirements,
	shared Registry,
	nonce string,
) (*Artifact, error) {
	if nonce == "" {
		return nil, vcp.ConfigErrorf("a nonce is required to create a proof")
	}
	if err := reqs.Validate(shared); err != nil {
		return nil, err
	}
	if err := reqs.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	sigs := make(map[vcp.CredentialLabel]vcp.SignatureAndRelatedData, len(creds))
	for label, c := range creds {
		sigs[label] = *c
	}
	params := shared.Map()

	logger.Debugf("creating proof for credentials %v with %d shared parameters", reqs.Labels(), len(params))
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("proof requirements: %s", spew.Sdump(reqs))
	}

	resp, err := o.Backend.CreateProof(ctx, reqs, params, sigs, nonce)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create proof")
	}
	if len(resp.Warnings) > 0 {
		for _, w := range resp.Warnings {
			logger.Warnf("proof creation warning: %s", w)
		}
		return nil, &vcp.ProtocolWarningError{Op: vcp.OpCreateProof, Warnings: resp.Warnings}
	}

	dfv := resp.DataForVerifier
	if err := reqs.CheckRevealed(dfv.RevealedIdxsAndVals); err != nil {
		return nil, &vcp.BackendError{Op: vcp.OpCreateProof, Reason: "revealed values do not match the disclosed indices", Err: err}
	}
	for _, label := range reqs.Labels() {
		values := creds[label].Values
		for idx, v := range dfv.RevealedIdxsAndVals[label] {
			if idx >= uint64(len(values)) {
				return nil, vcp.ConfigErrorf("credential '%s' has %d values, index %d is disclosed", label, len(values), idx)
			}
			if values[idx] != v {
				return nil, &vcp.BackendError{
					Op:     vcp.OpCreateProof,
					Reason: "revealed value differs from the signed value",
					Err:    errors.Errorf("credential '%s' index %d: revealed %s, signed %s", label, idx, v, values[idx]),
				}
			}
		}
	}

	logger.Debugf("created proof of %s", flogging.Truncate(string(dfv.Proof), 32))
	return &Artifact{DataForVerifier: dfv, Nonce: nonce}, nil
}
