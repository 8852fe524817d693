/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package verifier drives proof verification and, when decryptions were
// requested, verification of the authority's decryptions.
package verifier

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

var logger = flogging.MustGetLogger("vcp.verifier")

//go:generate counterfeiter -o mock/backend.go -fake-name Backend . Backend

// Backend is the part of the proof backend used by verifiers.
type Backend interface {
	VerifyProof(
		ctx context.Context,
		reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
		shared map[vcp.SharedParamKey]vcp.SharedParamValue,
		dfv vcp.DataForVerifier,
		decryptRequests vcp.DecryptRequests,
		nonce string,
	) (*vcp.WarningsAndDecryptResponses, error)
	VerifyDecryption(
		ctx context.Context,
		reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
		shared map[vcp.SharedParamKey]vcp.SharedParamValue,
		proof vcp.Proof,
		keys map[vcp.AuthorityLabel]vcp.AuthorityDecryptionKey,
		responses vcp.DecryptResponses,
		nonce string,
	) ([]vcp.Warning, error)
}

// Registry is the shared parameter view a verifier checks against.
type Registry interface {
	requirements.Registry
	Map() map[vcp.SharedParamKey]vcp.SharedParamValue
}

type OutcomeKind int

const (
	// Verified means the backend checked every decryption proof.
	Verified OutcomeKind = iota
	// KnownUnimplemented means the proof system does not implement
	// decryption verification.
	KnownUnimplemented
)

func (k OutcomeKind) String() string {
	switch k {
	case Verified:
		return "Verified"
	case KnownUnimplemented:
		return "KnownUnimplemented"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// DecryptionOutcome is the result of decryption verification. Limitation is
// set for KnownUnimplemented.
type DecryptionOutcome struct {
	Kind       OutcomeKind
	Limitation vcp.Limitation
}

func (d DecryptionOutcome) String() string {
	if d.Kind == KnownUnimplemented {
		return fmt.Sprintf("%s (%s)", d.Kind, d.Limitation.Detail)
	}
	return d.Kind.String()
}

// Result of a successful verification. Decryption is nil when no decryption
// was requested.
type Result struct {
	DecryptResponses vcp.DecryptResponses
	Decryption       *DecryptionOutcome
}

// Value returns the plaintext recovered for key.
func (r *Result) Value(key vcp.DecryptKey) (string, bool) {
	resp, ok := r.DecryptResponses[key]
	return resp.Value, ok
}

type Orchestrator struct {
	Backend     Backend
	ProofSystem vcp.ProofSystem
}

func New(b Backend, ps vcp.ProofSystem) *Orchestrator {
	return &Orchestrator{Backend: b, ProofSystem: ps}
}

// VerifyProof verifies dfv against reqs and the nonce the verifier issued.
// Decrypt requests ask the backend to decrypt encrypted attributes; when it
// returns decryptions they are verified in turn.
func (o *Orchestrator) VerifyProof(
	ctx context.Context,
	dfv vcp.DataForVerifier,
	reqs requirements.Requirements,
	shared Registry,
	decryptRequests vcp.DecryptRequests,
	nonce string,
) (*Result, error) {
	if nonce == "" {
		return nil, vcp.ConfigErrorf("a nonce is required to verify a proof")
	}
	if err := reqs.Validate(shared); err != nil {
		return nil, err
	}
	if err := reqs.CheckDecryptRequests(decryptRequests); err != nil {
		return nil, err
	}
	keys, err := decryptRequests.DecryptionKeys()
	if err != nil {
		return nil, err
	}
	if err := reqs.CheckRevealed(dfv.RevealedIdxsAndVals); err != nil {
		return nil, vcp.ConfigErrorf("proof does not reveal the disclosed values: %s", err)
	}
	params := shared.Map()

	logger.Debugf("verifying proof for credentials %v with %d decrypt requests", reqs.Labels(), len(decryptRequests))
	if logger.IsEnabledFor(zapcore.DebugLevel) {
		logger.Debugf("revealed values: %s", spew.Sdump(dfv.RevealedIdxsAndVals))
	}

	resp, err := o.Backend.VerifyProof(ctx, reqs, params, dfv, decryptRequests, nonce)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to verify proof")
	}
	if len(resp.Warnings) > 0 {
		for _, w := range resp.Warnings {
			logger.Warnf("proof verification warning: %s", w)
		}
		return nil, &vcp.ProtocolWarningError{Op: vcp.OpVerifyProof, Warnings: resp.Warnings}
	}
	if err := vcp.SameKeys(decryptRequests, resp.DecryptResponses); err != nil {
		return nil, &vcp.BackendError{Op: vcp.OpVerifyProof, Reason: "decrypt responses do not match the requests", Err: err}
	}

	result := &Result{DecryptResponses: resp.DecryptResponses}
	if len(resp.DecryptResponses) == 0 {
		logger.Debug("proof verified, no decryptions to verify")
		return result, nil
	}

	outcome, err := o.verifyDecryption(ctx, reqs, params, dfv.Proof, keys, resp.DecryptResponses, nonce)
	if err != nil {
		return nil, err
	}
	result.Decryption = outcome
	return result, nil
}

func (o *Orchestrator) verifyDecryption(
	ctx context.Context,
	reqs requirements.Requirements,
	params map[vcp.SharedParamKey]vcp.SharedParamValue,
	proof vcp.Proof,
	keys map[vcp.AuthorityLabel]vcp.AuthorityDecryptionKey,
	responses vcp.DecryptResponses,
	nonce string,
) (*DecryptionOutcome, error) {
	logger.Debugf("verifying %d decryptions", len(responses))
	warnings, err := o.Backend.VerifyDecryption(ctx, reqs, params, proof, keys, responses, nonce)
	if err != nil {
		if l, ok := o.ProofSystem.KnownLimitation(vcp.OpVerifyDecryption, err); ok {
			logger.Warnf("%s: decryption verification skipped: %s", o.ProofSystem, l.Detail)
			return &DecryptionOutcome{Kind: KnownUnimplemented, Limitation: l}, nil
		}
		return nil, errors.WithMessage(err, "failed to verify decryption")
	}
	if len(warnings) > 0 {
		for _, w := range warnings {
			logger.Warnf("decryption verification warning: %s", w)
		}
		return nil, &vcp.ProtocolWarningError{Op: vcp.OpVerifyDecryption, Warnings: warnings}
	}
	return &DecryptionOutcome{Kind: Verified}, nil
}
