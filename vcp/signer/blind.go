/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer

import (
	"context"
	"sync"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

// BlindSession is one run of the blind signing protocol. The blinding info
// it holds is single use: the signer may sign once and the holder may
// unblind once, and a failed step ends the session.
type BlindSession struct {
	backend    Backend
	claimTypes []vcp.ClaimType
	blinded    []vcp.CredAttrIndexAndDataValue
	info       *vcp.BlindSigningInfo

	mutex     sync.Mutex
	signed    bool
	unblinded bool
}

// NewBlindSession runs the holder's first step: committing to the blinded
// values against the signer's public data.
func (w *Workflow) NewBlindSession(ctx context.Context, spd *vcp.SignerPublicData, claimTypes []vcp.ClaimType, blinded []vcp.CredAttrIndexAndDataValue) (*BlindSession, error) {
	logger.Debugf("creating blind signing info for %d attributes", len(blinded))
	info, err := w.Backend.CreateBlindSigningInfo(ctx, spd, blinded)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create blind signing info")
	}
	return &BlindSession{
		backend:    w.Backend,
		claimTypes: claimTypes,
		blinded:    blinded,
		info:       info,
	}, nil
}

// InfoForSigner is the part of the blinding info sent to the signer.
func (s *BlindSession) InfoForSigner() vcp.BlindInfoForSigner {
	return s.info.BlindInfoForSigner
}

// Sign is the signer's step.
func (s *BlindSession) Sign(ctx context.Context, sd *vcp.SignerData, nonBlinded []vcp.CredAttrIndexAndDataValue) (vcp.BlindSignature, error) {
	s.mutex.Lock()
	if s.signed {
		s.mutex.Unlock()
		return "", vcp.ConfigErrorf("blind signing info has already been signed")
	}
	s.signed = true
	s.mutex.Unlock()

	logger.Debugf("signing %d non-blinded attributes with blinded attributes", len(nonBlinded))
	bsig, err := s.backend.SignWithBlindedAttributes(ctx, sd, nonBlinded, s.info.BlindInfoForSigner)
	if err != nil {
		return "", errors.WithMessage(err, "failed to sign with blinded attributes")
	}
	return bsig, nil
}

// Unblind is the holder's final step. It fails unless Sign ran first.
func (s *BlindSession) Unblind(ctx context.Context, bsig vcp.BlindSignature) (vcp.Signature, error) {
	s.mutex.Lock()
	if !s.signed {
		s.mutex.Unlock()
		return "", vcp.ConfigErrorf("blind signing session has not been signed yet")
	}
	if s.unblinded {
		s.mutex.Unlock()
		return "", vcp.ConfigErrorf("blind signing session has already been unblinded")
	}
	s.unblinded = true
	s.mutex.Unlock()

	logger.Debug("unblinding signature")
	sig, err := s.backend.UnblindBlindedSignature(ctx, s.claimTypes, s.blinded, s.info.InfoForUnblinding, bsig)
	if err != nil {
		return "", errors.WithMessage(err, "failed to unblind signature")
	}
	return sig, nil
}
