/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"
	"strings"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/accumulator"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/pkg/errors"
)

// Scenario adds constraints to a proof and publishes the shared parameters
// they refer to. It returns the decryptions the verifier will request.
type Scenario struct {
	Name  string
	Setup func(ctx context.Context, s *Session, b *requirements.Builder) (vcp.DecryptRequests, error)
}

// Scenarios lists every scenario in the order they are run.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "revealed", Setup: revealed},
		{Name: "equalities", Setup: equalities},
		{Name: "range", Setup: inRange},
		{Name: "accumulators", Setup: accumulators},
		{Name: "verifiable-encryption", Setup: verifiableEncryption},
	}
}

// LookupScenario finds a scenario by name.
func LookupScenario(name string) (Scenario, error) {
	var names []string
	for _, sc := range Scenarios() {
		if sc.Name == name {
			return sc, nil
		}
		names = append(names, sc.Name)
	}
	return Scenario{}, vcp.ConfigErrorf("unknown scenario '%s', expected one of %s", name, strings.Join(names, ", "))
}

func revealed(_ context.Context, s *Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
	for _, f := range s.Fixtures {
		b.Disclose(f.Label, f.Revealed...)
	}
	return nil, nil
}

// equalities ties the social security numbers of both credentials together,
// in both directions.
func equalities(_ context.Context, _ *Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
	dl, sub := DriverLicense(), Subscription()
	b.Equal(dl.Label, dl.EncryptIndex, sub.Label, sub.EncryptIndex)
	b.Equal(sub.Label, sub.EncryptIndex, dl.Label, dl.EncryptIndex)
	return nil, nil
}

func inRange(ctx context.Context, s *Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
	be := s.Backend(0)
	maxValue, err := be.GetRangeProofMaxValue(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get range proof maximum")
	}
	rppk, err := be.CreateRangeProofProvingKey(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create range proof proving key")
	}

	for _, f := range s.Fixtures {
		if f.Max > maxValue {
			return nil, vcp.ConfigErrorf("range maximum %d of '%s' exceeds the backend maximum %d", f.Max, f.Label, maxValue)
		}
		if err := s.Registry.PutRangeProofProvingKey(f.RangeKeyLabel, rppk); err != nil {
			return nil, err
		}
		if err := s.Registry.PutInt(f.MinLabel, f.Min); err != nil {
			return nil, err
		}
		if err := s.Registry.PutInt(f.MaxLabel, f.Max); err != nil {
			return nil, err
		}
		b.InRange(f.Label, f.inRange())
	}
	return nil, nil
}

// accumulators creates one accumulator per credential, adds the holder's
// element in a single batch, and hands the witness to the holder after
// checking that the manager reproduces it.
func accumulators(ctx context.Context, s *Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
	mpk, err := accumulator.New(s.Backend(0)).MembershipProvingKey(ctx)
	if err != nil {
		return nil, err
	}

	err = s.each(ctx, func(ctx context.Context, f *Fixture) error {
		m := accumulator.New(s.Backend(f.AccumulatorSeed))
		state, err := m.CreateAccumulator(ctx)
		if err != nil {
			return err
		}

		value, ok := f.Attributes.Value(f.AccumulatorIndex)
		if !ok {
			return vcp.ConfigErrorf("credential '%s' has no attribute at index %d", f.Label, f.AccumulatorIndex)
		}
		elem, err := m.Element(ctx, value.Plain())
		if err != nil {
			return err
		}
		u, err := m.AddElements(ctx, state, map[vcp.HolderID]vcp.AccumulatorElement{f.HolderID: elem})
		if err != nil {
			return err
		}
		w := u.Witnesses[f.HolderID]
		if err := m.CheckWitness(ctx, u.State, elem, w); err != nil {
			return errors.WithMessagef(err, "witness of '%s'", f.Label)
		}

		if err := s.Credentials[f.Label].AttachWitness(f.AccumulatorIndex, w); err != nil {
			return err
		}

		for _, put := range []func() error{
			func() error { return s.Registry.PutAccumulatorPublicData(f.AccumulatorPublicLabel, u.State.PublicData()) },
			func() error { return s.Registry.PutAccumulator(f.AccumulatorLabel, u.State.Accumulator) },
			func() error { return s.Registry.PutMembershipProvingKey(f.MembershipKeyLabel, mpk) },
			func() error { return s.Registry.PutInt(f.SeqNumLabel, u.State.SeqNum) },
		} {
			if err := put(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, f := range s.Fixtures {
		b.InAccum(f.Label, f.inAccum())
	}
	return nil, nil
}

// verifiableEncryption encrypts the social security number of both
// credentials for one authority and asks the verifier to decrypt them.
func verifiableEncryption(ctx context.Context, s *Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
	ad, err := s.Backend(0).CreateAuthorityData(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create authority data")
	}
	if err := s.Registry.PutAuthorityPublicData(AuthorityLabel, ad.AuthorityPublicData); err != nil {
		return nil, err
	}

	requests := vcp.DecryptRequests{}
	for _, f := range s.Fixtures {
		b.EncryptFor(f.Label, f.EncryptIndex, AuthorityLabel)
		requests[vcp.DecryptKey{Credential: f.Label, Index: f.EncryptIndex, Authority: AuthorityLabel}] = ad.DecryptRequest()
	}
	return requests, nil
}
