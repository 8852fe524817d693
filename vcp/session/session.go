/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package session composes the roles of the protocol into complete runs:
// issuance of the fixture credentials, publication of shared parameters,
// accumulator setup and the proof, verification and decryption exchange.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/common/semaphore"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/accumulator"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/hyperledger/fabric-vcp/vcp/proof"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/hyperledger/fabric-vcp/vcp/sharedparams"
	"github.com/hyperledger/fabric-vcp/vcp/signer"
	"github.com/hyperledger/fabric-vcp/vcp/verifier"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var logger = flogging.MustGetLogger("vcp.session")

// Backend is everything a session needs from the proof backend.
type Backend interface {
	signer.Backend
	accumulator.Backend
	proof.Backend
	verifier.Backend
	CreateRangeProofProvingKey(ctx context.Context) (vcp.RangeProofProvingKey, error)
	GetRangeProofMaxValue(ctx context.Context) (uint64, error)
	CreateAuthorityData(ctx context.Context) (*vcp.AuthorityData, error)
}

// Seeder returns a backend handle whose generating operations use seed.
type Seeder func(seed uint64) Backend

// ClientSeeder adapts a backend client.
func ClientSeeder(c *backend.Client) Seeder {
	return func(seed uint64) Backend { return c.Seeded(seed) }
}

// Variant is one proof system combined with one issuance mode.
type Variant struct {
	ProofSystem vcp.ProofSystem
	Blinded     bool
}

func (v Variant) String() string {
	if v.Blinded {
		return v.ProofSystem.Name + "/Blinded"
	}
	return v.ProofSystem.Name + "/NonBlinded"
}

// Variants returns every known proof system in both issuance modes.
func Variants() []Variant {
	var out []Variant
	for _, ps := range vcp.ProofSystems {
		out = append(out, Variant{ProofSystem: ps}, Variant{ProofSystem: ps, Blinded: true})
	}
	return out
}

type Options struct {
	// MaxConcurrency bounds the backend calls a session makes in parallel.
	// Zero means unbounded.
	MaxConcurrency int
}

// Session holds the issued credentials of one variant and the registry the
// holder and verifier share. A session backs exactly one scenario run.
type Session struct {
	Variant     Variant
	Registry    *sharedparams.Registry
	Fixtures    []*Fixture
	Credentials map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData
	Issuances   map[vcp.CredentialLabel]*signer.Issuance

	seeder Seeder
	sem    semaphore.Semaphore
}

// New issues every fixture credential concurrently and publishes the signer
// public data. The credentials are blind signed when the variant says so.
func New(ctx context.Context, seeder Seeder, v Variant, o Options) (*Session, error) {
	s := &Session{
		Variant:     v,
		Registry:    sharedparams.New(),
		Fixtures:    Fixtures(),
		Credentials: map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData{},
		Issuances:   map[vcp.CredentialLabel]*signer.Issuance{},
		seeder:      seeder,
		sem:         semaphore.New(o.MaxConcurrency),
	}

	logger.Infof("[%s] issuing %d credentials", v, len(s.Fixtures))
	var mutex sync.Mutex
	err := s.each(ctx, func(ctx context.Context, f *Fixture) error {
		var blinded []vcp.CredAttrIndex
		if v.Blinded {
			blinded = f.Blinded
		}
		iss, err := signer.New(s.seeder(f.SignerSeed)).Issue(ctx, f.Attributes, blinded)
		if err != nil {
			return errors.WithMessagef(err, "failed to issue credential '%s'", f.Label)
		}
		if err := s.Registry.PutSignerPublicData(f.SignerLabel, &iss.PublicData); err != nil {
			return err
		}
		mutex.Lock()
		s.Issuances[f.Label] = iss
		s.Credentials[f.Label] = iss.Credential()
		mutex.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// each runs f for every fixture in parallel, bounded by the session
// semaphore, and returns the first error.
func (s *Session) each(ctx context.Context, f func(context.Context, *Fixture) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fx := range s.Fixtures {
		fx := fx
		g.Go(func() error {
			if err := s.sem.Acquire(gctx); err != nil {
				return err
			}
			defer s.sem.Release()
			return f(gctx, fx)
		})
	}
	return g.Wait()
}

// Backend returns the session's backend handle for seed.
func (s *Session) Backend(seed uint64) Backend {
	return s.seeder(seed)
}

// Fixture returns the fixture issued under label.
func (s *Session) Fixture(label vcp.CredentialLabel) (*Fixture, bool) {
	for _, f := range s.Fixtures {
		if f.Label == label {
			return f, true
		}
	}
	return nil, false
}

// Requirements starts a requirements builder that declares every issued
// credential.
func (s *Session) Requirements() *requirements.Builder {
	b := requirements.NewBuilder()
	for _, f := range s.Fixtures {
		b.Credential(f.Label, f.SignerLabel)
	}
	return b
}

// Report is the outcome of a successful scenario run.
type Report struct {
	Scenario    string
	Variant     string
	Revealed    map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue
	Decrypted   map[string]string
	Decryption  string
	ProofDigest string
}

// Run executes sc against the session: the scenario adds constraints and
// publishes what they need, the holder proves, the verifier verifies and
// requested decryptions are checked against the issued values.
func (s *Session) Run(ctx context.Context, sc Scenario) (*Report, error) {
	logger.Infof("[%s] running scenario %s", s.Variant, sc.Name)

	b := s.Requirements()
	decryptRequests, err := sc.Setup(ctx, s, b)
	if err != nil {
		return nil, errors.WithMessagef(err, "scenario %s setup failed", sc.Name)
	}
	reqs, err := b.Build()
	if err != nil {
		return nil, err
	}

	artifact, err := proof.New(s.Backend(0)).CreateProof(ctx, s.Credentials, reqs, s.Registry, Nonce)
	if err != nil {
		return nil, err
	}

	result, err := verifier.New(s.Backend(0), s.Variant.ProofSystem).VerifyProof(ctx, artifact.DataForVerifier, reqs, s.Registry, decryptRequests, Nonce)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Scenario:    sc.Name,
		Variant:     s.Variant.String(),
		Revealed:    artifact.DataForVerifier.RevealedIdxsAndVals,
		Decrypted:   map[string]string{},
		ProofDigest: flogging.Truncate(string(artifact.Proof()), 24),
	}

	if err := s.checkDecryptions(decryptRequests, result, report); err != nil {
		return nil, err
	}
	if err := s.checkOutcome(decryptRequests, result.Decryption); err != nil {
		return nil, err
	}
	if result.Decryption != nil {
		report.Decryption = result.Decryption.String()
	}
	logger.Infof("[%s] scenario %s passed", s.Variant, sc.Name)
	return report, nil
}

// checkDecryptions compares every recovered plaintext with the issued value.
func (s *Session) checkDecryptions(requests vcp.DecryptRequests, result *verifier.Result, report *Report) error {
	for _, k := range requests.Keys() {
		got, ok := result.Value(k)
		if !ok {
			return errors.Errorf("no decryption returned for %s", k)
		}
		f, ok := s.Fixture(k.Credential)
		if !ok {
			return vcp.ConfigErrorf("decryption requested for unknown credential '%s'", k.Credential)
		}
		want, ok := f.Plaintext(k.Index)
		if !ok {
			return vcp.ConfigErrorf("decryption requested for %s which is out of range", k)
		}
		if got != want {
			return &vcp.BackendError{
				Op:     vcp.OpVerifyProof,
				Reason: fmt.Sprintf("decryption of %s recovered %q, issued %q", k, got, want),
			}
		}
		report.Decrypted[k.String()] = got
	}
	return nil
}

// checkOutcome requires decryption verification to have run exactly when
// decryptions were requested, with the outcome the proof system catalogue
// predicts.
func (s *Session) checkOutcome(requests vcp.DecryptRequests, outcome *verifier.DecryptionOutcome) error {
	if len(requests) == 0 {
		if outcome != nil {
			return errors.Errorf("decryption verified although none was requested")
		}
		return nil
	}
	if outcome == nil {
		return errors.Errorf("decryption was requested but not verified")
	}
	want := verifier.Verified
	if !s.Variant.ProofSystem.Supports(vcp.OpVerifyDecryption) {
		want = verifier.KnownUnimplemented
	}
	if outcome.Kind != want {
		return errors.Errorf("decryption verification on %s: expected %s, got %s", s.Variant.ProofSystem, want, outcome.Kind)
	}
	return nil
}
