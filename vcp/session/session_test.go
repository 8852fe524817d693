/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/fabric-vcp/common/metrics/prometheus"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/hyperledger/fabric-vcp/vcp/backend/simulator"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/hyperledger/fabric-vcp/vcp/session"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connector(t *testing.T) (session.Connector, *simulator.Simulator) {
	sim := simulator.New()
	server := httptest.NewServer(sim.Handler())
	t.Cleanup(server.Close)

	return func(v session.Variant) (session.Seeder, error) {
		c, err := backend.New(backend.Config{Address: server.URL, ZkpLib: v.ProofSystem.Name})
		if err != nil {
			return nil, err
		}
		return session.ClientSeeder(c), nil
	}, sim
}

func newSession(t *testing.T, connect session.Connector, v session.Variant) *session.Session {
	seeder, err := connect(v)
	require.NoError(t, err)
	s, err := session.New(context.Background(), seeder, v, session.Options{MaxConcurrency: 2})
	require.NoError(t, err)
	return s
}

func TestVariants(t *testing.T) {
	var names []string
	for _, v := range session.Variants() {
		names = append(names, v.String())
	}
	assert.Equal(t, []string{
		"AC2C_BBS/NonBlinded", "AC2C_BBS/Blinded",
		"AC2C_PS/NonBlinded", "AC2C_PS/Blinded",
		"DNC/NonBlinded", "DNC/Blinded",
	}, names)
}

func TestLookupScenario(t *testing.T) {
	sc, err := session.LookupScenario("range")
	require.NoError(t, err)
	assert.Equal(t, "range", sc.Name)

	_, err = session.LookupScenario("nope")
	assert.True(t, vcp.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "verifiable-encryption")
}

func TestNewIssuesEveryFixture(t *testing.T) {
	connect, sim := connector(t)

	s := newSession(t, connect, session.Variant{ProofSystem: vcp.DNC})
	require.Len(t, s.Credentials, 2)
	for _, f := range s.Fixtures {
		cred := s.Credentials[f.Label]
		require.NotNil(t, cred, f.Label)
		assert.Equal(t, f.Attributes.Values, cred.Values)
		assert.NotEmpty(t, cred.Signature)
		spd, err := s.Registry.SignerPublicData(f.SignerLabel)
		require.NoError(t, err)
		assert.Equal(t, f.Attributes.ClaimTypes, spd.SignerPublicSchema)
	}
	assert.Equal(t, 0, sim.Calls("createBlindSigningInfo"))

	s = newSession(t, connect, session.Variant{ProofSystem: vcp.DNC, Blinded: true})
	assert.Equal(t, 2, sim.Calls("createBlindSigningInfo"))
	assert.Equal(t, 2, sim.Calls("unblindBlindedSignature"))
	dl, ok := s.Fixture("DL")
	require.True(t, ok)
	assert.Equal(t, dl.Attributes.Values, s.Credentials["DL"].Values)
}

func TestEveryScenarioOnEveryVariant(t *testing.T) {
	connect, _ := connector(t)
	ctx := context.Background()

	for _, v := range session.Variants() {
		for _, sc := range session.Scenarios() {
			v, sc := v, sc
			t.Run(v.String()+"/"+sc.Name, func(t *testing.T) {
				s := newSession(t, connect, v)
				report, err := s.Run(ctx, sc)
				require.NoError(t, err)
				assert.Equal(t, sc.Name, report.Scenario)
				assert.Equal(t, v.String(), report.Variant)
				assert.NotEmpty(t, report.ProofDigest)

				switch sc.Name {
				case "revealed":
					assert.Equal(t, session.DriverLicense().Attributes.Values[0], report.Revealed["DL"][0])
					assert.Equal(t, session.Subscription().Attributes.Values[0], report.Revealed["sub"][0])
				case "verifiable-encryption":
					assert.Equal(t, map[string]string{
						"DL[2]@authorityPublic":  "123-45-6789",
						"sub[3]@authorityPublic": "123-45-6789",
					}, report.Decrypted)
					if v.ProofSystem.Name == "DNC" {
						assert.Equal(t, "Verified", report.Decryption)
					} else {
						assert.Contains(t, report.Decryption, "KnownUnimplemented")
					}
				default:
					assert.Empty(t, report.Decrypted)
					assert.Empty(t, report.Decryption)
				}
			})
		}
	}
}

func TestAccumulatorScenarioAttachesWitnesses(t *testing.T) {
	connect, _ := connector(t)
	s := newSession(t, connect, session.Variant{ProofSystem: vcp.AC2CPS})

	sc, err := session.LookupScenario("accumulators")
	require.NoError(t, err)
	_, err = s.Run(context.Background(), sc)
	require.NoError(t, err)

	for _, f := range s.Fixtures {
		_, ok := s.Credentials[f.Label].Witness(f.AccumulatorIndex)
		assert.True(t, ok, f.Label)
		seq, err := s.Registry.Int(f.SeqNumLabel)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), seq)
	}

	// witnesses are attached once, so the same session cannot run it again
	_, err = s.Run(context.Background(), sc)
	assert.Error(t, err)
}

func TestScenarioSetupFailure(t *testing.T) {
	connect, _ := connector(t)
	s := newSession(t, connect, session.Variant{ProofSystem: vcp.DNC})

	failing := session.Scenario{
		Name: "broken",
		Setup: func(context.Context, *session.Session, *requirements.Builder) (vcp.DecryptRequests, error) {
			return nil, vcp.ConfigErrorf("boom")
		},
	}
	_, err := s.Run(context.Background(), failing)
	require.Error(t, err)
	assert.True(t, vcp.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "scenario broken setup failed")
}

func TestRunner(t *testing.T) {
	connect, _ := connector(t)
	registry := prom.NewRegistry()

	r := session.NewRunner(connect, &prometheus.Provider{Registerer: registry})
	r.Parallel = 3
	r.Options.MaxConcurrency = 2
	done := make(chan session.Outcome, 64)
	r.Done = func(o session.Outcome) { done <- o }

	bad := session.Scenario{
		Name: "broken",
		Setup: func(context.Context, *session.Session, *requirements.Builder) (vcp.DecryptRequests, error) {
			return nil, vcp.ConfigErrorf("boom")
		},
	}
	variants := session.Variants()[:2]
	scenarios := append(session.Scenarios(), bad)

	outcomes := r.Run(context.Background(), variants, scenarios)
	require.Len(t, outcomes, len(variants)*len(scenarios))
	assert.Len(t, done, len(outcomes))

	var passed, failed int
	for i, o := range outcomes {
		assert.Equal(t, variants[i/len(scenarios)], o.Variant)
		assert.Equal(t, scenarios[i%len(scenarios)].Name, o.Scenario)
		if o.Passed() {
			passed++
			assert.NotNil(t, o.Report)
		} else {
			failed++
			assert.Equal(t, "broken", o.Scenario)
		}
	}
	assert.Equal(t, 2*len(session.Scenarios()), passed)
	assert.Equal(t, 2, failed)

	families, err := registry.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() != "vcp_session_scenario_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(len(outcomes)), total)
}

func TestRunnerConnectFailure(t *testing.T) {
	r := session.NewRunner(func(v session.Variant) (session.Seeder, error) {
		return nil, vcp.ConfigErrorf("no backend for %s", v)
	}, nil)
	outcomes := r.Run(context.Background(), session.Variants()[:1], session.Scenarios()[:1])
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Passed())
	assert.True(t, vcp.IsConfigurationError(outcomes[0].Err))
}

func TestMismatchedEqualityIsProtocolWarning(t *testing.T) {
	connect, sim := connector(t)
	s := newSession(t, connect, session.Variant{ProofSystem: vcp.DNC, Blinded: true})

	// DL[1] and sub[2] are both integers but hold different values
	mismatched := session.Scenario{
		Name: "mismatched-equalities",
		Setup: func(_ context.Context, _ *session.Session, b *requirements.Builder) (vcp.DecryptRequests, error) {
			b.Equal("DL", 1, "sub", 2)
			b.Equal("sub", 2, "DL", 1)
			return nil, nil
		},
	}
	report, err := s.Run(context.Background(), mismatched)
	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, vcp.IsProtocolWarning(err), err.Error())
	pw, ok := vcp.AsProtocolWarning(err)
	require.True(t, ok)
	assert.Equal(t, vcp.OpCreateProof, pw.Op)
	assert.Len(t, pw.Warnings, 2)
	assert.Equal(t, 0, sim.Calls(vcp.OpVerifyProof))
}
