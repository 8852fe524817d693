/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/hyperledger/fabric-vcp/vcp/backend/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T, zkpLib string) (*backend.Client, *simulator.Simulator) {
	sim := simulator.New()
	server := httptest.NewServer(sim.Handler())
	t.Cleanup(server.Close)
	c, err := backend.New(backend.Config{Address: server.URL, ZkpLib: zkpLib})
	require.NoError(t, err)
	return c, sim
}

var (
	claimTypes = []vcp.ClaimType{vcp.CTText, vcp.CTInt, vcp.CTEncryptableText}
	values     = []vcp.DataValue{vcp.Text("DriverLicense"), vcp.Int(37852), vcp.Text("123-45-6789")}
)

func TestDirectSigning(t *testing.T) {
	c, _ := start(t, "DNC")
	ctx := context.Background()

	sd, err := c.Seeded(1).CreateSignerData(ctx, claimTypes, nil)
	require.NoError(t, err)
	again, err := c.Seeded(1).CreateSignerData(ctx, claimTypes, nil)
	require.NoError(t, err)
	assert.Equal(t, sd, again, "equal seeds must produce equal signer data")

	sig, err := c.Sign(ctx, values, sd)
	require.NoError(t, err)
	assert.NotEmpty(t, sig)

	_, err = c.Sign(ctx, values[:2], sd)
	be, ok := vcp.AsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, be.Code)
	assert.Contains(t, be.Reason, "expected 3 values")
	assert.Equal(t, vcp.OpSign, be.Location)

	_, err = c.Sign(ctx, []vcp.DataValue{vcp.Text("a"), vcp.Text("b"), vcp.Text("c")}, sd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not fit claim type CTInt")
}

func TestBlindSigningMatchesDirectSigning(t *testing.T) {
	c, _ := start(t, "AC2C_BBS")
	ctx := context.Background()

	sd, err := c.CreateSignerData(ctx, claimTypes, []vcp.CredAttrIndex{1, 2})
	require.NoError(t, err)
	attrs := vcp.AttributeSet{ClaimTypes: claimTypes, Values: values}

	blinded := attrs.Pairs([]vcp.CredAttrIndex{1, 2})
	info, err := c.CreateBlindSigningInfo(ctx, &sd.SignerPublicData, blinded)
	require.NoError(t, err)
	bsig, err := c.SignWithBlindedAttributes(ctx, sd, attrs.Pairs([]vcp.CredAttrIndex{0}), info.BlindInfoForSigner)
	require.NoError(t, err)
	sig, err := c.UnblindBlindedSignature(ctx, claimTypes, blinded, info.InfoForUnblinding, bsig)
	require.NoError(t, err)

	direct, err := c.Sign(ctx, values, sd)
	require.NoError(t, err)
	assert.Equal(t, direct, sig)

	tampered := attrs.Pairs([]vcp.CredAttrIndex{1, 2})
	tampered[1].Value = vcp.Text("987-65-4321")
	_, err = c.UnblindBlindedSignature(ctx, claimTypes, tampered, info.InfoForUnblinding, bsig)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differ from the ones committed to")

	_, err = c.CreateBlindSigningInfo(ctx, &sd.SignerPublicData, attrs.Pairs([]vcp.CredAttrIndex{0}))
	require.Error(t, err)
}

func TestAccumulatorWitnesses(t *testing.T) {
	c, _ := start(t, "DNC")
	ctx := context.Background()

	created, err := c.CreateAccumulatorData(ctx)
	require.NoError(t, err)
	alice, err := c.CreateAccumulatorElement(ctx, "alice")
	require.NoError(t, err)
	bob, err := c.CreateAccumulatorElement(ctx, "bob")
	require.NoError(t, err)

	added, err := c.AccumulatorAddRemove(ctx, created.AccumulatorData, created.Accumulator,
		map[vcp.HolderID]vcp.AccumulatorElement{"aliceID": alice, "bobID": bob}, nil)
	require.NoError(t, err)
	require.Len(t, added.WitnessesForNew, 2)

	w, err := c.GetAccumulatorWitness(ctx, added.AccumulatorData, added.Accumulator, alice)
	require.NoError(t, err)
	assert.Equal(t, added.WitnessesForNew["aliceID"], w)

	_, err = c.GetAccumulatorWitness(ctx, created.AccumulatorData, created.Accumulator, alice)
	require.Error(t, err, "alice is not a member of the initial accumulator")

	removed, err := c.AccumulatorAddRemove(ctx, added.AccumulatorData, added.Accumulator, nil, []vcp.AccumulatorElement{bob})
	require.NoError(t, err)
	assert.Empty(t, removed.WitnessesForNew)

	updated, err := c.UpdateAccumulatorWitness(ctx, added.WitnessesForNew["aliceID"], alice, removed.WitnessUpdateInfo)
	require.NoError(t, err)
	fresh, err := c.GetAccumulatorWitness(ctx, removed.AccumulatorData, removed.Accumulator, alice)
	require.NoError(t, err)
	assert.Equal(t, fresh, updated)

	_, err = c.UpdateAccumulatorWitness(ctx, added.WitnessesForNew["bobID"], bob, removed.WitnessUpdateInfo)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "was removed")

	_, err = c.AccumulatorAddRemove(ctx, removed.AccumulatorData, removed.Accumulator,
		map[vcp.HolderID]vcp.AccumulatorElement{"again": alice}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already a member")
}

func TestVerifyDecryptionUnimplementedForAC2C(t *testing.T) {
	for _, ps := range []vcp.ProofSystem{vcp.AC2CBBS, vcp.AC2CPS} {
		t.Run(ps.Name, func(t *testing.T) {
			c, sim := start(t, ps.Name)
			_, err := c.VerifyDecryption(context.Background(), nil, nil, "proof", nil, vcp.DecryptResponses{}, "nonce")
			be, ok := vcp.AsBackendError(err)
			require.True(t, ok)
			assert.Equal(t, `General("specific_verify_decryption_ac2c : UNIMPLEMENTED")`, be.Reason)
			_, known := ps.KnownLimitation(vcp.OpVerifyDecryption, err)
			assert.True(t, known)
			assert.Equal(t, 1, sim.Calls(vcp.OpVerifyDecryption))
		})
	}
}

func TestRejectsUnknownProofSystem(t *testing.T) {
	server := httptest.NewServer(simulator.New().Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/vcp/createAccumulatorData?zkpLib=SNARK", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body backend.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, `UnknownZkpLib("SNARK")`, body.Reason)
	assert.Equal(t, vcp.OpCreateAccumulatorData, body.Location)

	resp2, err := http.Get(server.URL + "/vcp/sign?zkpLib=DNC")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

// proofFixture issues one credential and publishes what a proof over it
// needs.
type proofFixture struct {
	reqs   map[vcp.CredentialLabel]vcp.CredentialReqs
	shared map[vcp.SharedParamKey]vcp.SharedParamValue
	sigs   map[vcp.CredentialLabel]vcp.SignatureAndRelatedData
	auth   *vcp.AuthorityData
}

func newProofFixture(t *testing.T, c *backend.Client) *proofFixture {
	ctx := context.Background()
	sd, err := c.CreateSignerData(ctx, claimTypes, nil)
	require.NoError(t, err)
	sig, err := c.Sign(ctx, values, sd)
	require.NoError(t, err)
	auth, err := c.CreateAuthorityData(ctx)
	require.NoError(t, err)
	rpk, err := c.CreateRangeProofProvingKey(ctx)
	require.NoError(t, err)

	spd, err := json.Marshal(sd.SignerPublicData)
	require.NoError(t, err)
	return &proofFixture{
		reqs: map[vcp.CredentialLabel]vcp.CredentialReqs{
			"DL": {
				SignerLabel:  "dlSignerPublic",
				Disclosed:    []vcp.CredAttrIndex{0},
				InRange:      []vcp.InRangeInfo{{Index: 1, MinLabel: "min", MaxLabel: "max", RangeProvingKeyLabel: "rppk"}},
				EncryptedFor: []vcp.IndexAndLabel{{Index: 2, Label: "authorityPublic"}},
			},
		},
		shared: map[vcp.SharedParamKey]vcp.SharedParamValue{
			"dlSignerPublic":  vcp.One(vcp.Text(string(spd))),
			"min":             vcp.One(vcp.Int(37696)),
			"max":             vcp.One(vcp.Int(999999999)),
			"rppk":            vcp.OpaqueParam(string(rpk)),
			"authorityPublic": vcp.OpaqueParam(string(auth.AuthorityPublicData)),
		},
		sigs: map[vcp.CredentialLabel]vcp.SignatureAndRelatedData{
			"DL": *vcp.NewSignatureAndRelatedData(sig, values),
		},
		auth: auth,
	}
}

func TestProofRoundTrip(t *testing.T) {
	c, _ := start(t, "DNC")
	ctx := context.Background()
	f := newProofFixture(t, c)

	wdfv, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "nonce-1")
	require.NoError(t, err)
	assert.Empty(t, wdfv.Warnings)
	assert.Equal(t, map[vcp.CredAttrIndex]vcp.DataValue{0: vcp.Text("DriverLicense")}, wdfv.DataForVerifier.RevealedIdxsAndVals["DL"])

	key := vcp.DecryptKey{Credential: "DL", Index: 2, Authority: "authorityPublic"}
	requests := vcp.DecryptRequests{key: f.auth.DecryptRequest()}
	res, err := c.VerifyProof(ctx, f.reqs, f.shared, wdfv.DataForVerifier, requests, "nonce-1")
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.NoError(t, vcp.SameKeys(requests, res.DecryptResponses))
	assert.Equal(t, "123-45-6789", res.DecryptResponses[key].Value)

	keys, err := requests.DecryptionKeys()
	require.NoError(t, err)
	warnings, err := c.VerifyDecryption(ctx, f.reqs, f.shared, wdfv.DataForVerifier.Proof, keys, res.DecryptResponses, "nonce-1")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	forged := vcp.DecryptResponses{key: {Value: "000-00-0000", DecryptionProof: res.DecryptResponses[key].DecryptionProof}}
	_, err = c.VerifyDecryption(ctx, f.reqs, f.shared, wdfv.DataForVerifier.Proof, keys, forged, "nonce-1")
	require.Error(t, err)

	_, err = c.VerifyProof(ctx, f.reqs, f.shared, wdfv.DataForVerifier, vcp.DecryptRequests{}, "nonce-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonce mismatch")
}

func TestProofFailures(t *testing.T) {
	c, _ := start(t, "DNC")
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		f := newProofFixture(t, c)
		f.shared["min"] = vcp.One(vcp.Int(40000))
		_, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not in range")
	})

	t.Run("bad signature", func(t *testing.T) {
		f := newProofFixture(t, c)
		sard := f.sigs["DL"]
		sard.Values = []vcp.DataValue{vcp.Text("DriverLicense"), vcp.Int(1), vcp.Text("123-45-6789")}
		f.sigs["DL"] = sard
		_, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not verify")
	})

	t.Run("unresolved label", func(t *testing.T) {
		f := newProofFixture(t, c)
		delete(f.shared, "rppk")
		_, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "n")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "rppk not found"), err.Error())
	})

	t.Run("not in accumulator is unsupported", func(t *testing.T) {
		f := newProofFixture(t, c)
		dl := f.reqs["DL"]
		dl.NotInAccum = []vcp.IndexAndLabel{{Index: 0, Label: "acc"}}
		f.reqs["DL"] = dl
		wdfv, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "n")
		require.NoError(t, err)
		require.Len(t, wdfv.Warnings, 1)
		assert.Equal(t, "UnsupportedFeature", wdfv.Warnings[0].Tag)
	})
}

func TestUnequalValuesWarn(t *testing.T) {
	c, _ := start(t, "DNC")
	ctx := context.Background()
	f := newProofFixture(t, c)

	subTypes := []vcp.ClaimType{vcp.CTText, vcp.CTInt, vcp.CTEncryptableText}
	subValues := []vcp.DataValue{vcp.Text("MonthlySubscription"), vcp.Int(49997), vcp.Text("999-99-9999")}
	sd, err := c.Seeded(1).CreateSignerData(ctx, subTypes, nil)
	require.NoError(t, err)
	sig, err := c.Seeded(1).Sign(ctx, subValues, sd)
	require.NoError(t, err)
	spd, err := json.Marshal(sd.SignerPublicData)
	require.NoError(t, err)

	dl := f.reqs["DL"]
	dl.EqualTo = []vcp.EqInfo{{FromIndex: 2, ToLabel: "SUB", ToIndex: 2}}
	f.reqs["DL"] = dl
	f.reqs["SUB"] = vcp.CredentialReqs{
		SignerLabel: "subSignerPublic",
		EqualTo:     []vcp.EqInfo{{FromIndex: 2, ToLabel: "DL", ToIndex: 2}},
	}
	f.shared["subSignerPublic"] = vcp.One(vcp.Text(string(spd)))
	f.sigs["SUB"] = *vcp.NewSignatureAndRelatedData(sig, subValues)

	wdfv, err := c.CreateProof(ctx, f.reqs, f.shared, f.sigs, "n")
	require.NoError(t, err)
	require.Len(t, wdfv.Warnings, 2)
	assert.Contains(t, wdfv.Warnings[0].String(), "DL[2] == SUB[2] does not hold")
	assert.Contains(t, wdfv.Warnings[1].String(), "SUB[2] == DL[2] does not hold")
}

func TestStaleWitnessFailsProof(t *testing.T) {
	c, _ := start(t, "AC2C_PS")
	ctx := context.Background()

	memberTypes := []vcp.ClaimType{vcp.CTText, vcp.CTAccumulatorMember}
	memberValues := []vcp.DataValue{vcp.Text("Membership"), vcp.Text("alice")}
	sd, err := c.CreateSignerData(ctx, memberTypes, nil)
	require.NoError(t, err)
	sig, err := c.Sign(ctx, memberValues, sd)
	require.NoError(t, err)
	spd, err := json.Marshal(sd.SignerPublicData)
	require.NoError(t, err)
	mpk, err := c.CreateMembershipProvingKey(ctx)
	require.NoError(t, err)

	created, err := c.CreateAccumulatorData(ctx)
	require.NoError(t, err)
	alice, err := c.CreateAccumulatorElement(ctx, "alice")
	require.NoError(t, err)
	bob, err := c.CreateAccumulatorElement(ctx, "bob")
	require.NoError(t, err)
	first, err := c.AccumulatorAddRemove(ctx, created.AccumulatorData, created.Accumulator,
		map[vcp.HolderID]vcp.AccumulatorElement{"aliceID": alice}, nil)
	require.NoError(t, err)
	second, err := c.AccumulatorAddRemove(ctx, first.AccumulatorData, first.Accumulator,
		map[vcp.HolderID]vcp.AccumulatorElement{"bobID": bob}, nil)
	require.NoError(t, err)

	reqs := map[vcp.CredentialLabel]vcp.CredentialReqs{
		"M": {
			SignerLabel: "mSignerPublic",
			InAccum: []vcp.InAccumInfo{{
				Index:                      1,
				AccumulatorPublicDataLabel: "accPublic",
				MembershipProvingKeyLabel:  "mpk",
				AccumulatorLabel:           "acc",
				AccumulatorSeqNumLabel:     "seq",
			}},
		},
	}
	shared := map[vcp.SharedParamKey]vcp.SharedParamValue{
		"mSignerPublic": vcp.One(vcp.Text(string(spd))),
		"accPublic":     vcp.OpaqueParam(string(second.AccumulatorData.AccumulatorPublicData)),
		"mpk":           vcp.OpaqueParam(string(mpk)),
		"acc":           vcp.OpaqueParam(string(second.Accumulator)),
		"seq":           vcp.One(vcp.Int(2)),
	}
	prove := func(w vcp.AccumulatorMembershipWitness) error {
		sard := vcp.NewSignatureAndRelatedData(sig, memberValues)
		require.NoError(t, sard.AttachWitness(1, w))
		_, err := c.CreateProof(ctx, reqs, shared, map[vcp.CredentialLabel]vcp.SignatureAndRelatedData{"M": *sard}, "n")
		return err
	}

	err = prove(first.WitnessesForNew["aliceID"])
	require.Error(t, err)
	assert.True(t, vcp.IsBackendError(err))
	assert.Contains(t, err.Error(), "witness for sequence number 1 is stale, accumulator is at 2")

	updated, err := c.UpdateAccumulatorWitness(ctx, first.WitnessesForNew["aliceID"], alice, second.WitnessUpdateInfo)
	require.NoError(t, err)
	assert.NoError(t, prove(updated))
}
