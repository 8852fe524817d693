/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
)

type authPublic struct {
	ID string `json:"id"`
}

type authKey struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// ciphertext holds the plaintext in the clear.
type ciphertext struct {
	Credential     vcp.CredentialLabel `json:"credential"`
	Index          vcp.CredAttrIndex   `json:"index"`
	AuthorityLabel vcp.AuthorityLabel  `json:"authorityLabel"`
	AuthorityID    string              `json:"authorityId"`
	Value          string              `json:"value"`
}

type proofBody struct {
	System      string       `json:"system"`
	Nonce       string       `json:"nonce"`
	Reqs        string       `json:"reqs"`
	Shared      string       `json:"shared"`
	Revealed    string       `json:"revealed"`
	Ciphertexts []ciphertext `json:"ciphertexts"`
}

func (p *proofBody) ciphertext(k vcp.DecryptKey) (ciphertext, bool) {
	for _, ct := range p.Ciphertexts {
		if ct.Credential == k.Credential && ct.Index == k.Index && ct.AuthorityLabel == k.Authority {
			return ct, true
		}
	}
	return ciphertext{}, false
}

type decryptionProof struct {
	AuthorityID string              `json:"authorityId"`
	Credential  vcp.CredentialLabel `json:"credential"`
	Index       vcp.CredAttrIndex   `json:"index"`
	Plaintext   string              `json:"plaintext"`
	Nonce       string              `json:"nonce"`
}

type sharedParams map[vcp.SharedParamKey]vcp.SharedParamValue

func (p sharedParams) lookup(label vcp.SharedParamKey) (vcp.SharedParamValue, error) {
	v, ok := p[label]
	if !ok {
		return vcp.SharedParamValue{}, general("shared parameter %s not found", label)
	}
	return v, nil
}

func (p sharedParams) opaque(label vcp.SharedParamKey, kind string, v interface{}) error {
	spv, err := p.lookup(label)
	if err != nil {
		return err
	}
	raw, ok := spv.Opaque()
	if !ok {
		return general("shared parameter %s is not quoted text", label)
	}
	return unseal(kind, raw, v)
}

func (p sharedParams) integer(label vcp.SharedParamKey) (uint64, error) {
	spv, err := p.lookup(label)
	if err != nil {
		return 0, err
	}
	v, ok := spv.One()
	if !ok {
		return 0, general("shared parameter %s is not a single value", label)
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, general("shared parameter %s is not an integer", label)
	}
	return i, nil
}

func (p sharedParams) signerPublicData(label vcp.SharedParamKey) (*vcp.SignerPublicData, string, error) {
	spv, err := p.lookup(label)
	if err != nil {
		return nil, "", err
	}
	v, ok := spv.One()
	if !ok {
		return nil, "", general("shared parameter %s is not a single value", label)
	}
	text, ok := v.AsText()
	if !ok {
		return nil, "", general("shared parameter %s is not text", label)
	}
	spd := &vcp.SignerPublicData{}
	if err := json.Unmarshal([]byte(text), spd); err != nil {
		return nil, "", general("shared parameter %s is not signer public data: %s", label, err)
	}
	var pub signerPublic
	if err := unseal(kindSignerPublic, string(spd.SignerPublicSetupData), &pub); err != nil {
		return nil, "", err
	}
	return spd, pub.ID, nil
}

func sortedLabels(reqs map[vcp.CredentialLabel]vcp.CredentialReqs) []vcp.CredentialLabel {
	labels := make([]vcp.CredentialLabel, 0, len(reqs))
	for l := range reqs {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

func attribute(label vcp.CredentialLabel, values []vcp.DataValue, idx vcp.CredAttrIndex) (vcp.DataValue, error) {
	if idx >= uint64(len(values)) {
		return vcp.DataValue{}, general("index %d out of range for %s with %d attributes", idx, label, len(values))
	}
	return values[idx], nil
}

func (s *Simulator) createAuthorityData(r *request) (interface{}, error) {
	id := digest("authority", seedString(r))
	key := authKey{ID: id, Key: digest("authority-key", id)}
	return &vcp.AuthorityData{
		AuthorityPublicData:    vcp.AuthorityPublicData(seal(kindAuthPublic, authPublic{ID: id})),
		AuthoritySecretData:    vcp.AuthoritySecretData(seal(kindAuthSecret, key)),
		AuthorityDecryptionKey: vcp.AuthorityDecryptionKey(seal(kindDecryptionKey, key)),
	}, nil
}

func (s *Simulator) createProof(r *request) (interface{}, error) {
	var in backend.CreateProofRequest
	if err := r.decode(vcp.OpCreateProof, &in); err != nil {
		return nil, err
	}
	shared := sharedParams(in.SharedParams)
	warnings := []vcp.Warning{}
	revealed := map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue{}
	cts := []ciphertext{}

	for _, label := range sortedLabels(in.ProofReqs) {
		reqs := in.ProofReqs[label]
		sard, ok := in.SigsAndRelatedData[label]
		if !ok {
			return nil, general("no signature for credential %s", label)
		}
		spd, signerID, err := shared.signerPublicData(reqs.SignerLabel)
		if err != nil {
			return nil, err
		}
		if err := checkValues(spd.SignerPublicSchema, sard.Values); err != nil {
			return nil, err
		}
		if sard.Signature != signatureOf(signerID, sard.Values) {
			return nil, general("signature of %s does not verify", label)
		}

		encrypted := map[vcp.CredAttrIndex]bool{}
		for _, ef := range reqs.EncryptedFor {
			encrypted[ef.Index] = true
		}

		revealed[label] = map[vcp.CredAttrIndex]vcp.DataValue{}
		for _, idx := range reqs.Disclosed {
			v, err := attribute(label, sard.Values, idx)
			if err != nil {
				return nil, err
			}
			revealed[label][idx] = v
			if encrypted[idx] {
				warnings = append(warnings, vcp.RevealPrivacyWarning(label, idx, "attribute is revealed and also encrypted"))
			}
		}

		for _, ia := range reqs.InAccum {
			if err := checkMembership(shared, label, &sard, ia, r.system.Name); err != nil {
				return nil, err
			}
		}

		for _, nia := range reqs.NotInAccum {
			warnings = append(warnings, vcp.UnsupportedFeature(fmt.Sprintf("notInAccum for %s[%d]", label, nia.Index)))
		}

		for _, ir := range reqs.InRange {
			if err := checkRange(shared, label, sard.Values, ir); err != nil {
				return nil, err
			}
		}

		for _, eq := range reqs.EqualTo {
			v, err := attribute(label, sard.Values, eq.FromIndex)
			if err != nil {
				return nil, err
			}
			other, ok := in.SigsAndRelatedData[eq.ToLabel]
			if !ok {
				return nil, general("equality target %s is not part of the proof", eq.ToLabel)
			}
			w, err := attribute(eq.ToLabel, other.Values, eq.ToIndex)
			if err != nil {
				return nil, err
			}
			if v != w {
				warnings = append(warnings, vcp.UnsupportedFeature(fmt.Sprintf("equality %s[%d] == %s[%d] does not hold", label, eq.FromIndex, eq.ToLabel, eq.ToIndex)))
			}
		}

		for _, ef := range reqs.EncryptedFor {
			v, err := attribute(label, sard.Values, ef.Index)
			if err != nil {
				return nil, err
			}
			var auth authPublic
			if err := shared.opaque(ef.Label, kindAuthPublic, &auth); err != nil {
				return nil, err
			}
			cts = append(cts, ciphertext{
				Credential:     label,
				Index:          ef.Index,
				AuthorityLabel: ef.Label,
				AuthorityID:    auth.ID,
				Value:          v.Plain(),
			})
		}
	}

	proof := seal(kindProof, proofBody{
		System:      r.system.Name,
		Nonce:       in.Nonce,
		Reqs:        digestJSON("reqs", in.ProofReqs),
		Shared:      digestJSON("shared", in.SharedParams),
		Revealed:    digestJSON("revealed", revealed),
		Ciphertexts: cts,
	})
	return &vcp.WarningsAndDataForVerifier{
		Warnings: warnings,
		DataForVerifier: vcp.DataForVerifier{
			RevealedIdxsAndVals: revealed,
			Proof:               vcp.Proof(proof),
		},
	}, nil
}

func checkMembership(shared sharedParams, label vcp.CredentialLabel, sard *vcp.SignatureAndRelatedData, ia vcp.InAccumInfo, system string) error {
	v, err := attribute(label, sard.Values, ia.Index)
	if err != nil {
		return err
	}
	text, ok := v.AsText()
	if !ok {
		return general("%s[%d] is not text and cannot be an accumulator member", label, ia.Index)
	}
	w, ok := sard.AccumulatorWitnesses[ia.Index]
	if !ok {
		return general("no accumulator witness for %s[%d]", label, ia.Index)
	}
	var acc accValue
	if err := shared.opaque(ia.AccumulatorLabel, kindAccumulator, &acc); err != nil {
		return err
	}
	var pub accPublic
	if err := shared.opaque(ia.AccumulatorPublicDataLabel, kindAccPublic, &pub); err != nil {
		return err
	}
	if pub.ID != acc.ID {
		return general("accumulator %s does not match public data %s", ia.AccumulatorLabel, ia.AccumulatorPublicDataLabel)
	}
	var pk provingKey
	if err := shared.opaque(ia.MembershipProvingKeyLabel, kindMembershipKey, &pk); err != nil {
		return err
	}
	if pk.System != system {
		return general("membership proving key %s was created for %s", ia.MembershipProvingKeyLabel, pk.System)
	}
	seq, err := shared.integer(ia.AccumulatorSeqNumLabel)
	if err != nil {
		return err
	}
	if seq != acc.SeqNum {
		return general("sequence number %d does not match accumulator at %d", seq, acc.SeqNum)
	}
	return checkWitness(&acc, elementOf(text), w)
}

func checkRange(shared sharedParams, label vcp.CredentialLabel, values []vcp.DataValue, ir vcp.InRangeInfo) error {
	v, err := attribute(label, values, ir.Index)
	if err != nil {
		return err
	}
	n, ok := v.AsInt()
	if !ok {
		return general("%s[%d] is not an integer", label, ir.Index)
	}
	lo, err := shared.integer(ir.MinLabel)
	if err != nil {
		return err
	}
	hi, err := shared.integer(ir.MaxLabel)
	if err != nil {
		return err
	}
	var pk provingKey
	if err := shared.opaque(ir.RangeProvingKeyLabel, kindRangeKey, &pk); err != nil {
		return err
	}
	if hi > RangeProofMaxValue {
		return general("range bound %d exceeds the maximum %d", hi, RangeProofMaxValue)
	}
	if n < lo || n > hi {
		return general("%s[%d] is not in range [%d, %d]", label, ir.Index, lo, hi)
	}
	return nil
}

func (s *Simulator) openProof(system, nonce string, proof vcp.Proof, reqs map[vcp.CredentialLabel]vcp.CredentialReqs, shared map[vcp.SharedParamKey]vcp.SharedParamValue) (*proofBody, error) {
	body := &proofBody{}
	if err := unseal(kindProof, string(proof), body); err != nil {
		return nil, err
	}
	switch {
	case body.System != system:
		return nil, general("proof was created with %s", body.System)
	case body.Nonce != nonce:
		return nil, general("proof does not verify: nonce mismatch")
	case body.Reqs != digestJSON("reqs", reqs):
		return nil, general("proof does not verify: proof requirements differ")
	case body.Shared != digestJSON("shared", shared):
		return nil, general("proof does not verify: shared parameters differ")
	}
	return body, nil
}

func (s *Simulator) verifyProof(r *request) (interface{}, error) {
	var in backend.VerifyProofRequest
	if err := r.decode(vcp.OpVerifyProof, &in); err != nil {
		return nil, err
	}
	body, err := s.openProof(r.system.Name, in.Nonce, in.DataForVerifier.Proof, in.ProofReqs, in.SharedParams)
	if err != nil {
		return nil, err
	}
	revealed := in.DataForVerifier.RevealedIdxsAndVals
	if revealed == nil {
		revealed = map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue{}
	}
	if body.Revealed != digestJSON("revealed", revealed) {
		return nil, general("proof does not verify: revealed values differ")
	}

	responses := vcp.DecryptResponses{}
	for key, req := range in.DecryptRequests.Flatten() {
		ct, ok := body.ciphertext(key)
		if !ok {
			return nil, general("nothing was encrypted for %s", key)
		}
		var sec, dk authKey
		if err := unseal(kindAuthSecret, string(req.AuthoritySecretData), &sec); err != nil {
			return nil, err
		}
		if err := unseal(kindDecryptionKey, string(req.AuthorityDecryptionKey), &dk); err != nil {
			return nil, err
		}
		if sec.ID != ct.AuthorityID || dk.ID != ct.AuthorityID || sec.Key != dk.Key {
			return nil, general("decryption material for %s does not belong to the authority", key)
		}
		responses[key] = vcp.DecryptResponse{
			Value: ct.Value,
			DecryptionProof: vcp.DecryptionProof(seal(kindDecryptProof, decryptionProof{
				AuthorityID: ct.AuthorityID,
				Credential:  key.Credential,
				Index:       key.Index,
				Plaintext:   digest("plaintext", ct.Value),
				Nonce:       in.Nonce,
			})),
		}
	}

	return &backend.VerifyProofResponse{
		Warnings:         []vcp.Warning{},
		DecryptResponses: responses.Nest(),
	}, nil
}

func (s *Simulator) verifyDecryption(r *request) (interface{}, error) {
	if strings.HasPrefix(r.system.Name, "AC2C") {
		return nil, general("specific_verify_decryption_ac2c : UNIMPLEMENTED")
	}
	var in backend.VerifyDecryptionRequest
	if err := r.decode(vcp.OpVerifyDecryption, &in); err != nil {
		return nil, err
	}
	body, err := s.openProof(r.system.Name, in.Nonce, in.Proof, in.ProofReqs, in.SharedParams)
	if err != nil {
		return nil, err
	}

	for key, resp := range in.DecryptResponses.Flatten() {
		quoted, ok := in.DecryptionKeys[key.Authority]
		if !ok {
			return nil, general("no decryption key for authority %s", key.Authority)
		}
		var raw string
		if err := json.Unmarshal([]byte(quoted), &raw); err != nil {
			return nil, general("decryption key for %s is not quoted: %s", key.Authority, err)
		}
		var dk authKey
		if err := unseal(kindDecryptionKey, raw, &dk); err != nil {
			return nil, err
		}
		var dp decryptionProof
		if err := unseal(kindDecryptProof, string(resp.DecryptionProof), &dp); err != nil {
			return nil, err
		}
		ct, ok := body.ciphertext(key)
		if !ok || ct.AuthorityID != dk.ID || dp.AuthorityID != dk.ID ||
			dp.Credential != key.Credential || dp.Index != key.Index ||
			dp.Plaintext != digest("plaintext", resp.Value) || dp.Nonce != in.Nonce {
			return nil, general("decryption proof for %s does not verify", key)
		}
	}
	return []vcp.Warning{}, nil
}
