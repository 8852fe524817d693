/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"strconv"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
)

type signerSecret struct {
	ID     string          `json:"id"`
	Schema []vcp.ClaimType `json:"schema"`
}

type signerPublic struct {
	ID string `json:"id"`
}

type blindInfo struct {
	SignerID string                          `json:"signerId"`
	Commit   string                          `json:"commit"`
	Blinded  []vcp.CredAttrIndexAndDataValue `json:"blinded"`
}

type unblindInfo struct {
	SignerID string `json:"signerId"`
	Nonce    string `json:"nonce"`
	Commit   string `json:"commit"`
}

type blindSignature struct {
	Commit    string `json:"commit"`
	Signature string `json:"signature"`
}

func seedString(r *request) string {
	return r.system.Name + "/" + strconv.FormatUint(r.seed, 10)
}

func signatureOf(signerID string, values []vcp.DataValue) vcp.Signature {
	return vcp.Signature(digest("signature", signerID, digestJSON("values", values)))
}

func checkValues(schema []vcp.ClaimType, values []vcp.DataValue) error {
	if len(values) != len(schema) {
		return general("expected %d values for the signer schema, got %d", len(schema), len(values))
	}
	for i, v := range values {
		if !schema[i].Accepts(v) {
			return general("value %s at index %d does not fit claim type %s", v, i, schema[i])
		}
	}
	return nil
}

// openSignerData checks that the secret belongs to the public part.
func openSignerData(sd *vcp.SignerData) (*signerSecret, error) {
	var pub signerPublic
	if err := unseal(kindSignerPublic, string(sd.SignerPublicData.SignerPublicSetupData), &pub); err != nil {
		return nil, err
	}
	sec := &signerSecret{}
	if err := unseal(kindSignerSecret, string(sd.SignerSecretData), sec); err != nil {
		return nil, err
	}
	if sec.ID != pub.ID {
		return nil, general("signer secret data does not match signer public data")
	}
	return sec, nil
}

func (s *Simulator) createSignerData(r *request) (interface{}, error) {
	var in backend.CreateSignerDataRequest
	if err := r.decode(vcp.OpCreateSignerData, &in); err != nil {
		return nil, err
	}
	if len(in.ClaimTypes) == 0 {
		return nil, general("no claim types given")
	}
	for _, ct := range in.ClaimTypes {
		if !ct.Valid() {
			return nil, general("unknown claim type %s", ct)
		}
	}
	for _, idx := range in.BlindedAttributeIndices {
		if idx >= uint64(len(in.ClaimTypes)) {
			return nil, general("blinded attribute index %d out of range", idx)
		}
	}

	id := digest("signer", seedString(r), digestJSON("schema", in.ClaimTypes), digestJSON("blinded", in.BlindedAttributeIndices))
	return &vcp.SignerData{
		SignerPublicData: vcp.SignerPublicData{
			SignerPublicSetupData: vcp.SignerPublicSetupData(seal(kindSignerPublic, signerPublic{ID: id})),
			SignerPublicSchema:    in.ClaimTypes,
			SignerBlindedAttrIdxs: in.BlindedAttributeIndices,
		},
		SignerSecretData: vcp.SignerSecretData(seal(kindSignerSecret, signerSecret{ID: id, Schema: in.ClaimTypes})),
	}, nil
}

func (s *Simulator) sign(r *request) (interface{}, error) {
	var in backend.SignRequest
	if err := r.decode(vcp.OpSign, &in); err != nil {
		return nil, err
	}
	sec, err := openSignerData(&in.SignerData)
	if err != nil {
		return nil, err
	}
	if err := checkValues(sec.Schema, in.Values); err != nil {
		return nil, err
	}
	return signatureOf(sec.ID, in.Values), nil
}

func blindCommit(signerID, nonce string, blinded []vcp.CredAttrIndexAndDataValue) string {
	return digest("commit", signerID, nonce, digestJSON("blinded", blinded))
}

func (s *Simulator) createBlindSigningInfo(r *request) (interface{}, error) {
	var in backend.CreateBlindSigningInfoRequest
	if err := r.decode(vcp.OpCreateBlindSigningInfo, &in); err != nil {
		return nil, err
	}
	var pub signerPublic
	if err := unseal(kindSignerPublic, string(in.SignerPublicData.SignerPublicSetupData), &pub); err != nil {
		return nil, err
	}
	expected := map[vcp.CredAttrIndex]bool{}
	for _, idx := range in.SignerPublicData.SignerBlindedAttrIdxs {
		expected[idx] = true
	}
	if len(in.BlindedIndicesAndValues) != len(expected) {
		return nil, general("expected %d blinded attributes, got %d", len(expected), len(in.BlindedIndicesAndValues))
	}
	schema := in.SignerPublicData.SignerPublicSchema
	for _, iv := range in.BlindedIndicesAndValues {
		if !expected[iv.Index] || iv.Index >= uint64(len(schema)) {
			return nil, general("attribute %d is not blinded by this signer", iv.Index)
		}
		if !schema[iv.Index].Accepts(iv.Value) {
			return nil, general("value %s at index %d does not fit claim type %s", iv.Value, iv.Index, schema[iv.Index])
		}
	}

	nonce := digest("blinding", seedString(r), pub.ID)
	commit := blindCommit(pub.ID, nonce, in.BlindedIndicesAndValues)
	return &vcp.BlindSigningInfo{
		BlindInfoForSigner: vcp.BlindInfoForSigner(seal(kindBlindInfo, blindInfo{
			SignerID: pub.ID,
			Commit:   commit,
			Blinded:  in.BlindedIndicesAndValues,
		})),
		InfoForUnblinding: vcp.InfoForUnblinding(seal(kindUnblindInfo, unblindInfo{
			SignerID: pub.ID,
			Nonce:    nonce,
			Commit:   commit,
		})),
	}, nil
}

func (s *Simulator) signWithBlindedAttributes(r *request) (interface{}, error) {
	var in backend.SignWithBlindedAttributesRequest
	if err := r.decode(vcp.OpSignWithBlindedAttributes, &in); err != nil {
		return nil, err
	}
	sec, err := openSignerData(&in.SignerData)
	if err != nil {
		return nil, err
	}
	var info blindInfo
	if err := unseal(kindBlindInfo, string(in.BlindInfoForSigner), &info); err != nil {
		return nil, err
	}
	if info.SignerID != sec.ID {
		return nil, general("blind signing info was created for another signer")
	}

	values := make([]vcp.DataValue, len(sec.Schema))
	for _, group := range [][]vcp.CredAttrIndexAndDataValue{info.Blinded, in.NonBlindedAttributes} {
		for _, iv := range group {
			if iv.Index >= uint64(len(values)) {
				return nil, general("attribute index %d out of range", iv.Index)
			}
			if values[iv.Index].Valid() {
				return nil, general("attribute %d given more than once", iv.Index)
			}
			values[iv.Index] = iv.Value
		}
	}
	for i, v := range values {
		if !v.Valid() {
			return nil, general("attribute %d is missing", i)
		}
	}
	if err := checkValues(sec.Schema, values); err != nil {
		return nil, err
	}

	return vcp.BlindSignature(seal(kindBlindSignature, blindSignature{
		Commit:    info.Commit,
		Signature: string(signatureOf(sec.ID, values)),
	})), nil
}

func (s *Simulator) unblindBlindedSignature(r *request) (interface{}, error) {
	var in backend.UnblindBlindedSignatureRequest
	if err := r.decode(vcp.OpUnblindBlindedSignature, &in); err != nil {
		return nil, err
	}
	var info unblindInfo
	if err := unseal(kindUnblindInfo, string(in.InfoForUnblinding), &info); err != nil {
		return nil, err
	}
	var sig blindSignature
	if err := unseal(kindBlindSignature, string(in.BlindSignature), &sig); err != nil {
		return nil, err
	}
	if sig.Commit != info.Commit {
		return nil, general("blind signature does not belong to this unblinding info")
	}
	if blindCommit(info.SignerID, info.Nonce, in.BlindedIndicesAndValues) != info.Commit {
		return nil, general("blinded attributes differ from the ones committed to")
	}
	return vcp.Signature(sig.Signature), nil
}
