/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package backend

import (
	"github.com/hyperledger/fabric-vcp/vcp"
)

// Request bodies of the backend REST API.

type CreateSignerDataRequest struct {
	ClaimTypes              []vcp.ClaimType     `json:"claimTypes"`
	BlindedAttributeIndices []vcp.CredAttrIndex `json:"blindedAttributeIndices"`
}

type SignRequest struct {
	Values     []vcp.DataValue `json:"values"`
	SignerData vcp.SignerData  `json:"signerData"`
}

type CreateBlindSigningInfoRequest struct {
	SignerPublicData        vcp.SignerPublicData            `json:"signerPublicData"`
	BlindedIndicesAndValues []vcp.CredAttrIndexAndDataValue `json:"blindedIndicesAndValues"`
}

type SignWithBlindedAttributesRequest struct {
	SignerData           vcp.SignerData                  `json:"signerData"`
	BlindInfoForSigner   vcp.BlindInfoForSigner          `json:"blindInfoForSigner"`
	NonBlindedAttributes []vcp.CredAttrIndexAndDataValue `json:"nonBlindedAttributes"`
}

type UnblindBlindedSignatureRequest struct {
	ClaimTypes              []vcp.ClaimType                 `json:"claimTypes"`
	BlindedIndicesAndValues []vcp.CredAttrIndexAndDataValue `json:"blindedIndicesAndValues"`
	InfoForUnblinding       vcp.InfoForUnblinding           `json:"infoForUnblinding"`
	BlindSignature          vcp.BlindSignature              `json:"blindSignature"`
}

type AccumulatorAddRemoveRequest struct {
	AccumulatorData vcp.AccumulatorData                     `json:"accumulatorData"`
	Accumulator     vcp.Accumulator                         `json:"accumulator"`
	Additions       map[vcp.HolderID]vcp.AccumulatorElement `json:"additions"`
	Removals        []vcp.AccumulatorElement                `json:"removals"`
}

type GetAccumulatorWitnessRequest struct {
	AccumulatorData    vcp.AccumulatorData    `json:"accumulatorData"`
	Accumulator        vcp.Accumulator        `json:"accumulator"`
	AccumulatorElement vcp.AccumulatorElement `json:"accumulatorElement"`
}

type UpdateAccumulatorWitnessRequest struct {
	Witness           vcp.AccumulatorMembershipWitness `json:"witness"`
	Element           vcp.AccumulatorElement           `json:"element"`
	WitnessUpdateInfo vcp.AccumulatorWitnessUpdateInfo `json:"witnessUpdateInfo"`
}

type CreateProofRequest struct {
	ProofReqs          map[vcp.CredentialLabel]vcp.CredentialReqs          `json:"proofReqs"`
	SharedParams       map[vcp.SharedParamKey]vcp.SharedParamValue         `json:"sharedParams"`
	SigsAndRelatedData map[vcp.CredentialLabel]vcp.SignatureAndRelatedData `json:"sigsAndRelatedData"`
	Nonce              string                                              `json:"nonce"`
}

type VerifyProofRequest struct {
	ProofReqs       map[vcp.CredentialLabel]vcp.CredentialReqs  `json:"proofReqs"`
	SharedParams    map[vcp.SharedParamKey]vcp.SharedParamValue `json:"sharedParams"`
	DataForVerifier vcp.DataForVerifier                         `json:"dataForVerifier"`
	DecryptRequests vcp.Nested[vcp.DecryptRequest]              `json:"decryptRequests"`
	Nonce           string                                      `json:"nonce"`
}

type VerifyProofResponse struct {
	Warnings         []vcp.Warning                   `json:"warnings"`
	DecryptResponses vcp.Nested[vcp.DecryptResponse] `json:"decryptResponses"`
}

type VerifyDecryptionRequest struct {
	ProofReqs        map[vcp.CredentialLabel]vcp.CredentialReqs  `json:"proofReqs"`
	SharedParams     map[vcp.SharedParamKey]vcp.SharedParamValue `json:"sharedParams"`
	Proof            vcp.Proof                                   `json:"proof"`
	DecryptionKeys   map[vcp.AuthorityLabel]string               `json:"decryptionKeys"`
	DecryptResponses vcp.Nested[vcp.DecryptResponse]             `json:"decryptResponses"`
	Nonce            string                                      `json:"nonce"`
}

// ErrorBody is the body of every non-2xx backend response.
type ErrorBody struct {
	Reason   string `json:"reason"`
	Location string `json:"location"`
}
