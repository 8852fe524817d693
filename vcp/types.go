/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vcp holds the data model shared by the issuer, holder, verifier,
// revocation manager and authority roles of the verifiable credential proof
// protocol. Cryptographic material is opaque to this module: it is produced
// and consumed by the proof backend and only moved around here.
package vcp

import (
	"encoding/json"
)

// ClaimType is the per-attribute type fixed when signer data is created.
type ClaimType string

const (
	CTText              ClaimType = "CTText"
	CTInt               ClaimType = "CTInt"
	CTEncryptableText   ClaimType = "CTEncryptableText"
	CTAccumulatorMember ClaimType = "CTAccumulatorMember"
)

// Accepts reports whether a value has the representation the claim type
// requires. Integer claims take Int values; every other claim type takes Text.
func (c ClaimType) Accepts(v DataValue) bool {
	switch c {
	case CTInt:
		return v.IsInt()
	case CTText, CTEncryptableText, CTAccumulatorMember:
		return v.IsText()
	default:
		return false
	}
}

// Valid reports whether c is one of the known claim types.
func (c ClaimType) Valid() bool {
	switch c {
	case CTText, CTInt, CTEncryptableText, CTAccumulatorMember:
		return true
	}
	return false
}

type (
	// CredAttrIndex is a zero based attribute position within a credential.
	CredAttrIndex = uint64
	// CredentialLabel names a credential within one proof.
	CredentialLabel = string
	// SharedParamKey names an entry of the shared parameter registry.
	SharedParamKey = string
	// AuthorityLabel names a decryption authority in the registry.
	AuthorityLabel = string
	// HolderID is the ephemeral name used to route a fresh witness to its holder.
	HolderID = string
)

// Opaque protocol material. Values are produced by the proof backend and never
// interpreted here.
type (
	SignerPublicSetupData        string
	SignerSecretData             string
	Signature                    string
	BlindSignature               string
	BlindInfoForSigner           string
	InfoForUnblinding            string
	Accumulator                  string
	AccumulatorPublicData        string
	AccumulatorSecretData        string
	AccumulatorElement           string
	AccumulatorMembershipWitness string
	AccumulatorWitnessUpdateInfo string
	MembershipProvingKey         string
	RangeProofProvingKey         string
	AuthorityPublicData          string
	AuthoritySecretData          string
	AuthorityDecryptionKey       string
	Proof                        string
	DecryptionProof              string
)

// SignerPublicData is the part of the signer data that is published to
// holders and verifiers.
type SignerPublicData struct {
	SignerPublicSetupData SignerPublicSetupData `json:"signerPublicSetupData"`
	SignerPublicSchema    []ClaimType           `json:"signerPublicSchema"`
	SignerBlindedAttrIdxs []CredAttrIndex       `json:"signerBlindedAttrIdxs,omitempty"`
}

// SchemaLen is the number of attributes of credentials signed with this data.
func (s *SignerPublicData) SchemaLen() int { return len(s.SignerPublicSchema) }

// SignerData is the full signer key material. SignerSecretData stays with the
// issuer.
type SignerData struct {
	SignerPublicData SignerPublicData `json:"signerPublicData"`
	SignerSecretData SignerSecretData `json:"signerSecretData"`
}

// CredAttrIndexAndDataValue pairs an attribute position with its value.
type CredAttrIndexAndDataValue struct {
	Index CredAttrIndex `json:"index"`
	Value DataValue     `json:"value"`
}

// BlindSigningInfo is created by the holder for exactly one blind signing.
// BlindInfoForSigner goes to the signer; InfoForUnblinding stays with the
// holder.
type BlindSigningInfo struct {
	BlindInfoForSigner BlindInfoForSigner `json:"blindInfoForSigner"`
	InfoForUnblinding  InfoForUnblinding  `json:"infoForUnblinding"`
}

// AccumulatorData is the key material of one accumulator.
type AccumulatorData struct {
	AccumulatorPublicData AccumulatorPublicData `json:"accumulatorPublicData"`
	AccumulatorSecretData AccumulatorSecretData `json:"accumulatorSecretData"`
}

type CreateAccumulatorResponse struct {
	AccumulatorData AccumulatorData `json:"accumulatorData"`
	Accumulator     Accumulator     `json:"accumulator"`
}

type AccumulatorAddRemoveResponse struct {
	WitnessUpdateInfo AccumulatorWitnessUpdateInfo              `json:"witnessUpdateInfo"`
	WitnessesForNew   map[HolderID]AccumulatorMembershipWitness `json:"witnessesForNew"`
	AccumulatorData   AccumulatorData                           `json:"accumulatorData"`
	Accumulator       Accumulator                               `json:"accumulator"`
}

// AuthorityData is the key material of a decryption authority.
type AuthorityData struct {
	AuthorityPublicData    AuthorityPublicData    `json:"authorityPublicData"`
	AuthoritySecretData    AuthoritySecretData    `json:"authoritySecretData"`
	AuthorityDecryptionKey AuthorityDecryptionKey `json:"authorityDecryptionKey"`
}

// DecryptRequest returns the material an authority hands to the verifier to
// decrypt one encrypted attribute.
func (a *AuthorityData) DecryptRequest() DecryptRequest {
	return DecryptRequest{
		AuthoritySecretData:    a.AuthoritySecretData,
		AuthorityDecryptionKey: a.AuthorityDecryptionKey,
	}
}

type DecryptRequest struct {
	AuthoritySecretData    AuthoritySecretData    `json:"authoritySecretData"`
	AuthorityDecryptionKey AuthorityDecryptionKey `json:"authorityDecryptionKey"`
}

type DecryptResponse struct {
	Value           string          `json:"value"`
	DecryptionProof DecryptionProof `json:"decryptionProof"`
}

// DataForVerifier is what the holder hands to the verifier.
type DataForVerifier struct {
	RevealedIdxsAndVals map[CredentialLabel]map[CredAttrIndex]DataValue `json:"revealedIdxsAndVals"`
	Proof               Proof                                           `json:"proof"`
}

func (d DataForVerifier) MarshalJSON() ([]byte, error) {
	type plain DataForVerifier
	p := plain(d)
	if p.RevealedIdxsAndVals == nil {
		p.RevealedIdxsAndVals = map[CredentialLabel]map[CredAttrIndex]DataValue{}
	}
	return json.Marshal(p)
}

// WarningsAndDataForVerifier is the result of proof creation.
type WarningsAndDataForVerifier struct {
	Warnings        []Warning       `json:"warnings"`
	DataForVerifier DataForVerifier `json:"dataForVerifier"`
}

// WarningsAndDecryptResponses is the result of proof verification.
type WarningsAndDecryptResponses struct {
	Warnings         []Warning
	DecryptResponses DecryptResponses
}
