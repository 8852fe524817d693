/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier_test

import (
	"context"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/hyperledger/fabric-vcp/vcp/sharedparams"
	"github.com/hyperledger/fabric-vcp/vcp/verifier"
	"github.com/hyperledger/fabric-vcp/vcp/verifier/mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Orchestrator", func() {
	var (
		ctx          context.Context
		fakeBackend  *mock.Backend
		orchestrator *verifier.Orchestrator
		registry     *sharedparams.Registry
		reqs         requirements.Requirements
		dfv          vcp.DataForVerifier
		key          vcp.DecryptKey
		requests     vcp.DecryptRequests
		responses    vcp.DecryptResponses
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeBackend = &mock.Backend{}
		orchestrator = verifier.New(fakeBackend, vcp.DNC)

		registry = sharedparams.New()
		Expect(registry.PutSignerPublicData("dlSignerPublic", &vcp.SignerPublicData{
			SignerPublicSetupData: "setup",
			SignerPublicSchema:    []vcp.ClaimType{vcp.CTText, vcp.CTInt, vcp.CTEncryptableText},
		})).To(Succeed())
		Expect(registry.PutAuthorityPublicData("authorityPublic", "apub")).To(Succeed())

		var err error
		reqs, err = requirements.NewBuilder().
			Credential("DL", "dlSignerPublic").
			Disclose("DL", 0).
			EncryptFor("DL", 2, "authorityPublic").
			Build()
		Expect(err).NotTo(HaveOccurred())

		dfv = vcp.DataForVerifier{
			RevealedIdxsAndVals: map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue{
				"DL": {0: vcp.Text("DriverLicense")},
			},
			Proof: "proof",
		}
		key = vcp.DecryptKey{Credential: "DL", Index: 2, Authority: "authorityPublic"}
		requests = vcp.DecryptRequests{key: {AuthoritySecretData: "asec", AuthorityDecryptionKey: "adk"}}
		responses = vcp.DecryptResponses{key: {Value: "123-45-6789", DecryptionProof: "dproof"}}

		fakeBackend.VerifyProofReturns(&vcp.WarningsAndDecryptResponses{DecryptResponses: responses}, nil)
		fakeBackend.VerifyDecryptionReturns([]vcp.Warning{}, nil)
	})

	It("verifies a proof without decrypt requests", func() {
		fakeBackend.VerifyProofReturns(&vcp.WarningsAndDecryptResponses{}, nil)

		result, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, nil, "nonce")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Decryption).To(BeNil())
		Expect(fakeBackend.VerifyDecryptionCallCount()).To(Equal(0))
	})

	It("verifies decryptions with the keys from the requests", func() {
		result, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Decryption).To(Equal(&verifier.DecryptionOutcome{Kind: verifier.Verified}))

		v, ok := result.Value(key)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("123-45-6789"))

		_, _, _, sentDfv, sentRequests, nonce := fakeBackend.VerifyProofArgsForCall(0)
		Expect(sentDfv).To(Equal(dfv))
		Expect(sentRequests).To(Equal(requests))
		Expect(nonce).To(Equal("nonce"))

		Expect(fakeBackend.VerifyDecryptionCallCount()).To(Equal(1))
		_, _, _, proof, keys, sentResponses, nonce := fakeBackend.VerifyDecryptionArgsForCall(0)
		Expect(proof).To(Equal(vcp.Proof("proof")))
		Expect(keys).To(Equal(map[vcp.AuthorityLabel]vcp.AuthorityDecryptionKey{"authorityPublic": "adk"}))
		Expect(sentResponses).To(Equal(responses))
		Expect(nonce).To(Equal("nonce"))
	})

	It("reports the known limitation of AC2C as an outcome", func() {
		orchestrator.ProofSystem = vcp.AC2CBBS
		fakeBackend.VerifyDecryptionReturns(nil, &vcp.BackendError{
			Op:     vcp.OpVerifyDecryption,
			Code:   400,
			Reason: `General("specific_verify_decryption_ac2c : UNIMPLEMENTED")`,
		})

		result, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Decryption.Kind).To(Equal(verifier.KnownUnimplemented))
		Expect(result.Decryption.Limitation.Operation).To(Equal(vcp.OpVerifyDecryption))
		Expect(result.Decryption.String()).To(ContainSubstring("KnownUnimplemented"))
	})

	It("does not excuse the same failure on a proof system without the limitation", func() {
		fakeBackend.VerifyDecryptionReturns(nil, &vcp.BackendError{
			Op:     vcp.OpVerifyDecryption,
			Code:   400,
			Reason: `General("specific_verify_decryption_ac2c : UNIMPLEMENTED")`,
		})

		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(err).To(MatchError(ContainSubstring("failed to verify decryption")))
		Expect(vcp.IsBackendError(err)).To(BeTrue())
	})

	It("rejects decryption warnings", func() {
		fakeBackend.VerifyDecryptionReturns([]vcp.Warning{vcp.UnsupportedFeature("x")}, nil)
		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		pw, ok := vcp.AsProtocolWarning(err)
		Expect(ok).To(BeTrue())
		Expect(pw.Op).To(Equal(vcp.OpVerifyDecryption))
	})

	It("rejects verification warnings", func() {
		fakeBackend.VerifyProofReturns(&vcp.WarningsAndDecryptResponses{
			Warnings:         []vcp.Warning{vcp.RevealPrivacyWarning("DL", 2, "revealed and encrypted")},
			DecryptResponses: responses,
		}, nil)
		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		pw, ok := vcp.AsProtocolWarning(err)
		Expect(ok).To(BeTrue())
		Expect(pw.Op).To(Equal(vcp.OpVerifyProof))
		Expect(fakeBackend.VerifyDecryptionCallCount()).To(Equal(0))
	})

	It("rejects responses that do not match the requests", func() {
		fakeBackend.VerifyProofReturns(&vcp.WarningsAndDecryptResponses{}, nil)
		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(vcp.IsBackendError(err)).To(BeTrue())
		Expect(fakeBackend.VerifyDecryptionCallCount()).To(Equal(0))
	})

	It("rejects decrypt requests without an encryption constraint", func() {
		other := vcp.DecryptKey{Credential: "DL", Index: 1, Authority: "authorityPublic"}
		requests[other] = requests[key]

		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(vcp.IsConfigurationError(err)).To(BeTrue())
		Expect(fakeBackend.VerifyProofCallCount()).To(Equal(0))
	})

	It("rejects a missing nonce and mismatched revealed values", func() {
		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "")
		Expect(vcp.IsConfigurationError(err)).To(BeTrue())

		dfv.RevealedIdxsAndVals = nil
		_, err = orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "nonce")
		Expect(vcp.IsConfigurationError(err)).To(BeTrue())
		Expect(fakeBackend.VerifyProofCallCount()).To(Equal(0))
	})

	It("wraps verification failures", func() {
		fakeBackend.VerifyProofReturns(nil, errors.New("nonce mismatch"))
		_, err := orchestrator.VerifyProof(ctx, dfv, reqs, registry, requests, "other")
		Expect(err).To(MatchError("failed to verify proof: nonce mismatch"))
	})
})

var _ = Describe("OutcomeKind", func() {
	It("has readable names", func() {
		Expect(verifier.Verified.String()).To(Equal("Verified"))
		Expect(verifier.KnownUnimplemented.String()).To(Equal("KnownUnimplemented"))
		Expect(verifier.OutcomeKind(7).String()).To(Equal("OutcomeKind(7)"))
	})
})
