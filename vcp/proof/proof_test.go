/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proof_test

import (
	"context"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/proof"
	"github.com/hyperledger/fabric-vcp/vcp/proof/mock"
	"github.com/hyperledger/fabric-vcp/vcp/requirements"
	"github.com/hyperledger/fabric-vcp/vcp/sharedparams"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Orchestrator", func() {
	var (
		ctx          context.Context
		fakeBackend  *mock.Backend
		orchestrator *proof.Orchestrator
		registry     *sharedparams.Registry
		reqs         requirements.Requirements
		creds        map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData
		revealed     map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeBackend = &mock.Backend{}
		orchestrator = proof.New(fakeBackend)

		registry = sharedparams.New()
		Expect(registry.PutSignerPublicData("dlSignerPublic", &vcp.SignerPublicData{
			SignerPublicSetupData: "setup",
			SignerPublicSchema:    []vcp.ClaimType{vcp.CTText, vcp.CTInt},
		})).To(Succeed())

		var err error
		reqs, err = requirements.NewBuilder().Credential("DL", "dlSignerPublic").Disclose("DL", 0).Build()
		Expect(err).NotTo(HaveOccurred())

		creds = map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData{
			"DL": vcp.NewSignatureAndRelatedData("sig", []vcp.DataValue{vcp.Text("DriverLicense"), vcp.Int(37852)}),
		}
		revealed = map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue{
			"DL": {0: vcp.Text("DriverLicense")},
		}
		fakeBackend.CreateProofReturns(&vcp.WarningsAndDataForVerifier{
			DataForVerifier: vcp.DataForVerifier{RevealedIdxsAndVals: revealed, Proof: "proof"},
		}, nil)
	})

	It("creates a proof revealing the disclosed values", func() {
		artifact, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce-from-typescript")
		Expect(err).NotTo(HaveOccurred())
		Expect(artifact.Proof()).To(Equal(vcp.Proof("proof")))
		Expect(artifact.Nonce).To(Equal("nonce-from-typescript"))

		v, ok := artifact.Revealed("DL", 0)
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(vcp.Text("DriverLicense")))

		Expect(fakeBackend.CreateProofCallCount()).To(Equal(1))
		_, sentReqs, shared, sigs, nonce := fakeBackend.CreateProofArgsForCall(0)
		Expect(sentReqs).To(HaveKey("DL"))
		Expect(shared).To(HaveKey("dlSignerPublic"))
		Expect(sigs["DL"].Signature).To(Equal(vcp.Signature("sig")))
		Expect(nonce).To(Equal("nonce-from-typescript"))
	})

	It("requires a nonce", func() {
		_, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "")
		Expect(vcp.IsConfigurationError(err)).To(BeTrue())
		Expect(fakeBackend.CreateProofCallCount()).To(Equal(0))
	})

	It("validates the requirements first", func() {
		bad, err := requirements.NewBuilder().Credential("DL", "missingSigner").Build()
		Expect(err).NotTo(HaveOccurred())

		_, err = orchestrator.CreateProof(ctx, creds, bad, registry, "nonce")
		Expect(vcp.IsConfigurationError(err)).To(BeTrue())
		Expect(fakeBackend.CreateProofCallCount()).To(Equal(0))
	})

	It("requires a credential for every label", func() {
		_, err := orchestrator.CreateProof(ctx, map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData{}, reqs, registry, "nonce")
		Expect(err).To(MatchError(ContainSubstring("no credential given for 'DL'")))
	})

	It("rejects results with warnings", func() {
		fakeBackend.CreateProofReturns(&vcp.WarningsAndDataForVerifier{
			Warnings:        []vcp.Warning{vcp.UnsupportedFeature("notInAccum")},
			DataForVerifier: vcp.DataForVerifier{RevealedIdxsAndVals: revealed, Proof: "proof"},
		}, nil)

		artifact, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		Expect(artifact).To(BeNil())
		pw, ok := vcp.AsProtocolWarning(err)
		Expect(ok).To(BeTrue())
		Expect(pw.Op).To(Equal(vcp.OpCreateProof))
		Expect(pw.Warnings).To(HaveLen(1))
	})

	It("rejects results revealing other indices", func() {
		revealed["DL"][1] = vcp.Int(37852)
		_, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		Expect(vcp.IsBackendError(err)).To(BeTrue())
	})

	It("rejects results missing a disclosed index", func() {
		delete(revealed["DL"], 0)
		_, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		Expect(vcp.IsBackendError(err)).To(BeTrue())
	})

	It("rejects revealed values that were not signed", func() {
		revealed["DL"][0] = vcp.Text("Passport")
		_, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		be, ok := vcp.AsBackendError(err)
		Expect(ok).To(BeTrue())
		Expect(be.Reason).To(Equal("revealed value differs from the signed value"))
	})

	It("wraps backend failures", func() {
		fakeBackend.CreateProofReturns(nil, &vcp.BackendError{Op: vcp.OpCreateProof, Code: 400, Reason: "bad"})
		_, err := orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		Expect(err).To(MatchError(ContainSubstring("failed to create proof")))
		Expect(vcp.IsBackendError(err)).To(BeTrue())

		fakeBackend.CreateProofReturns(nil, errors.New("plain"))
		_, err = orchestrator.CreateProof(ctx, creds, reqs, registry, "nonce")
		Expect(err).To(MatchError("failed to create proof: plain"))
	})
})
