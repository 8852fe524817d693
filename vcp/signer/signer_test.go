/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signer_test

import (
	"context"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/signer"
	"github.com/hyperledger/fabric-vcp/vcp/signer/mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Workflow", func() {
	var (
		ctx         context.Context
		fakeBackend *mock.Backend
		workflow    *signer.Workflow
		attrs       vcp.AttributeSet
		signerData  *vcp.SignerData
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeBackend = &mock.Backend{}
		workflow = signer.New(fakeBackend)

		attrs = vcp.AttributeSet{
			ClaimTypes: []vcp.ClaimType{vcp.CTText, vcp.CTInt, vcp.CTEncryptableText, vcp.CTInt, vcp.CTAccumulatorMember},
			Values: []vcp.DataValue{
				vcp.Text("DriverLicense"),
				vcp.Int(37852),
				vcp.Text("123-45-6789"),
				vcp.Int(180),
				vcp.Text("abcdef0123456789abcdef0123456789"),
			},
		}
		signerData = &vcp.SignerData{
			SignerPublicData: vcp.SignerPublicData{
				SignerPublicSetupData: "setup",
				SignerPublicSchema:    attrs.ClaimTypes,
			},
			SignerSecretData: "secret",
		}
		fakeBackend.CreateSignerDataReturns(signerData, nil)
	})

	Describe("direct issuance", func() {
		BeforeEach(func() {
			fakeBackend.SignReturns("signature", nil)
		})

		It("creates signer data and signs every value", func() {
			issuance, err := workflow.Issue(ctx, attrs, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(issuance.SignerData).To(Equal(signerData))
			Expect(issuance.PublicData).To(Equal(signerData.SignerPublicData))
			Expect(issuance.Signature).To(Equal(vcp.Signature("signature")))

			Expect(fakeBackend.CreateSignerDataCallCount()).To(Equal(1))
			_, claimTypes, blinded := fakeBackend.CreateSignerDataArgsForCall(0)
			Expect(claimTypes).To(Equal(attrs.ClaimTypes))
			Expect(blinded).To(BeEmpty())

			Expect(fakeBackend.SignCallCount()).To(Equal(1))
			_, values, sd := fakeBackend.SignArgsForCall(0)
			Expect(values).To(Equal(attrs.Values))
			Expect(sd).To(Equal(signerData))

			Expect(fakeBackend.CreateBlindSigningInfoCallCount()).To(Equal(0))
		})

		It("gives the holder a credential without witnesses", func() {
			issuance, err := workflow.Issue(ctx, attrs, nil)
			Expect(err).NotTo(HaveOccurred())

			cred := issuance.Credential()
			Expect(cred.Signature).To(Equal(vcp.Signature("signature")))
			Expect(cred.Values).To(Equal(attrs.Values))
			Expect(cred.AccumulatorWitnesses).To(BeEmpty())
		})

		It("leaves value count checks to the backend", func() {
			fakeBackend.SignReturns("", &vcp.BackendError{Op: vcp.OpSign, Code: 400, Reason: `General("expected 5 values")`})
			attrs.Values = attrs.Values[:4]

			issuance, err := workflow.Issue(ctx, attrs, nil)
			Expect(issuance).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("failed to sign")))
			Expect(vcp.IsBackendError(err)).To(BeTrue())
			Expect(fakeBackend.SignCallCount()).To(Equal(1))
		})

		It("stops when signer data cannot be created", func() {
			fakeBackend.CreateSignerDataReturns(nil, errors.New("boom"))

			_, err := workflow.Issue(ctx, attrs, nil)
			Expect(err).To(MatchError("failed to create signer data: boom"))
			Expect(fakeBackend.SignCallCount()).To(Equal(0))
		})
	})

	Describe("blind issuance", func() {
		BeforeEach(func() {
			fakeBackend.CreateBlindSigningInfoReturns(&vcp.BlindSigningInfo{
				BlindInfoForSigner: "for-signer",
				InfoForUnblinding:  "for-holder",
			}, nil)
			fakeBackend.SignWithBlindedAttributesReturns("blind-signature", nil)
			fakeBackend.UnblindBlindedSignatureReturns("signature", nil)
		})

		It("runs the three steps with a partition of the attributes", func() {
			issuance, err := workflow.Issue(ctx, attrs, []vcp.CredAttrIndex{4, 1, 3, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(issuance.Signature).To(Equal(vcp.Signature("signature")))

			_, _, blinded := fakeBackend.CreateSignerDataArgsForCall(0)
			Expect(blinded).To(Equal([]vcp.CredAttrIndex{1, 2, 3, 4}))

			_, spd, hidden := fakeBackend.CreateBlindSigningInfoArgsForCall(0)
			Expect(spd).To(Equal(&signerData.SignerPublicData))
			Expect(hidden).To(Equal([]vcp.CredAttrIndexAndDataValue{
				{Index: 1, Value: vcp.Int(37852)},
				{Index: 2, Value: vcp.Text("123-45-6789")},
				{Index: 3, Value: vcp.Int(180)},
				{Index: 4, Value: vcp.Text("abcdef0123456789abcdef0123456789")},
			}))

			_, sd, visible, info := fakeBackend.SignWithBlindedAttributesArgsForCall(0)
			Expect(sd).To(Equal(signerData))
			Expect(visible).To(Equal([]vcp.CredAttrIndexAndDataValue{{Index: 0, Value: vcp.Text("DriverLicense")}}))
			Expect(info).To(Equal(vcp.BlindInfoForSigner("for-signer")))

			_, claimTypes, unblinded, forHolder, bsig := fakeBackend.UnblindBlindedSignatureArgsForCall(0)
			Expect(claimTypes).To(Equal(attrs.ClaimTypes))
			Expect(unblinded).To(Equal(hidden))
			Expect(forHolder).To(Equal(vcp.InfoForUnblinding("for-holder")))
			Expect(bsig).To(Equal(vcp.BlindSignature("blind-signature")))

			Expect(fakeBackend.SignCallCount()).To(Equal(0))
		})

		DescribeTable("rejects a bad partition before calling the backend",
			func(blinded []vcp.CredAttrIndex, msg string) {
				_, err := workflow.Issue(ctx, attrs, blinded)
				Expect(vcp.IsConfigurationError(err)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring(msg)))
				Expect(fakeBackend.Invocations()).To(BeEmpty())
			},
			Entry("out of range", []vcp.CredAttrIndex{1, 5}, "blinded index 5 out of range"),
			Entry("duplicate", []vcp.CredAttrIndex{1, 2, 1}, "blinded index 1 given more than once"),
		)

		It("rejects a value count that does not match the claim types", func() {
			attrs.Values = attrs.Values[:3]
			_, err := workflow.Issue(ctx, attrs, []vcp.CredAttrIndex{1})
			Expect(vcp.IsConfigurationError(err)).To(BeTrue())
			Expect(fakeBackend.Invocations()).To(BeEmpty())
		})

		It("aborts without a signature when unblinding fails", func() {
			fakeBackend.UnblindBlindedSignatureReturns("", &vcp.BackendError{Op: vcp.OpUnblindBlindedSignature, Code: 400})

			issuance, err := workflow.Issue(ctx, attrs, []vcp.CredAttrIndex{1})
			Expect(issuance).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring("failed to unblind signature")))
			Expect(vcp.IsBackendError(err)).To(BeTrue())
		})

		It("aborts when the signer refuses", func() {
			fakeBackend.SignWithBlindedAttributesReturns("", errors.New("refused"))

			_, err := workflow.Issue(ctx, attrs, []vcp.CredAttrIndex{1})
			Expect(err).To(MatchError("failed to sign with blinded attributes: refused"))
			Expect(fakeBackend.UnblindBlindedSignatureCallCount()).To(Equal(0))
		})
	})

	Describe("blind session", func() {
		var session *signer.BlindSession

		BeforeEach(func() {
			fakeBackend.CreateBlindSigningInfoReturns(&vcp.BlindSigningInfo{
				BlindInfoForSigner: "for-signer",
				InfoForUnblinding:  "for-holder",
			}, nil)
			fakeBackend.SignWithBlindedAttributesReturns("blind-signature", nil)
			fakeBackend.UnblindBlindedSignatureReturns("signature", nil)

			var err error
			session, err = workflow.NewBlindSession(ctx, &signerData.SignerPublicData, attrs.ClaimTypes, attrs.Pairs([]vcp.CredAttrIndex{2}))
			Expect(err).NotTo(HaveOccurred())
			Expect(session.InfoForSigner()).To(Equal(vcp.BlindInfoForSigner("for-signer")))
		})

		It("can only be signed once", func() {
			_, err := session.Sign(ctx, signerData, attrs.Pairs([]vcp.CredAttrIndex{0, 1, 3, 4}))
			Expect(err).NotTo(HaveOccurred())

			_, err = session.Sign(ctx, signerData, attrs.Pairs([]vcp.CredAttrIndex{0, 1, 3, 4}))
			Expect(vcp.IsConfigurationError(err)).To(BeTrue())
			Expect(fakeBackend.SignWithBlindedAttributesCallCount()).To(Equal(1))
		})

		It("cannot be unblinded before it is signed", func() {
			_, err := session.Unblind(ctx, "blind-signature")
			Expect(vcp.IsConfigurationError(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("has not been signed yet")))
			Expect(fakeBackend.UnblindBlindedSignatureCallCount()).To(Equal(0))
		})

		It("can only be unblinded once", func() {
			_, err := session.Sign(ctx, signerData, attrs.Pairs([]vcp.CredAttrIndex{0, 1, 3, 4}))
			Expect(err).NotTo(HaveOccurred())

			sig, err := session.Unblind(ctx, "blind-signature")
			Expect(err).NotTo(HaveOccurred())
			Expect(sig).To(Equal(vcp.Signature("signature")))

			_, err = session.Unblind(ctx, "blind-signature")
			Expect(vcp.IsConfigurationError(err)).To(BeTrue())
			Expect(fakeBackend.UnblindBlindedSignatureCallCount()).To(Equal(1))
		})

		It("is used up by a failed step", func() {
			fakeBackend.SignWithBlindedAttributesReturns("", errors.New("refused"))
			_, err := session.Sign(ctx, signerData, nil)
			Expect(err).To(HaveOccurred())

			_, err = session.Sign(ctx, signerData, nil)
			Expect(vcp.IsConfigurationError(err)).To(BeTrue())
		})
	})
})

var _ = Describe("Partition", func() {
	It("splits the indices in ascending order", func() {
		hidden, visible, err := signer.Partition(4, []vcp.CredAttrIndex{3, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(hidden).To(Equal([]vcp.CredAttrIndex{1, 3}))
		Expect(visible).To(Equal([]vcp.CredAttrIndex{0, 2}))
	})

	It("allows blinding every attribute", func() {
		hidden, visible, err := signer.Partition(2, []vcp.CredAttrIndex{0, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(hidden).To(Equal([]vcp.CredAttrIndex{0, 1}))
		Expect(visible).To(BeEmpty())
	})
})
