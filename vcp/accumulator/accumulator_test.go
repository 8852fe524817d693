/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package accumulator_test

import (
	"context"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/accumulator"
	"github.com/hyperledger/fabric-vcp/vcp/accumulator/mock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Manager", func() {
	var (
		ctx         context.Context
		fakeBackend *mock.Backend
		manager     *accumulator.Manager
		data        vcp.AccumulatorData
		initial     *accumulator.State
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeBackend = &mock.Backend{}
		manager = accumulator.New(fakeBackend)

		data = vcp.AccumulatorData{AccumulatorPublicData: "apd", AccumulatorSecretData: "asd"}
		fakeBackend.CreateAccumulatorDataReturns(&vcp.CreateAccumulatorResponse{
			AccumulatorData: data,
			Accumulator:     "acc-0",
		}, nil)

		var err error
		initial, err = manager.CreateAccumulator(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts empty at sequence number zero", func() {
		Expect(initial.SeqNum).To(BeZero())
		Expect(initial.Accumulator).To(Equal(vcp.Accumulator("acc-0")))
		Expect(initial.PublicData()).To(Equal(vcp.AccumulatorPublicData("apd")))
		Expect(initial.Members()).To(BeEmpty())
	})

	It("reports creation failures", func() {
		fakeBackend.CreateAccumulatorDataReturns(nil, errors.New("down"))
		_, err := manager.CreateAccumulator(ctx)
		Expect(err).To(MatchError("failed to create accumulator: down"))
	})

	Describe("adding elements", func() {
		BeforeEach(func() {
			fakeBackend.AccumulatorAddRemoveReturns(&vcp.AccumulatorAddRemoveResponse{
				WitnessUpdateInfo: "wui-1",
				WitnessesForNew:   map[vcp.HolderID]vcp.AccumulatorMembershipWitness{"dlHolderID": "wit-dl"},
				AccumulatorData:   data,
				Accumulator:       "acc-1",
			}, nil)
		})

		It("advances the sequence number by one and hands out witnesses", func() {
			u, err := manager.AddElements(ctx, initial, map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "elem-dl"})
			Expect(err).NotTo(HaveOccurred())

			Expect(u.State.SeqNum).To(Equal(uint64(1)))
			Expect(u.State.Accumulator).To(Equal(vcp.Accumulator("acc-1")))
			Expect(u.State.Members()).To(Equal([]vcp.HolderID{"dlHolderID"}))
			Expect(u.Witnesses).To(HaveKeyWithValue("dlHolderID", vcp.AccumulatorMembershipWitness("wit-dl")))
			Expect(u.WitnessUpdateInfo).To(Equal(vcp.AccumulatorWitnessUpdateInfo("wui-1")))

			elem, ok := u.State.Member("dlHolderID")
			Expect(ok).To(BeTrue())
			Expect(elem).To(Equal(vcp.AccumulatorElement("elem-dl")))

			Expect(initial.SeqNum).To(BeZero())
			Expect(initial.Members()).To(BeEmpty())

			_, d, acc, additions, removals := fakeBackend.AccumulatorAddRemoveArgsForCall(0)
			Expect(d).To(Equal(data))
			Expect(acc).To(Equal(vcp.Accumulator("acc-0")))
			Expect(additions).To(HaveLen(1))
			Expect(removals).To(BeEmpty())
		})

		It("treats a missing witness as a backend fault", func() {
			fakeBackend.AccumulatorAddRemoveReturns(&vcp.AccumulatorAddRemoveResponse{
				WitnessesForNew: map[vcp.HolderID]vcp.AccumulatorMembershipWitness{},
				Accumulator:     "acc-1",
			}, nil)
			_, err := manager.AddElements(ctx, initial, map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "elem-dl"})
			Expect(vcp.IsBackendError(err)).To(BeTrue())
		})

		It("treats extra witnesses as a backend fault", func() {
			fakeBackend.AccumulatorAddRemoveReturns(&vcp.AccumulatorAddRemoveResponse{
				WitnessesForNew: map[vcp.HolderID]vcp.AccumulatorMembershipWitness{"dlHolderID": "w", "someone": "w"},
				Accumulator:     "acc-1",
			}, nil)
			_, err := manager.AddElements(ctx, initial, map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "elem-dl"})
			Expect(vcp.IsBackendError(err)).To(BeTrue())
		})
	})

	Describe("batch policy", func() {
		var member *accumulator.State

		BeforeEach(func() {
			fakeBackend.AccumulatorAddRemoveReturns(&vcp.AccumulatorAddRemoveResponse{
				WitnessesForNew: map[vcp.HolderID]vcp.AccumulatorMembershipWitness{"dlHolderID": "wit-dl"},
				AccumulatorData: data,
				Accumulator:     "acc-1",
			}, nil)
			u, err := manager.AddElements(ctx, initial, map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "elem-dl"})
			Expect(err).NotTo(HaveOccurred())
			member = u.State
		})

		DescribeTable("rejects inconsistent batches before calling the backend",
			func(additions map[vcp.HolderID]vcp.AccumulatorElement, removals []vcp.HolderID, msg string) {
				calls := fakeBackend.AccumulatorAddRemoveCallCount()
				_, err := manager.Update(ctx, member, additions, removals)
				Expect(vcp.IsConfigurationError(err)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring(msg)))
				Expect(fakeBackend.AccumulatorAddRemoveCallCount()).To(Equal(calls))
			},
			Entry("empty", nil, nil, "batch is empty"),
			Entry("unknown removal", nil, []vcp.HolderID{"subHolderID"}, "'subHolderID', it is not a member"),
			Entry("double removal", nil, []vcp.HolderID{"dlHolderID", "dlHolderID"}, "removed more than once"),
			Entry("add and remove", map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "other"}, []vcp.HolderID{"dlHolderID"}, "both added and removed"),
			Entry("already a member", map[vcp.HolderID]vcp.AccumulatorElement{"dlHolderID": "other"}, nil, "already a member"),
			Entry("same element twice", map[vcp.HolderID]vcp.AccumulatorElement{"subHolderID": "elem-dl"}, nil, "adds the element of 'dlHolderID'"),
		)

		It("removes members and passes their elements", func() {
			fakeBackend.AccumulatorAddRemoveReturns(&vcp.AccumulatorAddRemoveResponse{
				WitnessUpdateInfo: "wui-2",
				WitnessesForNew:   map[vcp.HolderID]vcp.AccumulatorMembershipWitness{"subHolderID": "wit-sub"},
				AccumulatorData:   data,
				Accumulator:       "acc-2",
			}, nil)

			u, err := manager.Update(ctx, member, map[vcp.HolderID]vcp.AccumulatorElement{"subHolderID": "elem-sub"}, []vcp.HolderID{"dlHolderID"})
			Expect(err).NotTo(HaveOccurred())
			Expect(u.State.SeqNum).To(Equal(uint64(2)))
			Expect(u.State.Members()).To(Equal([]vcp.HolderID{"subHolderID"}))
			Expect(u.Removed).To(Equal([]vcp.HolderID{"dlHolderID"}))

			_, _, _, _, removals := fakeBackend.AccumulatorAddRemoveArgsForCall(1)
			Expect(removals).To(Equal([]vcp.AccumulatorElement{"elem-dl"}))
		})
	})

	Describe("witnesses", func() {
		It("accepts a witness the manager reproduces", func() {
			fakeBackend.GetAccumulatorWitnessReturns("wit", nil)
			Expect(manager.CheckWitness(ctx, initial, "elem", "wit")).To(Succeed())

			_, d, acc, elem := fakeBackend.GetAccumulatorWitnessArgsForCall(0)
			Expect(d).To(Equal(data))
			Expect(acc).To(Equal(vcp.Accumulator("acc-0")))
			Expect(elem).To(Equal(vcp.AccumulatorElement("elem")))
		})

		It("reports a mismatch as a backend error", func() {
			fakeBackend.GetAccumulatorWitnessReturns("other", nil)
			err := manager.CheckWitness(ctx, initial, "elem", "wit")
			be, ok := vcp.AsBackendError(err)
			Expect(ok).To(BeTrue())
			Expect(be.Op).To(Equal(vcp.OpGetAccumulatorWitness))
		})

		It("updates a witness with the update info of a batch", func() {
			fakeBackend.UpdateAccumulatorWitnessReturns("wit-2", nil)
			u := &accumulator.Update{WitnessUpdateInfo: "wui"}

			w, err := manager.UpdateWitness(ctx, u, "elem", "wit-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(w).To(Equal(vcp.AccumulatorMembershipWitness("wit-2")))

			_, old, elem, info := fakeBackend.UpdateAccumulatorWitnessArgsForCall(0)
			Expect(old).To(Equal(vcp.AccumulatorMembershipWitness("wit-1")))
			Expect(elem).To(Equal(vcp.AccumulatorElement("elem")))
			Expect(info).To(Equal(vcp.AccumulatorWitnessUpdateInfo("wui")))
		})

		It("wraps element and proving key failures", func() {
			fakeBackend.CreateAccumulatorElementReturns("", errors.New("nope"))
			_, err := manager.Element(ctx, "abc")
			Expect(err).To(MatchError("failed to create accumulator element: nope"))

			fakeBackend.CreateMembershipProvingKeyReturns("mpk", nil)
			k, err := manager.MembershipProvingKey(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(Equal(vcp.MembershipProvingKey("mpk")))
		})
	})
})
