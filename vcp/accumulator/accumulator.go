/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package accumulator manages revocation accumulators and the membership
// witnesses handed to holders.
package accumulator

import (
	"context"
	"sort"

	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("vcp.accumulator")

//go:generate counterfeiter -o mock/backend.go -fake-name Backend . Backend

// Backend is the part of the proof backend used for accumulators.
type Backend interface {
	CreateAccumulatorData(ctx context.Context) (*vcp.CreateAccumulatorResponse, error)
	CreateAccumulatorElement(ctx context.Context, value string) (vcp.AccumulatorElement, error)
	AccumulatorAddRemove(ctx context.Context, data vcp.AccumulatorData, acc vcp.Accumulator, additions map[vcp.HolderID]vcp.AccumulatorElement, removals []vcp.AccumulatorElement) (*vcp.AccumulatorAddRemoveResponse, error)
	GetAccumulatorWitness(ctx context.Context, data vcp.AccumulatorData, acc vcp.Accumulator, elem vcp.AccumulatorElement) (vcp.AccumulatorMembershipWitness, error)
	UpdateAccumulatorWitness(ctx context.Context, w vcp.AccumulatorMembershipWitness, elem vcp.AccumulatorElement, info vcp.AccumulatorWitnessUpdateInfo) (vcp.AccumulatorMembershipWitness, error)
	CreateMembershipProvingKey(ctx context.Context) (vcp.MembershipProvingKey, error)
}

// State is one version of an accumulator. A State is never modified; each
// batch of additions and removals produces a new State whose sequence number
// is one higher.
type State struct {
	Data        vcp.AccumulatorData
	Accumulator vcp.Accumulator
	SeqNum      uint64

	members map[vcp.HolderID]vcp.AccumulatorElement
}

func (s *State) PublicData() vcp.AccumulatorPublicData {
	return s.Data.AccumulatorPublicData
}

// Member returns the element added for holder.
func (s *State) Member(holder vcp.HolderID) (vcp.AccumulatorElement, bool) {
	e, ok := s.members[holder]
	return e, ok
}

// Members returns the holders with an element in the accumulator, sorted.
func (s *State) Members() []vcp.HolderID {
	out := make([]vcp.HolderID, 0, len(s.members))
	for h := range s.members {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}

// Update is the result of one batch. Witnesses holds a fresh witness for
// every added holder. Witnesses of members that stayed must be brought
// forward with WitnessUpdateInfo before they are valid for State.
type Update struct {
	State             *State
	Witnesses         map[vcp.HolderID]vcp.AccumulatorMembershipWitness
	WitnessUpdateInfo vcp.AccumulatorWitnessUpdateInfo
	Removed           []vcp.HolderID
}

type Manager struct {
	Backend Backend
}

func New(b Backend) *Manager {
	return &Manager{Backend: b}
}

// CreateAccumulator creates an empty accumulator at sequence number 0.
func (m *Manager) CreateAccumulator(ctx context.Context) (*State, error) {
	logger.Debug("creating accumulator")
	resp, err := m.Backend.CreateAccumulatorData(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create accumulator")
	}
	return &State{
		Data:        resp.AccumulatorData,
		Accumulator: resp.Accumulator,
		members:     map[vcp.HolderID]vcp.AccumulatorElement{},
	}, nil
}

// Element derives the accumulator element of an attribute value.
func (m *Manager) Element(ctx context.Context, value string) (vcp.AccumulatorElement, error) {
	e, err := m.Backend.CreateAccumulatorElement(ctx, value)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create accumulator element")
	}
	return e, nil
}

// AddElements adds one element per holder.
func (m *Manager) AddElements(ctx context.Context, state *State, additions map[vcp.HolderID]vcp.AccumulatorElement) (*Update, error) {
	return m.Update(ctx, state, additions, nil)
}

// Update applies one batch of additions and removals to state. Adding a
// holder that is a member, removing one that is not, naming a holder on both
// sides or adding the same element twice is a configuration error.
func (m *Manager) Update(ctx context.Context, state *State, additions map[vcp.HolderID]vcp.AccumulatorElement, removals []vcp.HolderID) (*Update, error) {
	if len(additions) == 0 && len(removals) == 0 {
		return nil, vcp.ConfigErrorf("accumulator batch is empty")
	}

	elements := map[vcp.AccumulatorElement]vcp.HolderID{}
	for _, h := range state.Members() {
		elements[state.members[h]] = h
	}

	removedElems := make([]vcp.AccumulatorElement, 0, len(removals))
	removing := map[vcp.HolderID]bool{}
	for _, h := range removals {
		e, ok := state.members[h]
		if !ok {
			return nil, vcp.ConfigErrorf("cannot remove holder '%s', it is not a member", h)
		}
		if removing[h] {
			return nil, vcp.ConfigErrorf("holder '%s' is removed more than once", h)
		}
		removing[h] = true
		removedElems = append(removedElems, e)
	}

	holders := make([]vcp.HolderID, 0, len(additions))
	for h := range additions {
		holders = append(holders, h)
	}
	sort.Strings(holders)
	for _, h := range holders {
		if removing[h] {
			return nil, vcp.ConfigErrorf("holder '%s' is both added and removed", h)
		}
		if _, ok := state.members[h]; ok {
			return nil, vcp.ConfigErrorf("holder '%s' is already a member", h)
		}
		e := additions[h]
		if other, ok := elements[e]; ok {
			return nil, vcp.ConfigErrorf("holder '%s' adds the element of '%s'", h, other)
		}
		elements[e] = h
	}

	logger.Debugf("updating accumulator at sequence number %d: %d additions, %d removals", state.SeqNum, len(additions), len(removals))
	resp, err := m.Backend.AccumulatorAddRemove(ctx, state.Data, state.Accumulator, additions, removedElems)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to update accumulator")
	}
	for _, h := range holders {
		if _, ok := resp.WitnessesForNew[h]; !ok {
			return nil, &vcp.BackendError{Op: vcp.OpAccumulatorAddRemove, Reason: "no witness returned for holder " + h}
		}
	}
	if len(resp.WitnessesForNew) != len(additions) {
		return nil, &vcp.BackendError{Op: vcp.OpAccumulatorAddRemove, Reason: "witnesses returned for holders that were not added"}
	}

	next := &State{
		Data:        resp.AccumulatorData,
		Accumulator: resp.Accumulator,
		SeqNum:      state.SeqNum + 1,
		members:     make(map[vcp.HolderID]vcp.AccumulatorElement, len(state.members)+len(additions)),
	}
	for h, e := range state.members {
		if !removing[h] {
			next.members[h] = e
		}
	}
	for h, e := range additions {
		next.members[h] = e
	}

	removed := append([]vcp.HolderID{}, removals...)
	sort.Strings(removed)
	return &Update{
		State:             next,
		Witnesses:         resp.WitnessesForNew,
		WitnessUpdateInfo: resp.WitnessUpdateInfo,
		Removed:           removed,
	}, nil
}

// GetWitness asks the accumulator manager for the witness of a member
// element at state.
func (m *Manager) GetWitness(ctx context.Context, state *State, elem vcp.AccumulatorElement) (vcp.AccumulatorMembershipWitness, error) {
	w, err := m.Backend.GetAccumulatorWitness(ctx, state.Data, state.Accumulator, elem)
	if err != nil {
		return "", errors.WithMessage(err, "failed to get accumulator witness")
	}
	return w, nil
}

// CheckWitness fails with a backend error unless the manager reproduces w
// for elem at state.
func (m *Manager) CheckWitness(ctx context.Context, state *State, elem vcp.AccumulatorElement, w vcp.AccumulatorMembershipWitness) error {
	got, err := m.GetWitness(ctx, state, elem)
	if err != nil {
		return err
	}
	if got != w {
		logger.Warnf("witness for %s at sequence number %d does not match", flogging.Truncate(string(elem), 16), state.SeqNum)
		return &vcp.BackendError{
			Op:     vcp.OpGetAccumulatorWitness,
			Reason: "witness does not match the one issued for the same accumulator state",
		}
	}
	return nil
}

// UpdateWitness brings a witness forward across one update.
func (m *Manager) UpdateWitness(ctx context.Context, u *Update, elem vcp.AccumulatorElement, w vcp.AccumulatorMembershipWitness) (vcp.AccumulatorMembershipWitness, error) {
	next, err := m.Backend.UpdateAccumulatorWitness(ctx, w, elem, u.WitnessUpdateInfo)
	if err != nil {
		return "", errors.WithMessage(err, "failed to update accumulator witness")
	}
	return next, nil
}

// MembershipProvingKey creates the proving key used by membership proofs.
func (m *Manager) MembershipProvingKey(ctx context.Context) (vcp.MembershipProvingKey, error) {
	k, err := m.Backend.CreateMembershipProvingKey(ctx)
	if err != nil {
		return "", errors.WithMessage(err, "failed to create membership proving key")
	}
	return k, nil
}
