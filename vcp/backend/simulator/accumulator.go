/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
)

type accPublic struct {
	ID string `json:"id"`
}

type accSecret struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

// accValue carries its member list; a real accumulator is constant size.
type accValue struct {
	ID      string   `json:"id"`
	SeqNum  uint64   `json:"seqNum"`
	Members []string `json:"members"`
}

func (a *accValue) digest() string {
	return digest("accumulator", a.ID, strconv.FormatUint(a.SeqNum, 10), strings.Join(a.Members, ","))
}

func (a *accValue) has(elem string) bool {
	i := sort.SearchStrings(a.Members, elem)
	return i < len(a.Members) && a.Members[i] == elem
}

type witness struct {
	AccID   string `json:"accId"`
	SeqNum  uint64 `json:"seqNum"`
	Element string `json:"element"`
	Digest  string `json:"digest"`
}

type updateInfo struct {
	AccID      string   `json:"accId"`
	FromSeqNum uint64   `json:"fromSeqNum"`
	FromDigest string   `json:"fromDigest"`
	ToSeqNum   uint64   `json:"toSeqNum"`
	ToDigest   string   `json:"toDigest"`
	Removed    []string `json:"removed"`
}

func witnessFor(acc *accValue, elem string) vcp.AccumulatorMembershipWitness {
	return vcp.AccumulatorMembershipWitness(seal(kindWitness, witness{
		AccID:   acc.ID,
		SeqNum:  acc.SeqNum,
		Element: elem,
		Digest:  digest("witness", acc.digest(), elem),
	}))
}

// checkWitness fails unless w proves membership of elem in exactly this
// accumulator state.
func checkWitness(acc *accValue, elem string, w vcp.AccumulatorMembershipWitness) error {
	var wit witness
	if err := unseal(kindWitness, string(w), &wit); err != nil {
		return err
	}
	if wit.AccID != acc.ID {
		return general("witness belongs to another accumulator")
	}
	if wit.SeqNum != acc.SeqNum {
		return general("witness for sequence number %d is stale, accumulator is at %d", wit.SeqNum, acc.SeqNum)
	}
	if wit.Element != elem || wit.Digest != digest("witness", acc.digest(), elem) || !acc.has(elem) {
		return general("witness does not prove membership of the element")
	}
	return nil
}

func openAccumulator(data vcp.AccumulatorData, acc vcp.Accumulator) (*accValue, error) {
	var pub accPublic
	if err := unseal(kindAccPublic, string(data.AccumulatorPublicData), &pub); err != nil {
		return nil, err
	}
	var sec accSecret
	if err := unseal(kindAccSecret, string(data.AccumulatorSecretData), &sec); err != nil {
		return nil, err
	}
	value := &accValue{}
	if err := unseal(kindAccumulator, string(acc), value); err != nil {
		return nil, err
	}
	if sec.ID != pub.ID || value.ID != pub.ID {
		return nil, general("accumulator does not match accumulator data")
	}
	return value, nil
}

func elementOf(text string) string {
	return digest("element", text)
}

func (s *Simulator) createAccumulatorData(r *request) (interface{}, error) {
	id := digest("accumulator-id", seedString(r))
	return &vcp.CreateAccumulatorResponse{
		AccumulatorData: vcp.AccumulatorData{
			AccumulatorPublicData: vcp.AccumulatorPublicData(seal(kindAccPublic, accPublic{ID: id})),
			AccumulatorSecretData: vcp.AccumulatorSecretData(seal(kindAccSecret, accSecret{ID: id, Key: digest("accumulator-key", id)})),
		},
		Accumulator: vcp.Accumulator(seal(kindAccumulator, accValue{ID: id, Members: []string{}})),
	}, nil
}

func (s *Simulator) createAccumulatorElement(r *request) (interface{}, error) {
	var text string
	if err := r.decode(vcp.OpCreateAccumulatorElement, &text); err != nil {
		return nil, err
	}
	return vcp.AccumulatorElement(elementOf(text)), nil
}

func (s *Simulator) accumulatorAddRemove(r *request) (interface{}, error) {
	var in backend.AccumulatorAddRemoveRequest
	if err := r.decode(vcp.OpAccumulatorAddRemove, &in); err != nil {
		return nil, err
	}
	acc, err := openAccumulator(in.AccumulatorData, in.Accumulator)
	if err != nil {
		return nil, err
	}

	members := map[string]bool{}
	for _, m := range acc.Members {
		members[m] = true
	}
	removed := make([]string, 0, len(in.Removals))
	for _, e := range in.Removals {
		if !members[string(e)] {
			return nil, general("cannot remove %s, it is not a member", abbreviate(string(e)))
		}
		delete(members, string(e))
		removed = append(removed, string(e))
	}
	for holder, e := range in.Additions {
		if members[string(e)] {
			return nil, general("cannot add %s for %s, it is already a member", abbreviate(string(e)), holder)
		}
		members[string(e)] = true
	}

	next := &accValue{ID: acc.ID, SeqNum: acc.SeqNum + 1, Members: make([]string, 0, len(members))}
	for m := range members {
		next.Members = append(next.Members, m)
	}
	sort.Strings(next.Members)
	sort.Strings(removed)

	witnesses := map[vcp.HolderID]vcp.AccumulatorMembershipWitness{}
	for holder, e := range in.Additions {
		witnesses[holder] = witnessFor(next, string(e))
	}

	return &vcp.AccumulatorAddRemoveResponse{
		WitnessUpdateInfo: vcp.AccumulatorWitnessUpdateInfo(seal(kindUpdateInfo, updateInfo{
			AccID:      acc.ID,
			FromSeqNum: acc.SeqNum,
			FromDigest: acc.digest(),
			ToSeqNum:   next.SeqNum,
			ToDigest:   next.digest(),
			Removed:    removed,
		})),
		WitnessesForNew: witnesses,
		AccumulatorData: in.AccumulatorData,
		Accumulator:     vcp.Accumulator(seal(kindAccumulator, next)),
	}, nil
}

func (s *Simulator) getAccumulatorWitness(r *request) (interface{}, error) {
	var in backend.GetAccumulatorWitnessRequest
	if err := r.decode(vcp.OpGetAccumulatorWitness, &in); err != nil {
		return nil, err
	}
	acc, err := openAccumulator(in.AccumulatorData, in.Accumulator)
	if err != nil {
		return nil, err
	}
	if !acc.has(string(in.AccumulatorElement)) {
		return nil, general("element %s is not a member", abbreviate(string(in.AccumulatorElement)))
	}
	return witnessFor(acc, string(in.AccumulatorElement)), nil
}

func (s *Simulator) updateAccumulatorWitness(r *request) (interface{}, error) {
	var in backend.UpdateAccumulatorWitnessRequest
	if err := r.decode(vcp.OpUpdateAccumulatorWitness, &in); err != nil {
		return nil, err
	}
	var info updateInfo
	if err := unseal(kindUpdateInfo, string(in.WitnessUpdateInfo), &info); err != nil {
		return nil, err
	}
	var wit witness
	if err := unseal(kindWitness, string(in.Witness), &wit); err != nil {
		return nil, err
	}
	elem := string(in.Element)
	if wit.AccID != info.AccID || wit.SeqNum != info.FromSeqNum || wit.Element != elem ||
		wit.Digest != digest("witness", info.FromDigest, elem) {
		return nil, general("witness cannot be updated with this update info")
	}
	i := sort.SearchStrings(info.Removed, elem)
	if i < len(info.Removed) && info.Removed[i] == elem {
		return nil, general("element %s was removed", abbreviate(elem))
	}
	return vcp.AccumulatorMembershipWitness(seal(kindWitness, witness{
		AccID:   info.AccID,
		SeqNum:  info.ToSeqNum,
		Element: elem,
		Digest:  digest("witness", info.ToDigest, elem),
	})), nil
}

type provingKey struct {
	System string `json:"system"`
	Seed   uint64 `json:"seed"`
}

func (s *Simulator) createMembershipProvingKey(r *request) (interface{}, error) {
	return seal(kindMembershipKey, provingKey{System: r.system.Name, Seed: r.seed}), nil
}

func (s *Simulator) createRangeProofProvingKey(r *request) (interface{}, error) {
	return seal(kindRangeKey, provingKey{System: r.system.Name, Seed: r.seed}), nil
}

func (s *Simulator) getRangeProofMaxValue(r *request) (interface{}, error) {
	return RangeProofMaxValue, nil
}
