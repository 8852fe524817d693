/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package requirements builds and validates the verifier's per-credential
// constraint sets against the shared parameter registry.
package requirements

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

// Registry resolves shared parameter labels.
type Registry interface {
	SignerPublicData(label vcp.SharedParamKey) (*vcp.SignerPublicData, error)
	Int(label vcp.SharedParamKey) (uint64, error)
	Opaque(label vcp.SharedParamKey) (string, error)
}

// Requirements is the constraint set of one proof, keyed by credential label.
type Requirements map[vcp.CredentialLabel]vcp.CredentialReqs

// Labels returns the credential labels in order.
func (r Requirements) Labels() []vcp.CredentialLabel {
	labels := make([]vcp.CredentialLabel, 0, len(r))
	for l := range r {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Validate checks that every constraint is well formed and that every label
// it names resolves in reg to a value of the expected kind. Index bounds are
// checked against the schema of each credential's signer.
func (r Requirements) Validate(reg Registry) error {
	if len(r) == 0 {
		return vcp.ConfigErrorf("no credentials are required")
	}

	schemas := map[vcp.CredentialLabel][]vcp.ClaimType{}
	for _, label := range r.Labels() {
		cr := r[label]
		if cr.SignerLabel == "" {
			return vcp.ConfigErrorf("credential '%s' has no signer label", label)
		}
		spd, err := reg.SignerPublicData(cr.SignerLabel)
		if err != nil {
			return errors.WithMessagef(err, "credential '%s'", label)
		}
		schemas[label] = spd.SignerPublicSchema
	}

	for _, label := range r.Labels() {
		if err := validateCredential(label, r[label], schemas, reg); err != nil {
			return err
		}
	}
	return nil
}

func validateCredential(label vcp.CredentialLabel, cr vcp.CredentialReqs, schemas map[vcp.CredentialLabel][]vcp.ClaimType, reg Registry) error {
	schema := schemas[label]
	claimAt := func(idx vcp.CredAttrIndex, what string) (vcp.ClaimType, error) {
		if idx >= uint64(len(schema)) {
			return "", vcp.ConfigErrorf("credential '%s': %s index %d out of range for a schema of %d attributes", label, what, idx, len(schema))
		}
		return schema[idx], nil
	}
	expect := func(idx vcp.CredAttrIndex, what string, want vcp.ClaimType) error {
		ct, err := claimAt(idx, what)
		if err != nil {
			return err
		}
		if ct != want {
			return vcp.ConfigErrorf("credential '%s': %s index %d has claim type %s, expected %s", label, what, idx, ct, want)
		}
		return nil
	}
	resolve := func(err error, what string) error {
		if err != nil {
			return errors.WithMessagef(err, "credential '%s': %s", label, what)
		}
		return nil
	}

	seen := bitset.New(uint(len(schema)))
	for _, idx := range cr.Disclosed {
		if _, err := claimAt(idx, "disclosed"); err != nil {
			return err
		}
		if seen.Test(uint(idx)) {
			return vcp.ConfigErrorf("credential '%s': index %d is disclosed more than once", label, idx)
		}
		seen.Set(uint(idx))
	}

	for _, ia := range cr.InAccum {
		if err := expect(ia.Index, "inAccum", vcp.CTAccumulatorMember); err != nil {
			return err
		}
		for _, l := range []vcp.SharedParamKey{ia.AccumulatorPublicDataLabel, ia.MembershipProvingKeyLabel, ia.AccumulatorLabel} {
			_, err := reg.Opaque(l)
			if err := resolve(err, "inAccum"); err != nil {
				return err
			}
		}
		_, err := reg.Int(ia.AccumulatorSeqNumLabel)
		if err := resolve(err, "inAccum sequence number"); err != nil {
			return err
		}
	}

	for _, na := range cr.NotInAccum {
		if err := expect(na.Index, "notInAccum", vcp.CTAccumulatorMember); err != nil {
			return err
		}
		_, err := reg.Opaque(na.Label)
		if err := resolve(err, "notInAccum"); err != nil {
			return err
		}
	}

	for _, ir := range cr.InRange {
		if err := expect(ir.Index, "inRange", vcp.CTInt); err != nil {
			return err
		}
		lo, err := reg.Int(ir.MinLabel)
		if err := resolve(err, "inRange minimum"); err != nil {
			return err
		}
		hi, err := reg.Int(ir.MaxLabel)
		if err := resolve(err, "inRange maximum"); err != nil {
			return err
		}
		if lo > hi {
			return vcp.ConfigErrorf("credential '%s': inRange index %d has minimum %d above maximum %d", label, ir.Index, lo, hi)
		}
		_, err = reg.Opaque(ir.RangeProvingKeyLabel)
		if err := resolve(err, "inRange proving key"); err != nil {
			return err
		}
	}

	for _, ef := range cr.EncryptedFor {
		if err := expect(ef.Index, "encryptedFor", vcp.CTEncryptableText); err != nil {
			return err
		}
		_, err := reg.Opaque(ef.Label)
		if err := resolve(err, "encryptedFor"); err != nil {
			return err
		}
	}

	for _, eq := range cr.EqualTo {
		from, err := claimAt(eq.FromIndex, "equalTo")
		if err != nil {
			return err
		}
		other, ok := schemas[eq.ToLabel]
		if !ok {
			return vcp.ConfigErrorf("credential '%s': equalTo names credential '%s' which is not part of the proof", label, eq.ToLabel)
		}
		if eq.ToIndex >= uint64(len(other)) {
			return vcp.ConfigErrorf("credential '%s': equalTo index %d out of range for credential '%s'", label, eq.ToIndex, eq.ToLabel)
		}
		if to := other[eq.ToIndex]; to != from {
			return vcp.ConfigErrorf("credential '%s': equalTo compares %s at index %d with %s at '%s'[%d]", label, from, eq.FromIndex, to, eq.ToLabel, eq.ToIndex)
		}
	}

	return nil
}

// ValidateCredentials checks that there is a credential for every required
// label and no credential for any other, and that membership constraints
// have a witness attached.
func (r Requirements) ValidateCredentials(creds map[vcp.CredentialLabel]*vcp.SignatureAndRelatedData) error {
	for _, label := range r.Labels() {
		cred, ok := creds[label]
		if !ok || cred == nil {
			return vcp.ConfigErrorf("no credential given for '%s'", label)
		}
		for _, ia := range r[label].InAccum {
			if _, ok := cred.Witness(ia.Index); !ok {
				return vcp.ConfigErrorf("credential '%s' has no accumulator witness at index %d", label, ia.Index)
			}
		}
	}
	for label := range creds {
		if _, ok := r[label]; !ok {
			return vcp.ConfigErrorf("credential '%s' is not required by the proof", label)
		}
	}
	return nil
}

// DisclosedIndices returns the indices disclosed for label, ascending.
func (r Requirements) DisclosedIndices(label vcp.CredentialLabel) []vcp.CredAttrIndex {
	set := &bitset.BitSet{}
	for _, idx := range r[label].Disclosed {
		set.Set(uint(idx))
	}
	out := make([]vcp.CredAttrIndex, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, uint64(i))
	}
	return out
}

// CheckRevealed checks that revealed holds exactly the disclosed indices of
// every credential, in both directions.
func (r Requirements) CheckRevealed(revealed map[vcp.CredentialLabel]map[vcp.CredAttrIndex]vcp.DataValue) error {
	for _, label := range r.Labels() {
		want := r.DisclosedIndices(label)
		got := revealed[label]
		if len(got) != len(want) {
			return errors.Errorf("credential '%s': %d values revealed, %d disclosed", label, len(got), len(want))
		}
		for _, idx := range want {
			if _, ok := got[idx]; !ok {
				return errors.Errorf("credential '%s': disclosed index %d was not revealed", label, idx)
			}
		}
	}
	for label, vals := range revealed {
		if _, ok := r[label]; !ok && len(vals) > 0 {
			return errors.Errorf("values revealed for credential '%s' which is not part of the proof", label)
		}
	}
	return nil
}

// CheckDecryptRequests checks that every request targets an encryptedFor
// constraint.
func (r Requirements) CheckDecryptRequests(requests vcp.DecryptRequests) error {
	for _, k := range requests.Keys() {
		found := false
		for _, ef := range r[k.Credential].EncryptedFor {
			if ef.Index == k.Index && ef.Label == k.Authority {
				found = true
				break
			}
		}
		if !found {
			return vcp.ConfigErrorf("decrypt request %s does not match an encryptedFor constraint", k)
		}
	}
	return nil
}
