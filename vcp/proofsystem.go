/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcp

import (
	"strings"
)

// Backend operation names, as they appear in the backend URL space.
const (
	OpCreateSignerData           = "createSignerData"
	OpSign                       = "sign"
	OpCreateBlindSigningInfo     = "createBlindSigningInfo"
	OpSignWithBlindedAttributes  = "signWithBlindedAttributes"
	OpUnblindBlindedSignature    = "unblindBlindedSignature"
	OpCreateAccumulatorData      = "createAccumulatorData"
	OpCreateAccumulatorElement   = "createAccumulatorElement"
	OpAccumulatorAddRemove       = "accumulatorAddRemove"
	OpGetAccumulatorWitness      = "getAccumulatorWitness"
	OpUpdateAccumulatorWitness   = "updateAccumulatorWitness"
	OpCreateMembershipProvingKey = "createMembershipProvingKey"
	OpCreateRangeProofProvingKey = "createRangeProofProvingKey"
	OpGetRangeProofMaxValue      = "getRangeProofMaxValue"
	OpCreateAuthorityData        = "createAuthorityData"
	OpCreateProof                = "createProof"
	OpVerifyProof                = "verifyProof"
	OpVerifyDecryption           = "verifyDecryption"
)

// Limitation is a failure a proof system is known to produce for an
// operation it does not implement. A backend error matching it is an
// expected outcome, not a fault.
type Limitation struct {
	Operation      string
	Code           int
	ReasonContains string
	Detail         string
}

// Matches reports whether err is the catalogued failure.
func (l Limitation) Matches(op string, err error) bool {
	if op != l.Operation {
		return false
	}
	be, ok := AsBackendError(err)
	if !ok {
		return false
	}
	if l.Code != 0 && be.Code != l.Code {
		return false
	}
	return strings.Contains(be.Reason, l.ReasonContains)
}

// ProofSystem describes one backend proof system variant. Adding a variant
// only requires a new entry in ProofSystems.
type ProofSystem struct {
	Name        string
	Description string
	Limitations []Limitation
}

// KnownLimitation returns the limitation matching a failed operation.
func (p ProofSystem) KnownLimitation(op string, err error) (Limitation, bool) {
	for _, l := range p.Limitations {
		if l.Matches(op, err) {
			return l, true
		}
	}
	return Limitation{}, false
}

// Supports reports whether op is expected to succeed on this proof system.
func (p ProofSystem) Supports(op string) bool {
	for _, l := range p.Limitations {
		if l.Operation == op {
			return false
		}
	}
	return true
}

func (p ProofSystem) String() string { return p.Name }

var ac2cVerifyDecryption = Limitation{
	Operation:      OpVerifyDecryption,
	Code:           400,
	ReasonContains: "specific_verify_decryption_ac2c : UNIMPLEMENTED",
	Detail:         "AC2C proof systems do not implement decryption verification",
}

var (
	AC2CBBS = ProofSystem{
		Name:        "AC2C_BBS",
		Description: "AC2C with BBS+ signatures",
		Limitations: []Limitation{ac2cVerifyDecryption},
	}
	AC2CPS = ProofSystem{
		Name:        "AC2C_PS",
		Description: "AC2C with Pointcheval-Sanders signatures",
		Limitations: []Limitation{ac2cVerifyDecryption},
	}
	DNC = ProofSystem{
		Name:        "DNC",
		Description: "DockNetwork crypto",
	}
)

// ProofSystems lists the known variants.
var ProofSystems = []ProofSystem{AC2CBBS, AC2CPS, DNC}

// LookupProofSystem finds a variant by name.
func LookupProofSystem(name string) (ProofSystem, error) {
	for _, p := range ProofSystems {
		if p.Name == name {
			return p, nil
		}
	}
	names := make([]string, len(ProofSystems))
	for i, p := range ProofSystems {
		names[i] = p.Name
	}
	return ProofSystem{}, ConfigErrorf("unknown proof system '%s', expected one of %s", name, strings.Join(names, ", "))
}
