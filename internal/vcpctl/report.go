/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpctl

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/hyperledger/fabric-vcp/vcp/session"
	"github.com/kr/pretty"
)

// result is the printable form of a session.Outcome.
type result struct {
	Variant    string            `json:"variant"`
	Scenario   string            `json:"scenario"`
	Passed     bool              `json:"passed"`
	Revealed   map[string]string `json:"revealed,omitempty"`
	Decrypted  map[string]string `json:"decrypted,omitempty"`
	Decryption string            `json:"decryption,omitempty"`
	Proof      string            `json:"proof,omitempty"`
	Error      string            `json:"error,omitempty"`
}

func newResult(o session.Outcome) result {
	r := result{
		Variant:  o.Variant.String(),
		Scenario: o.Scenario,
		Passed:   o.Passed(),
	}
	if o.Err != nil {
		r.Error = o.Err.Error()
		return r
	}
	r.Decrypted = o.Report.Decrypted
	r.Decryption = o.Report.Decryption
	r.Proof = o.Report.ProofDigest
	for label, vals := range o.Report.Revealed {
		for idx, v := range vals {
			if r.Revealed == nil {
				r.Revealed = map[string]string{}
			}
			r.Revealed[fmt.Sprintf("%s[%d]", label, idx)] = v.Plain()
		}
	}
	return r
}

func writeOutcomes(w io.Writer, format string, outcomes []session.Outcome) error {
	results := make([]result, len(outcomes))
	for i, o := range outcomes {
		results[i] = newResult(o)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "pretty":
		for _, r := range results {
			if _, err := pretty.Fprintf(w, "%# v\n", r); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeText(w, results)
	}
}

func writeText(w io.Writer, results []result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	passed := 0
	for _, r := range results {
		status, detail := "FAIL", r.Error
		if r.Passed {
			passed++
			status, detail = "PASS", summary(r)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, r.Variant, r.Scenario, detail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed\n", passed, len(results)-passed)
	return err
}

func summary(r result) string {
	if r.Decryption != "" {
		keys := make([]string, 0, len(r.Decrypted))
		for k := range r.Decrypted {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("decrypted %v, %s", keys, r.Decryption)
	}
	if len(r.Revealed) > 0 {
		return fmt.Sprintf("%d values revealed", len(r.Revealed))
	}
	return "proof " + r.Proof
}
