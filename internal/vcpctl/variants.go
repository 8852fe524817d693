/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpctl

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/spf13/cobra"
)

func variantsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the selected variants, their known limitations and the scenarios.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.listVariants()
		},
	}
	flags := cmd.Flags()
	flags.StringSliceP("proof-system", "s", nil, "Proof systems to list.")
	flags.StringSliceP("mode", "m", nil, "Issuance modes to list: NonBlinded, Blinded.")
	return cmd
}

func (e *env) listVariants() error {
	variants, err := e.conf.Variants()
	if err != nil {
		return err
	}
	scenarios, err := e.conf.Scenarios()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
	for _, v := range variants {
		fmt.Fprintf(tw, "%s\t%s\n", v, limitations(v.ProofSystem))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	names := make([]string, len(scenarios))
	for i, sc := range scenarios {
		names[i] = sc.Name
	}
	_, err = fmt.Fprintf(e.out, "scenarios: %s\n", strings.Join(names, ", "))
	return err
}

func limitations(ps vcp.ProofSystem) string {
	if len(ps.Limitations) == 0 {
		return "no known limitations"
	}
	var out []string
	for _, l := range ps.Limitations {
		out = append(out, fmt.Sprintf("%s: %s", l.Operation, l.Detail))
	}
	return strings.Join(out, "; ")
}
