/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpctl

import (
	"context"
	"sync"

	"github.com/cheggaaa/pb"
	"github.com/hyperledger/fabric-vcp/common/metrics"
	"github.com/hyperledger/fabric-vcp/common/metrics/disabled"
	"github.com/hyperledger/fabric-vcp/common/metrics/prometheus"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/hyperledger/fabric-vcp/vcp/backend/simulator"
	"github.com/hyperledger/fabric-vcp/vcp/session"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func runCmd(e *env) *cobra.Command {
	var progress bool
	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run scenarios on every selected variant.",
		Long: "Run issues the test credentials for every selected proof system and issuance mode, " +
			"then runs each scenario on a fresh session. All scenarios run when none are named. " +
			"An embedded simulator is started when no backend address is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				e.conf.Run.Scenarios = args
			}
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true
			return e.run(cmd.Context(), progress)
		},
	}

	flags := cmd.Flags()
	flags.StringP("address", "a", "", "Proof backend address, e.g. http://127.0.0.1:8080.")
	flags.Duration("timeout", 0, "Per request timeout, none when 0.")
	flags.StringSliceP("proof-system", "s", nil, "Proof systems to run: AC2C_BBS, AC2C_PS, DNC.")
	flags.StringSliceP("mode", "m", nil, "Issuance modes to run: NonBlinded, Blinded.")
	flags.IntP("parallel", "p", 0, "Scenario runs in flight.")
	flags.Int("max-concurrency", 0, "Backend calls in flight within one run.")
	flags.StringP("output", "o", "", "Report format: text, pretty or json.")
	flags.String("metrics-file", "", "Write the run metrics to this file in the Prometheus text format.")
	flags.BoolVar(&progress, "progress", false, "Show a progress bar.")
	return cmd
}

func (e *env) run(ctx context.Context, progress bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	variants, err := e.conf.Variants()
	if err != nil {
		return err
	}
	scenarios, err := e.conf.Scenarios()
	if err != nil {
		return err
	}

	var provider metrics.Provider = &disabled.Provider{}
	registry := prom.NewRegistry()
	if e.conf.Run.MetricsFile != "" {
		provider = &prometheus.Provider{Registerer: registry}
	}

	address := e.conf.Backend.Address
	if address == "" {
		sim := simulator.New(simulator.WithMetricsProvider(provider))
		srv := simulator.NewServer(simulator.Options{ListenAddress: "127.0.0.1:0"}, sim)
		if err := srv.Start(); err != nil {
			return errors.WithMessage(err, "failed to start the embedded simulator")
		}
		defer srv.Stop()
		address = "http://" + srv.Addr()
		logger.Infof("using the embedded simulator at %s", address)
	}

	r := session.NewRunner(e.connector(address, provider), provider)
	r.Parallel = e.conf.Run.Parallel
	r.Options.MaxConcurrency = e.conf.Run.MaxConcurrency

	total := len(variants) * len(scenarios)
	if progress {
		bar := pb.New(total)
		bar.Output = e.errOut
		bar.ShowTimeLeft = false
		bar.Prefix("scenarios ")
		bar.Start()
		defer bar.Finish()
		r.Done = func(session.Outcome) { bar.Increment() }
	}

	outcomes := r.Run(ctx, variants, scenarios)
	if err := writeOutcomes(e.out, e.conf.Run.Output, outcomes); err != nil {
		return err
	}
	if path := e.conf.Run.MetricsFile; path != "" {
		if err := prom.WriteToTextfile(path, registry); err != nil {
			return errors.Wrapf(err, "failed to write metrics to %s", path)
		}
	}

	failed := 0
	for _, o := range outcomes {
		if !o.Passed() {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d scenario runs failed", failed, total)
	}
	return nil
}

// connector creates one client per proof system and shares it between the
// variants of that system.
func (e *env) connector(address string, p metrics.Provider) session.Connector {
	var mutex sync.Mutex
	clients := map[string]*backend.Client{}

	return func(v session.Variant) (session.Seeder, error) {
		mutex.Lock()
		defer mutex.Unlock()

		c, ok := clients[v.ProofSystem.Name]
		if !ok {
			var err error
			c, err = backend.New(e.conf.BackendConfig(address, v.ProofSystem), backend.WithMetricsProvider(p))
			if err != nil {
				return nil, err
			}
			clients[v.ProofSystem.Name] = c
		}
		return session.ClientSeeder(c), nil
	}
}
