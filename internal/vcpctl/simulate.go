/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpctl

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/fabric-vcp/common/metrics/prometheus"
	"github.com/hyperledger/fabric-vcp/vcp/backend/simulator"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func simulateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Serve the backend simulator until interrupted.",
		Long: "Simulate serves a deterministic stand-in for the proof backend. It checks the " +
			"consistency of the protocol messages but performs no cryptography.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return e.simulate(ctx)
		},
	}
	flags := cmd.Flags()
	flags.StringP("listen-address", "l", "", "Address to listen on.")
	flags.Bool("access-log", false, "Write an access log line per request.")
	return cmd
}

// simulate serves until ctx is done.
func (e *env) simulate(ctx context.Context) error {
	registry := prom.NewRegistry()
	sim := simulator.New(simulator.WithMetricsProvider(&prometheus.Provider{Registerer: registry}))

	var accessLog io.Writer
	if e.conf.Simulator.AccessLog {
		accessLog = e.errOut
	}
	srv := simulator.NewServer(simulator.Options{
		ListenAddress: e.conf.Simulator.ListenAddress,
		AccessLog:     accessLog,
	}, sim)
	srv.RegisterHandler(e.conf.Simulator.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "simulator listening on %s\n", srv.Addr())

	<-ctx.Done()
	logger.Info("stopping simulator")
	return srv.Stop()
}
