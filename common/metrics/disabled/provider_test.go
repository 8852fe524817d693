/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package disabled_test

import (
	"github.com/hyperledger/fabric-vcp/common/metrics"
	"github.com/hyperledger/fabric-vcp/common/metrics/disabled"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Provider", func() {
	var p metrics.Provider

	BeforeEach(func() {
		p = &disabled.Provider{}
	})

	It("hands out counters that accept any label values", func() {
		c := p.NewCounter(metrics.CounterOpts{
			Namespace:  "vcp",
			Subsystem:  "session",
			Name:       "scenario_runs_total",
			LabelNames: []string{"scenario", "variant", "result"},
		})
		Expect(c).NotTo(BeNil())

		c.Add(1)
		c.With("range", "DNC/Blinded", "passed").Add(1)
		c.With("missing-values").Add(2)
	})

	It("hands out gauges that accept any label values", func() {
		g := p.NewGauge(metrics.GaugeOpts{Namespace: "vcp", Subsystem: "backend", Name: "inflight"})
		Expect(g).NotTo(BeNil())

		g.Add(1)
		g.Add(-1)
		g.With("operation", "createProof").Set(3)
	})

	It("hands out histograms that accept any label values", func() {
		h := p.NewHistogram(metrics.HistogramOpts{
			Namespace: "vcp",
			Subsystem: "backend",
			Name:      "request_duration",
			Buckets:   []float64{0.1, 1, 10},
		})
		Expect(h).NotTo(BeNil())

		h.Observe(0.25)
		h.With("operation", "verifyProof", "zkp_lib", "AC2C_PS").Observe(12)
	})
})
