/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package backend

import "github.com/hyperledger/fabric-vcp/common/metrics"

const (
	outcomeOK        = "ok"
	outcomeRejected  = "rejected"
	outcomeTransport = "transport_error"
)

var (
	requestsCounterOpts = metrics.CounterOpts{
		Namespace:  "vcp",
		Subsystem:  "backend",
		Name:       "requests_total",
		Help:       "The number of backend requests by operation and outcome.",
		LabelNames: []string{"operation", "zkp_lib", "outcome"},
	}

	requestDurationOpts = metrics.HistogramOpts{
		Namespace:  "vcp",
		Subsystem:  "backend",
		Name:       "request_duration",
		Help:       "The time in seconds a backend operation took.",
		LabelNames: []string{"operation", "zkp_lib"},
		Buckets:    []float64{0.005, 0.05, 0.5, 1, 5, 30, 120, 600},
	}

	inflightGaugeOpts = metrics.GaugeOpts{
		Namespace:  "vcp",
		Subsystem:  "backend",
		Name:       "inflight",
		Help:       "The number of backend requests in progress.",
		LabelNames: []string{"zkp_lib"},
	}

	keyCacheCounterOpts = metrics.CounterOpts{
		Namespace:  "vcp",
		Subsystem:  "backend",
		Name:       "proving_key_cache_total",
		Help:       "Proving key cache lookups by result.",
		LabelNames: []string{"operation", "result"},
	}
)

type Metrics struct {
	Requests        metrics.Counter
	RequestDuration metrics.Histogram
	Inflight        metrics.Gauge
	KeyCache        metrics.Counter
}

func NewMetrics(p metrics.Provider) *Metrics {
	return &Metrics{
		Requests:        p.NewCounter(requestsCounterOpts),
		RequestDuration: p.NewHistogram(requestDurationOpts),
		Inflight:        p.NewGauge(inflightGaugeOpts),
		KeyCache:        p.NewCounter(keyCacheCounterOpts),
	}
}
