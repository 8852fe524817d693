/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package session

import (
	"context"

	"github.com/hyperledger/fabric-vcp/common/metrics"
	"github.com/hyperledger/fabric-vcp/common/metrics/disabled"
	"golang.org/x/sync/errgroup"
)

var scenarioRunsOpts = metrics.CounterOpts{
	Namespace:  "vcp",
	Subsystem:  "session",
	Name:       "scenario_runs_total",
	Help:       "The number of scenario runs by variant and result.",
	LabelNames: []string{"scenario", "variant", "result"},
}

// Connector returns the seeder of the backend serving a proof system.
type Connector func(v Variant) (Seeder, error)

// Outcome of one scenario on one variant. Exactly one of Report and Err is
// set.
type Outcome struct {
	Variant  Variant
	Scenario string
	Report   *Report
	Err      error
}

func (o Outcome) Passed() bool { return o.Err == nil }

type Runner struct {
	Connect Connector
	Options Options
	// Parallel bounds the runs in flight. Zero runs them one at a time.
	Parallel int
	// Done is called after every run, from the goroutine that ran it.
	Done func(Outcome)

	runs metrics.Counter
}

func NewRunner(connect Connector, p metrics.Provider) *Runner {
	if p == nil {
		p = &disabled.Provider{}
	}
	return &Runner{
		Connect: connect,
		runs:    p.NewCounter(scenarioRunsOpts),
	}
}

// Run runs every scenario on every variant, each on a fresh session, and
// returns the outcomes in variant then scenario order. A failing run does
// not stop the others.
func (r *Runner) Run(ctx context.Context, variants []Variant, scenarios []Scenario) []Outcome {
	outcomes := make([]Outcome, len(variants)*len(scenarios))
	var g errgroup.Group
	if r.Parallel > 0 {
		g.SetLimit(r.Parallel)
	} else {
		g.SetLimit(1)
	}

	for i, v := range variants {
		for j, sc := range scenarios {
			i, j, v, sc := i, j, v, sc
			g.Go(func() error {
				o := r.runOne(ctx, v, sc)
				outcomes[i*len(scenarios)+j] = o
				if r.Done != nil {
					r.Done(o)
				}
				return nil
			})
		}
	}
	g.Wait()
	return outcomes
}

func (r *Runner) runOne(ctx context.Context, v Variant, sc Scenario) Outcome {
	o := Outcome{Variant: v, Scenario: sc.Name}
	o.Report, o.Err = r.run(ctx, v, sc)

	result := "passed"
	if o.Err != nil {
		result = "failed"
		logger.Errorf("[%s] scenario %s failed: %s", v, sc.Name, o.Err)
	}
	if r.runs != nil {
		r.runs.With("scenario", sc.Name, "variant", v.String(), "result", result).Add(1)
	}
	return o
}

func (r *Runner) run(ctx context.Context, v Variant, sc Scenario) (*Report, error) {
	seeder, err := r.Connect(v)
	if err != nil {
		return nil, err
	}
	s, err := New(ctx, seeder, v, r.Options)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, sc)
}
