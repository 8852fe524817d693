/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcpctl

import (
	"strings"
	"time"

	"github.com/hyperledger/fabric-vcp/common/viperutil"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/hyperledger/fabric-vcp/vcp/session"
	"github.com/pkg/errors"
)

const (
	configName = "vcpctl"
	envPrefix  = "VCPCTL"
)

// Config is the vcpctl configuration file, vcpctl.yaml. Every key can be
// overridden from the environment, e.g. VCPCTL_BACKEND_ADDRESS.
type Config struct {
	Backend   Backend
	Run       Run
	Simulator Simulator
	Logging   Logging
}

type Backend struct {
	// Address of the proof backend. When empty, run starts an embedded
	// simulator on a loopback port.
	Address              string
	Timeout              time.Duration
	MaxIdleConnsPerHost  int
	ProvingKeyCacheBytes int
}

type Run struct {
	// ProofSystems to run, all known systems when empty.
	ProofSystems []string
	// Modes is a subset of "NonBlinded" and "Blinded", both when empty.
	Modes []string
	// Scenarios to run, all when empty.
	Scenarios []string
	// Parallel bounds the scenario runs in flight.
	Parallel int
	// MaxConcurrency bounds the backend calls of one run.
	MaxConcurrency int
	// Output is one of "text", "pretty" or "json".
	Output string
	// MetricsFile receives the backend, simulator and scenario metrics in
	// the Prometheus text format after the run. Nothing is written when empty.
	MetricsFile string
}

type Simulator struct {
	ListenAddress string
	AccessLog     bool
	// MetricsPath serves the Prometheus registry when set.
	MetricsPath string
}

type Logging struct {
	Spec   string
	Format string
}

// Defaults returns the configuration used when no file is found.
func Defaults() *Config {
	return &Config{
		Backend: Backend{
			ProvingKeyCacheBytes: 8 << 20,
		},
		Run: Run{
			Parallel:       1,
			MaxConcurrency: 4,
			Output:         "text",
		},
		Simulator: Simulator{
			ListenAddress: "127.0.0.1:8084",
			MetricsPath:   "/metrics",
		},
	}
}

// Load reads the config file at path, or searches the config paths for
// vcpctl.yaml when path is empty. A missing file is only an error when the
// path was given explicitly.
func Load(path string) (*Config, error) {
	p := viperutil.New()
	p.SetConfigName(configName)
	p.SetEnvPrefix(envPrefix)
	if path != "" {
		p.SetConfigFile(path)
	} else {
		p.AddConfigPaths(viperutil.ConfigPaths()...)
	}

	if err := p.ReadInConfig(); err != nil {
		if path != "" || p.ConfigFileUsed() != "" {
			return nil, errors.WithMessage(err, "failed to read configuration")
		}
		logger.Debugf("no %s.yaml found, using defaults", configName)
	}

	conf := &Config{}
	if err := p.EnhancedExactUnmarshal(conf); err != nil {
		return nil, errors.WithMessage(err, "failed to decode configuration")
	}
	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) applyDefaults() {
	d := Defaults()
	if c.Backend.ProvingKeyCacheBytes == 0 {
		c.Backend.ProvingKeyCacheBytes = d.Backend.ProvingKeyCacheBytes
	}
	if c.Run.Parallel == 0 {
		c.Run.Parallel = d.Run.Parallel
	}
	if c.Run.MaxConcurrency == 0 {
		c.Run.MaxConcurrency = d.Run.MaxConcurrency
	}
	if c.Run.Output == "" {
		c.Run.Output = d.Run.Output
	}
	if c.Simulator.ListenAddress == "" {
		c.Simulator.ListenAddress = d.Simulator.ListenAddress
	}
	if c.Simulator.MetricsPath == "" {
		c.Simulator.MetricsPath = d.Simulator.MetricsPath
	}
}

// Validate checks every name in the run selection.
func (c *Config) Validate() error {
	if _, err := c.Variants(); err != nil {
		return err
	}
	if _, err := c.Scenarios(); err != nil {
		return err
	}
	switch c.Run.Output {
	case "text", "pretty", "json":
	default:
		return vcp.ConfigErrorf("unknown output '%s', expected text, pretty or json", c.Run.Output)
	}
	if c.Run.Parallel < 0 || c.Run.MaxConcurrency < 0 {
		return vcp.ConfigErrorf("parallelism must not be negative")
	}
	return nil
}

// Variants returns the selected proof systems in the selected modes.
func (c *Config) Variants() ([]session.Variant, error) {
	systems := vcp.ProofSystems
	if len(c.Run.ProofSystems) > 0 {
		systems = nil
		for _, name := range c.Run.ProofSystems {
			ps, err := vcp.LookupProofSystem(name)
			if err != nil {
				return nil, err
			}
			systems = append(systems, ps)
		}
	}

	nonBlinded, blinded := len(c.Run.Modes) == 0, len(c.Run.Modes) == 0
	for _, m := range c.Run.Modes {
		switch strings.ToLower(m) {
		case "nonblinded":
			nonBlinded = true
		case "blinded":
			blinded = true
		default:
			return nil, vcp.ConfigErrorf("unknown mode '%s', expected NonBlinded or Blinded", m)
		}
	}

	var variants []session.Variant
	for _, ps := range systems {
		if nonBlinded {
			variants = append(variants, session.Variant{ProofSystem: ps})
		}
		if blinded {
			variants = append(variants, session.Variant{ProofSystem: ps, Blinded: true})
		}
	}
	return variants, nil
}

// Scenarios returns the selected scenarios.
func (c *Config) Scenarios() ([]session.Scenario, error) {
	if len(c.Run.Scenarios) == 0 {
		return session.Scenarios(), nil
	}
	var out []session.Scenario
	for _, name := range c.Run.Scenarios {
		sc, err := session.LookupScenario(name)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// BackendConfig returns the client configuration for one proof system.
func (c *Config) BackendConfig(address string, ps vcp.ProofSystem) backend.Config {
	return backend.Config{
		Address:              address,
		ZkpLib:               ps.Name,
		Timeout:              c.Backend.Timeout,
		MaxIdleConnsPerHost:  c.Backend.MaxIdleConnsPerHost,
		ProvingKeyCacheBytes: c.Backend.ProvingKeyCacheBytes,
	}
}
