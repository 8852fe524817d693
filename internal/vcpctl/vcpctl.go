/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vcpctl implements the vcpctl command, which drives the protocol
// scenarios against a proof backend and serves the backend simulator.
package vcpctl

import (
	"io"

	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var logger = flogging.MustGetLogger("vcpctl")

// flagKeys maps command line flags onto configuration keys. A flag only
// overrides the configuration when it is given.
var flagKeys = map[string]string{
	"address":         "backend.address",
	"timeout":         "backend.timeout",
	"proof-system":    "run.proofsystems",
	"mode":            "run.modes",
	"parallel":        "run.parallel",
	"max-concurrency": "run.maxconcurrency",
	"output":          "run.output",
	"metrics-file":    "run.metricsfile",
	"listen-address":  "simulator.listenaddress",
	"access-log":      "simulator.accesslog",
	"log-spec":        "logging.spec",
	"log-format":      "logging.format",
}

type env struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	viper      *viper.Viper
	conf       *Config
}

// NewCommand returns the vcpctl root command writing reports to out and
// logs and progress to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	e := &env{
		out:    out,
		errOut: errOut,
		viper:  viper.New(),
	}

	root := &cobra.Command{
		Use:   "vcpctl",
		Short: "Drive selective disclosure credential proofs against a VCP backend.",
		Long: "vcpctl issues test credentials, creates and verifies proofs of their attributes " +
			"and checks verifiable encryption, for every proof system and issuance mode.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.initialize(cmd.Flags())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&e.configPath, "config", "c", "", "Path to vcpctl.yaml. The config paths are searched when empty.")
	flags.String("log-spec", "", "Logging spec, e.g. info or vcp.backend=debug:warn.")
	flags.String("log-format", "", "Log format: json, logfmt or a console format string.")

	root.AddCommand(runCmd(e))
	root.AddCommand(variantsCmd(e))
	root.AddCommand(simulateCmd(e))
	return root
}

// initialize loads the configuration, applies the command line overrides and
// sets up logging.
func (e *env) initialize(flags *pflag.FlagSet) error {
	conf, err := Load(e.configPath)
	if err != nil {
		return err
	}

	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := e.viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	conf.override(e.viper)
	if err := conf.Validate(); err != nil {
		return err
	}
	e.conf = conf

	err = flogging.Global.Apply(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: conf.Logging.Spec,
		Writer:  e.errOut,
	})
	if err != nil {
		return errors.WithMessage(err, "invalid logging configuration")
	}
	logger.Debugf("configuration: %+v", *conf)
	return nil
}

func (c *Config) override(v *viper.Viper) {
	if v.IsSet("backend.address") {
		c.Backend.Address = v.GetString("backend.address")
	}
	if v.IsSet("backend.timeout") {
		c.Backend.Timeout = v.GetDuration("backend.timeout")
	}
	if v.IsSet("run.proofsystems") {
		c.Run.ProofSystems = v.GetStringSlice("run.proofsystems")
	}
	if v.IsSet("run.modes") {
		c.Run.Modes = v.GetStringSlice("run.modes")
	}
	if v.IsSet("run.parallel") {
		c.Run.Parallel = v.GetInt("run.parallel")
	}
	if v.IsSet("run.maxconcurrency") {
		c.Run.MaxConcurrency = v.GetInt("run.maxconcurrency")
	}
	if v.IsSet("run.output") {
		c.Run.Output = v.GetString("run.output")
	}
	if v.IsSet("run.metricsfile") {
		c.Run.MetricsFile = v.GetString("run.metricsfile")
	}
	if v.IsSet("simulator.listenaddress") {
		c.Simulator.ListenAddress = v.GetString("simulator.listenaddress")
	}
	if v.IsSet("simulator.accesslog") {
		c.Simulator.AccessLog = v.GetBool("simulator.accesslog")
	}
	if v.IsSet("logging.spec") {
		c.Logging.Spec = v.GetString("logging.spec")
	}
	if v.IsSet("logging.format") {
		c.Logging.Format = v.GetString("logging.format")
	}
}
