/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package simulator is a deterministic stand-in for the VCP proof backend. It
// speaks the backend's REST protocol and enforces the protocol's consistency
// rules over plain digests. It performs no cryptography and proves nothing.
package simulator

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/common/metrics"
	"github.com/hyperledger/fabric-vcp/common/metrics/disabled"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/hyperledger/fabric-vcp/vcp/backend"
	"github.com/pkg/errors"
)

const URLBase = "/vcp/"

// RangeProofMaxValue is the largest bound the simulated range proofs accept.
const RangeProofMaxValue uint64 = 1<<32 - 1

type request struct {
	system vcp.ProofSystem
	seed   uint64
	body   []byte
}

func (r *request) decode(op string, v interface{}) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return errors.Errorf("Parse(%q)", op+": "+err.Error())
	}
	return nil
}

type operation func(r *request) (interface{}, error)

var operationsCounterOpts = metrics.CounterOpts{
	Namespace:  "vcp",
	Subsystem:  "simulator",
	Name:       "operations_total",
	Help:       "The number of operations served by the simulator, by outcome.",
	LabelNames: []string{"operation", "zkp_lib", "outcome"},
}

// Simulator serves the backend operations.
type Simulator struct {
	logger     *flogging.Logger
	router     *mux.Router
	operations metrics.Counter

	mutex sync.Mutex
	calls map[string]int
}

type Option func(*Simulator)

// WithMetricsProvider counts served operations with p.
func WithMetricsProvider(p metrics.Provider) Option {
	return func(s *Simulator) { s.operations = p.NewCounter(operationsCounterOpts) }
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		logger: flogging.MustGetLogger("vcp.simulator"),
		router: mux.NewRouter(),
		calls:  map[string]int{},
	}
	for _, o := range opts {
		o(s)
	}
	if s.operations == nil {
		s.operations = (&disabled.Provider{}).NewCounter(operationsCounterOpts)
	}

	ops := map[string]operation{
		vcp.OpCreateSignerData:           s.createSignerData,
		vcp.OpSign:                       s.sign,
		vcp.OpCreateBlindSigningInfo:     s.createBlindSigningInfo,
		vcp.OpSignWithBlindedAttributes:  s.signWithBlindedAttributes,
		vcp.OpUnblindBlindedSignature:    s.unblindBlindedSignature,
		vcp.OpCreateAccumulatorData:      s.createAccumulatorData,
		vcp.OpCreateAccumulatorElement:   s.createAccumulatorElement,
		vcp.OpAccumulatorAddRemove:       s.accumulatorAddRemove,
		vcp.OpGetAccumulatorWitness:      s.getAccumulatorWitness,
		vcp.OpUpdateAccumulatorWitness:   s.updateAccumulatorWitness,
		vcp.OpCreateMembershipProvingKey: s.createMembershipProvingKey,
		vcp.OpCreateRangeProofProvingKey: s.createRangeProofProvingKey,
		vcp.OpCreateAuthorityData:        s.createAuthorityData,
		vcp.OpCreateProof:                s.createProof,
		vcp.OpVerifyProof:                s.verifyProof,
		vcp.OpVerifyDecryption:           s.verifyDecryption,
	}
	for op, fn := range ops {
		s.router.HandleFunc(URLBase+op, s.serve(op, fn)).Methods(http.MethodPost)
	}
	s.router.HandleFunc(URLBase+vcp.OpGetRangeProofMaxValue, s.serve(vcp.OpGetRangeProofMaxValue, s.getRangeProofMaxValue)).Methods(http.MethodGet)
	s.router.NotFoundHandler = http.HandlerFunc(s.serveNotFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(s.serveNotAllowed)

	return s
}

// Handler returns the simulator's HTTP handler. Panics in an operation are
// logged and answered with status 500.
func (s *Simulator) Handler() http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{s.logger}),
	)(s.router)
}

// Calls reports how many requests op has received.
func (s *Simulator) Calls(op string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.calls[op]
}

func (s *Simulator) serve(op string, fn operation) http.HandlerFunc {
	return func(resp http.ResponseWriter, req *http.Request) {
		s.mutex.Lock()
		s.calls[op]++
		s.mutex.Unlock()

		r, err := parseRequest(req)
		if err != nil {
			s.operations.With("operation", op, "zkp_lib", "", "outcome", "bad_request").Add(1)
			s.sendResponseJsonError(resp, http.StatusBadRequest, op, err)
			return
		}
		out, err := fn(r)
		if err != nil {
			s.logger.Debugf("%s failed for %s: %s", op, r.system.Name, err)
			s.operations.With("operation", op, "zkp_lib", r.system.Name, "outcome", "rejected").Add(1)
			s.sendResponseJsonError(resp, http.StatusBadRequest, op, err)
			return
		}
		s.operations.With("operation", op, "zkp_lib", r.system.Name, "outcome", "ok").Add(1)
		s.sendResponseOK(resp, out)
	}
}

func parseRequest(req *http.Request) (*request, error) {
	q := req.URL.Query()
	name := q.Get("zkpLib")
	if name == "" {
		return nil, errors.New(`General("missing zkpLib query parameter")`)
	}
	system, err := vcp.LookupProofSystem(name)
	if err != nil {
		return nil, errors.Errorf("UnknownZkpLib(%q)", name)
	}
	r := &request{system: system}
	if seed := q.Get("rngSeed"); seed != "" {
		r.seed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, general("invalid rngSeed '%s'", seed)
		}
	}
	r.body, err = io.ReadAll(req.Body)
	if err != nil {
		return nil, general("failed to read request body: %s", err)
	}
	return r, nil
}

func (s *Simulator) serveNotFound(resp http.ResponseWriter, req *http.Request) {
	s.sendResponseJsonError(resp, http.StatusNotFound, req.URL.Path, errors.Errorf("no such operation %s", req.URL.Path))
}

func (s *Simulator) serveNotAllowed(resp http.ResponseWriter, req *http.Request) {
	resp.Header().Set("Allow", "GET, POST")
	s.sendResponseJsonError(resp, http.StatusMethodNotAllowed, req.URL.Path, errors.Errorf("invalid request method: %s", req.Method))
}

func (s *Simulator) sendResponseJsonError(resp http.ResponseWriter, code int, location string, err error) {
	encoder := json.NewEncoder(resp)
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	if err := encoder.Encode(&backend.ErrorBody{Reason: err.Error(), Location: location}); err != nil {
		s.logger.Errorf("failed to encode error, err: %s", err)
	}
}

func (s *Simulator) sendResponseOK(resp http.ResponseWriter, content interface{}) {
	encoder := json.NewEncoder(resp)
	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(http.StatusOK)
	if err := encoder.Encode(content); err != nil {
		s.logger.Errorf("failed to encode content, err: %s", err)
	}
}

type recoveryLogger struct {
	logger *flogging.Logger
}

func (r recoveryLogger) Println(args ...interface{}) {
	r.logger.Error(args...)
}
