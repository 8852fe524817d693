/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/hyperledger/fabric-vcp/common/metrics"
	"github.com/hyperledger/fabric-vcp/common/metrics/disabled"
	"github.com/hyperledger/fabric-vcp/vcp"
	"github.com/pkg/errors"
)

var logger = flogging.MustGetLogger("vcp.backend")

// maxLoggedBody bounds the request and response bodies written to debug logs.
const maxLoggedBody = 256

// Config configures a backend handle.
type Config struct {
	// Address is the base URL of the proof backend, e.g. http://localhost:8080.
	Address string `mapstructure:"address"`
	// ZkpLib names the proof system every request is sent for.
	ZkpLib string `mapstructure:"zkpLib"`
	// Timeout bounds a single request. Zero means requests are only bounded
	// by the caller's context; proof creation can take minutes.
	Timeout time.Duration `mapstructure:"timeout"`
	// MaxIdleConnsPerHost is passed to the HTTP transport.
	MaxIdleConnsPerHost int `mapstructure:"maxIdleConnsPerHost"`
	// ProvingKeyCacheBytes enables caching of proving keys when positive.
	ProvingKeyCacheBytes int `mapstructure:"provingKeyCacheBytes"`
}

type Option func(*Client)

func WithMetricsProvider(p metrics.Provider) Option {
	return func(c *Client) { c.metrics = NewMetrics(p) }
}

func WithClock(clk clock.Clock) Option {
	return func(c *Client) { c.clock = clk }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// Client is a handle on one proof backend and one proof system. It is safe
// for concurrent use. Handles derived with Seeded share the transport, the
// metrics and the proving key cache.
type Client struct {
	base    *url.URL
	system  vcp.ProofSystem
	seed    uint64
	timeout time.Duration
	http    *http.Client
	clock   clock.Clock
	metrics *Metrics
	keys    *keyCache
}

// New validates the configuration and creates a handle.
func New(conf Config, opts ...Option) (*Client, error) {
	if conf.Address == "" {
		return nil, vcp.ConfigErrorf("backend address must be set")
	}
	base, err := url.Parse(conf.Address)
	if err != nil {
		return nil, vcp.ConfigErrorf("invalid backend address '%s': %s", conf.Address, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, vcp.ConfigErrorf("invalid backend address '%s': expected http(s)://host[:port]", conf.Address)
	}
	system, err := vcp.LookupProofSystem(conf.ZkpLib)
	if err != nil {
		return nil, err
	}
	if conf.Timeout < 0 {
		return nil, vcp.ConfigErrorf("backend timeout must not be negative")
	}

	c := &Client{
		base:    base,
		system:  system,
		timeout: conf.Timeout,
		http: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: conf.MaxIdleConnsPerHost,
			},
		},
		clock: clock.NewClock(),
		keys:  newKeyCache(conf.ProvingKeyCacheBytes),
	}
	for _, o := range opts {
		o(c)
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(&disabled.Provider{})
	}
	return c, nil
}

// Seeded returns a handle that sends seed to every randomized operation.
// Equal seeds make the backend produce equal key material.
func (c *Client) Seeded(seed uint64) *Client {
	cp := *c
	cp.seed = seed
	return &cp
}

func (c *Client) Seed() uint64 { return c.seed }

func (c *Client) ProofSystem() vcp.ProofSystem { return c.system }

func (c *Client) endpoint(op string, seeded bool) string {
	q := url.Values{}
	q.Set("zkpLib", c.system.Name)
	if seeded {
		q.Set("rngSeed", strconv.FormatUint(c.seed, 10))
	}
	u := *c.base
	u.Path = singleJoin(u.Path, "/vcp/"+op)
	u.RawQuery = q.Encode()
	return u.String()
}

func singleJoin(base, suffix string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + suffix
}

// call sends in to op, with an empty body when in is nil, and decodes the
// result into out. Every failure is returned as a *vcp.BackendError.
func (c *Client) call(ctx context.Context, method, op string, seeded bool, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &vcp.BackendError{Op: op, Err: errors.Wrap(err, "failed to encode request")}
		}
		logger.Debugf("%s request: %s", op, loggable(b))
		body = bytes.NewReader(b)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(op, seeded), body)
	if err != nil {
		return &vcp.BackendError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	lib := c.system.Name
	inflight := c.metrics.Inflight.With("zkp_lib", lib)
	inflight.Add(1)
	start := c.clock.Now()
	defer func() {
		inflight.Add(-1)
		c.metrics.RequestDuration.With("operation", op, "zkp_lib", lib).Observe(c.clock.Since(start).Seconds())
	}()

	resp, err := c.http.Do(req)
	if err != nil {
		c.count(op, outcomeTransport)
		return &vcp.BackendError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.count(op, outcomeTransport)
		return &vcp.BackendError{Op: op, Code: resp.StatusCode, Err: errors.Wrap(err, "failed to read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.count(op, outcomeRejected)
		be := &vcp.BackendError{Op: op, Code: resp.StatusCode}
		var eb ErrorBody
		if err := json.Unmarshal(raw, &eb); err == nil && eb.Reason != "" {
			be.Reason = eb.Reason
			be.Location = eb.Location
		} else {
			be.Reason = flogging.Truncate(string(bytes.TrimSpace(raw)), maxLoggedBody)
		}
		logger.Debugf("%s rejected: %s", op, be)
		return be
	}

	logger.Debugf("%s response: %s", op, loggable(raw))
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			c.count(op, outcomeTransport)
			return &vcp.BackendError{Op: op, Code: resp.StatusCode, Err: errors.Wrap(err, "malformed response")}
		}
	}
	c.count(op, outcomeOK)
	return nil
}

func (c *Client) count(op, outcome string) {
	c.metrics.Requests.With("operation", op, "zkp_lib", c.system.Name, "outcome", outcome).Add(1)
}

func (c *Client) CreateSignerData(ctx context.Context, claimTypes []vcp.ClaimType, blinded []vcp.CredAttrIndex) (*vcp.SignerData, error) {
	if blinded == nil {
		blinded = []vcp.CredAttrIndex{}
	}
	sd := &vcp.SignerData{}
	err := c.call(ctx, http.MethodPost, vcp.OpCreateSignerData, true, CreateSignerDataRequest{
		ClaimTypes:              claimTypes,
		BlindedAttributeIndices: blinded,
	}, sd)
	if err != nil {
		return nil, err
	}
	return sd, nil
}

func (c *Client) Sign(ctx context.Context, values []vcp.DataValue, sd *vcp.SignerData) (vcp.Signature, error) {
	var sig vcp.Signature
	err := c.call(ctx, http.MethodPost, vcp.OpSign, true, SignRequest{Values: values, SignerData: *sd}, &sig)
	return sig, err
}

func (c *Client) CreateBlindSigningInfo(ctx context.Context, spd *vcp.SignerPublicData, blinded []vcp.CredAttrIndexAndDataValue) (*vcp.BlindSigningInfo, error) {
	info := &vcp.BlindSigningInfo{}
	err := c.call(ctx, http.MethodPost, vcp.OpCreateBlindSigningInfo, true, CreateBlindSigningInfoRequest{
		SignerPublicData:        *spd,
		BlindedIndicesAndValues: blinded,
	}, info)
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (c *Client) SignWithBlindedAttributes(ctx context.Context, sd *vcp.SignerData, nonBlinded []vcp.CredAttrIndexAndDataValue, info vcp.BlindInfoForSigner) (vcp.BlindSignature, error) {
	var sig vcp.BlindSignature
	err := c.call(ctx, http.MethodPost, vcp.OpSignWithBlindedAttributes, true, SignWithBlindedAttributesRequest{
		SignerData:           *sd,
		BlindInfoForSigner:   info,
		NonBlindedAttributes: nonBlinded,
	}, &sig)
	return sig, err
}

func (c *Client) UnblindBlindedSignature(ctx context.Context, claimTypes []vcp.ClaimType, blinded []vcp.CredAttrIndexAndDataValue, info vcp.InfoForUnblinding, sig vcp.BlindSignature) (vcp.Signature, error) {
	var out vcp.Signature
	err := c.call(ctx, http.MethodPost, vcp.OpUnblindBlindedSignature, false, UnblindBlindedSignatureRequest{
		ClaimTypes:              claimTypes,
		BlindedIndicesAndValues: blinded,
		InfoForUnblinding:       info,
		BlindSignature:          sig,
	}, &out)
	return out, err
}

func (c *Client) CreateAccumulatorData(ctx context.Context) (*vcp.CreateAccumulatorResponse, error) {
	out := &vcp.CreateAccumulatorResponse{}
	if err := c.call(ctx, http.MethodPost, vcp.OpCreateAccumulatorData, true, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAccumulatorElement(ctx context.Context, value string) (vcp.AccumulatorElement, error) {
	var elem vcp.AccumulatorElement
	err := c.call(ctx, http.MethodPost, vcp.OpCreateAccumulatorElement, false, value, &elem)
	return elem, err
}

func (c *Client) AccumulatorAddRemove(ctx context.Context, data vcp.AccumulatorData, acc vcp.Accumulator, additions map[vcp.HolderID]vcp.AccumulatorElement, removals []vcp.AccumulatorElement) (*vcp.AccumulatorAddRemoveResponse, error) {
	if additions == nil {
		additions = map[vcp.HolderID]vcp.AccumulatorElement{}
	}
	if removals == nil {
		removals = []vcp.AccumulatorElement{}
	}
	out := &vcp.AccumulatorAddRemoveResponse{}
	err := c.call(ctx, http.MethodPost, vcp.OpAccumulatorAddRemove, false, AccumulatorAddRemoveRequest{
		AccumulatorData: data,
		Accumulator:     acc,
		Additions:       additions,
		Removals:        removals,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAccumulatorWitness(ctx context.Context, data vcp.AccumulatorData, acc vcp.Accumulator, elem vcp.AccumulatorElement) (vcp.AccumulatorMembershipWitness, error) {
	var w vcp.AccumulatorMembershipWitness
	err := c.call(ctx, http.MethodPost, vcp.OpGetAccumulatorWitness, false, GetAccumulatorWitnessRequest{
		AccumulatorData:    data,
		Accumulator:        acc,
		AccumulatorElement: elem,
	}, &w)
	return w, err
}

func (c *Client) UpdateAccumulatorWitness(ctx context.Context, w vcp.AccumulatorMembershipWitness, elem vcp.AccumulatorElement, info vcp.AccumulatorWitnessUpdateInfo) (vcp.AccumulatorMembershipWitness, error) {
	var out vcp.AccumulatorMembershipWitness
	err := c.call(ctx, http.MethodPost, vcp.OpUpdateAccumulatorWitness, false, UpdateAccumulatorWitnessRequest{
		Witness:           w,
		Element:           elem,
		WitnessUpdateInfo: info,
	}, &out)
	return out, err
}

func (c *Client) CreateMembershipProvingKey(ctx context.Context) (vcp.MembershipProvingKey, error) {
	k, err := c.provingKey(ctx, vcp.OpCreateMembershipProvingKey)
	return vcp.MembershipProvingKey(k), err
}

func (c *Client) CreateRangeProofProvingKey(ctx context.Context) (vcp.RangeProofProvingKey, error) {
	k, err := c.provingKey(ctx, vcp.OpCreateRangeProofProvingKey)
	return vcp.RangeProofProvingKey(k), err
}

func (c *Client) provingKey(ctx context.Context, op string) (string, error) {
	lib := c.system.Name
	if k, ok := c.keys.get(lib, op, c.seed); ok {
		c.metrics.KeyCache.With("operation", op, "result", "hit").Add(1)
		return k, nil
	}
	var k string
	if err := c.call(ctx, http.MethodPost, op, true, nil, &k); err != nil {
		return "", err
	}
	if c.keys != nil {
		c.metrics.KeyCache.With("operation", op, "result", "miss").Add(1)
		c.keys.put(lib, op, c.seed, k)
	}
	return k, nil
}

func (c *Client) GetRangeProofMaxValue(ctx context.Context) (uint64, error) {
	var maxValue uint64
	err := c.call(ctx, http.MethodGet, vcp.OpGetRangeProofMaxValue, false, nil, &maxValue)
	return maxValue, err
}

func (c *Client) CreateAuthorityData(ctx context.Context) (*vcp.AuthorityData, error) {
	out := &vcp.AuthorityData{}
	if err := c.call(ctx, http.MethodPost, vcp.OpCreateAuthorityData, true, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProof(
	ctx context.Context,
	reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
	shared map[vcp.SharedParamKey]vcp.SharedParamValue,
	sigs map[vcp.CredentialLabel]vcp.SignatureAndRelatedData,
	nonce string,
) (*vcp.WarningsAndDataForVerifier, error) {
	out := &vcp.WarningsAndDataForVerifier{}
	err := c.call(ctx, http.MethodPost, vcp.OpCreateProof, false, CreateProofRequest{
		ProofReqs:          reqs,
		SharedParams:       shared,
		SigsAndRelatedData: sigs,
		Nonce:              nonce,
	}, out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) VerifyProof(
	ctx context.Context,
	reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
	shared map[vcp.SharedParamKey]vcp.SharedParamValue,
	dfv vcp.DataForVerifier,
	decryptRequests vcp.DecryptRequests,
	nonce string,
) (*vcp.WarningsAndDecryptResponses, error) {
	var resp VerifyProofResponse
	err := c.call(ctx, http.MethodPost, vcp.OpVerifyProof, false, VerifyProofRequest{
		ProofReqs:       reqs,
		SharedParams:    shared,
		DataForVerifier: dfv,
		DecryptRequests: decryptRequests.Nest(),
		Nonce:           nonce,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &vcp.WarningsAndDecryptResponses{
		Warnings:         resp.Warnings,
		DecryptResponses: vcp.DecryptResponses(resp.DecryptResponses.Flatten()),
	}, nil
}

// VerifyDecryption asks the backend to check the decryption proofs of
// responses. Decryption keys travel JSON quoted.
func (c *Client) VerifyDecryption(
	ctx context.Context,
	reqs map[vcp.CredentialLabel]vcp.CredentialReqs,
	shared map[vcp.SharedParamKey]vcp.SharedParamValue,
	proof vcp.Proof,
	keys map[vcp.AuthorityLabel]vcp.AuthorityDecryptionKey,
	responses vcp.DecryptResponses,
	nonce string,
) ([]vcp.Warning, error) {
	quoted := make(map[vcp.AuthorityLabel]string, len(keys))
	for auth, k := range keys {
		q, err := json.Marshal(string(k))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to quote decryption key of '%s'", auth)
		}
		quoted[auth] = string(q)
	}
	var warnings []vcp.Warning
	err := c.call(ctx, http.MethodPost, vcp.OpVerifyDecryption, false, VerifyDecryptionRequest{
		ProofReqs:        reqs,
		SharedParams:     shared,
		Proof:            proof,
		DecryptionKeys:   quoted,
		DecryptResponses: responses.Nest(),
		Nonce:            nonce,
	}, &warnings)
	if err != nil {
		return nil, err
	}
	return warnings, nil
}
