/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package simulator

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/hyperledger/fabric-vcp/common/flogging"
	"github.com/pkg/errors"
)

type Options struct {
	ListenAddress string
	// AccessLog receives one combined log format line per request when set.
	AccessLog io.Writer
}

// Server serves a Simulator over HTTP.
type Server struct {
	logger     *flogging.Logger
	options    Options
	mux        *http.ServeMux
	httpServer *http.Server
	listener   net.Listener
}

func NewServer(o Options, sim *Simulator) *Server {
	server := &Server{
		logger:  flogging.MustGetLogger("vcp.simulator.server"),
		options: o,
		mux:     http.NewServeMux(),
	}
	server.mux.Handle(URLBase, sim.Handler())

	var h http.Handler = server.mux
	if o.AccessLog != nil {
		h = handlers.CombinedLoggingHandler(o.AccessLog, h)
	}
	server.httpServer = &http.Server{
		Addr:              o.ListenAddress,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server
}

// RegisterHandler serves h next to the simulator, e.g. a metrics endpoint.
func (s *Server) RegisterHandler(pattern string, h http.Handler) {
	s.mux.Handle(pattern, h)
}

func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", s.options.ListenAddress)
	}
	s.listener = listener

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("simulator server stopped: %s", err)
		}
	}()
	s.logger.Infof("simulator listening on %s", listener.Addr())
	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listen address, which is only known after Start when
// the configured port is 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.options.ListenAddress
	}
	return s.listener.Addr().String()
}
