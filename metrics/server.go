package metrics

import (
	"errors"
	"net"
	"net/http"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Endpoint = "/metrics"

// Server exposes a prometheus gatherer over http.
type Server struct {
	service.BaseService
	addr     string
	gatherer prometheus.Gatherer
	server   *http.Server
	listener net.Listener
}

// NewServer returns a server for the default gatherer listening on addr.
func NewServer(logger log.Logger, addr string) *Server {
	return NewServerWithGatherer(logger, addr, prometheus.DefaultGatherer)
}

func NewServerWithGatherer(logger log.Logger, addr string, gatherer prometheus.Gatherer) *Server {
	s := &Server{addr: addr, gatherer: gatherer}
	s.BaseService = *service.NewBaseService(logger, "Metrics", s)
	return s
}

func (s *Server) OnStart() error {
	mux := http.NewServeMux()
	mux.Handle(Endpoint, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.server = &http.Server{Handler: mux}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.Logger.Info("prometheus metrics available", "listenAddr", listener.Addr().String(), "endpoint", Endpoint)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("metrics server failure", "err", err)
		}
	}()
	return nil
}

func (s *Server) OnStop() {
	s.server.Close()
}

// Addr returns the bound address, useful when listening on port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}
