package rpc

import (
	"errors"
	"net"
	"net/http"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

type RPC struct {
	service.BaseService
	config   Config
	apis     []ethrpc.API // List of APIs currently provided by the server
	handler  *ethrpc.Server
	server   *http.Server
	listener net.Listener
}

func NewRPC(config Config, logger log.Logger) *RPC {
	rpc := &RPC{config: config}
	rpc.BaseService = *service.NewBaseService(logger.With("module", "rpc"), "RPC", rpc)
	return rpc
}

// RegisterName exposes the public methods of receiver under namespace name.
// It has to be called before the server starts.
func (r *RPC) RegisterName(name string, receiver any) {
	r.apis = append(r.apis, ethrpc.API{Namespace: name, Service: receiver})
}

func (r *RPC) OnStart() error {
	bridgeLogs(r.Logger)

	// Initialize the server.
	r.handler = ethrpc.NewServer()

	// Register RPC services.
	for _, api := range r.apis {
		if err := r.handler.RegisterName(api.Namespace, api.Service); err != nil {
			return err
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/", r.handler)
	mux.Handle(r.config.WebsocketPath, r.handler.WebsocketHandler([]string{"*"}))

	r.server = &http.Server{
		Handler:           mux,
		ReadTimeout:       r.config.HTTPTimeouts.ReadTimeout,
		ReadHeaderTimeout: r.config.HTTPTimeouts.ReadHeaderTimeout,
		WriteTimeout:      r.config.HTTPTimeouts.WriteTimeout,
		IdleTimeout:       r.config.HTTPTimeouts.IdleTimeout,
	}

	r.Logger.Debug("try listening", "listenAddr", r.config.ListenAddress)
	// Start the server.
	listener, err := net.Listen("tcp", r.config.ListenAddress)
	if err != nil {
		return err
	}
	r.listener = listener
	r.Logger.Info("listening", "listenAddr", listener.Addr().String())
	go func() {
		if err := r.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.Logger.Error("rpc server failure", "err", err)
		}
	}()
	return nil
}

func (r *RPC) OnStop() {
	r.server.Close()
	r.handler.Stop()
}

// Addr returns the bound address, useful when listening on port 0.
func (r *RPC) Addr() string {
	if r.listener == nil {
		return r.config.ListenAddress
	}
	return r.listener.Addr().String()
}
