package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/envoyproxy/go-control-plane/pkg/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var ErrNoTLSConfig = errors.New("tls listener requested without tls config")

func NewServer(logger log.Logger, handler http.Handler, options ...func(s *Server)) *Server {
	s := &Server{
		logger: logger,
		server: &http.Server{
			Handler:  handler,
			ErrorLog: newErrorLog(logger),
		},
	}
	for _, o := range options {
		o(s)
	}
	return s
}

func TLSConfig(config *tls.Config) func(s *Server) {
	return func(s *Server) { s.tlsConfig = config }
}

// Server runs one http.Server over any number of plaintext and TLS listeners.
type Server struct {
	logger    log.Logger
	server    *http.Server
	tlsConfig *tls.Config
}

// Serve blocks until ln fails or the server is shut down, in which case it
// returns nil.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) ServeTLS(ln net.Listener) error {
	if s.tlsConfig == nil {
		return ErrNoTLSConfig
	}
	return s.Serve(tls.NewListener(ln, s.tlsConfig))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run serves plain and, if not nil, secure until ctx is done or one of them
// fails. Both listeners are closed when Run returns.
func (s *Server) Run(ctx context.Context, plain, secure net.Listener) error {
	if secure != nil && s.tlsConfig == nil {
		plain.Close()
		secure.Close()
		return ErrNoTLSConfig
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Serve(plain)
	})
	if secure != nil {
		g.Go(func() error {
			return s.ServeTLS(secure)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(sctx); err != nil {
			s.logger.Errorf("shutdown error %+v", err)
		}
		return nil
	})

	err := g.Wait()
	s.logger.Infof("server stopped")
	return err
}
