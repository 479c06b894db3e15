package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/azure-identities/identities-api/internal/healthcheck"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config  *Config
	health  *healthcheck.Registry
	handler http.Handler

	httpServer  *http.Server
	httpsServer *http.Server
}

func New(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}

	health := healthcheck.NewRegistry()
	handler := SetupRoutes(&RouteConfig{
		Environment:   config.Environment,
		HTTPSRedirect: config.HTTP.HTTPSRedirect,
		RedirectHost:  config.HTTP.redirectHost(),
		Health:        health,
	})

	s := &Server{
		config:  config,
		health:  health,
		handler: handler,
		httpServer: &http.Server{
			Addr:              config.HTTP.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
	if config.HTTP.TLSEnabled() {
		s.httpsServer = &http.Server{
			Addr:              config.HTTP.HTTPSAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}
	return s, nil
}

// Health returns the registry behind /health/ready. Checks registered before
// Start take part in every readiness probe.
func (s *Server) Health() *healthcheck.Registry {
	return s.health
}

// Start binds the listeners and serves until ctx is done or a listener fails.
func (s *Server) Start(ctx context.Context) error {
	startedAt := time.Now()
	slog.Info("server start", "environment", s.config.Environment.Name())
	defer func() {
		slog.Info("server stop", "started", humanize.Time(startedAt))
	}()

	if !s.config.HTTP.TLSEnabled() && s.config.HTTP.HTTPSRedirect {
		slog.Warn("https redirect enabled without a tls listener, relying on a terminating proxy")
	}

	httpLn, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", s.httpServer.Addr, err)
	}

	var httpsLn net.Listener
	if s.httpsServer != nil {
		httpsLn, err = net.Listen("tcp", s.httpsServer.Addr)
		if err != nil {
			httpLn.Close()
			return fmt.Errorf("listen https %s: %w", s.httpsServer.Addr, err)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		slog.Info("server start http", "addr", httpLn.Addr().String())
		if err := s.httpServer.Serve(httpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	if httpsLn != nil {
		eg.Go(func() error {
			slog.Info("server start tls", "addr", httpsLn.Addr().String(), "cert", s.config.HTTP.CertFile, "key", s.config.HTTP.KeyFile)
			err := s.httpsServer.ServeTLS(httpsLn, s.config.HTTP.CertFile, s.config.HTTP.KeyFile)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve https: %w", err)
			}
			return nil
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("server shutdown signal")
		return s.Stop()
	})

	return eg.Wait()
}

// Stop shuts the servers down, waiting at most shutdownTimeout for in-flight requests.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	if s.httpsServer != nil {
		if err := s.httpsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown https: %w", err))
		}
	}
	return errors.Join(errs...)
}
