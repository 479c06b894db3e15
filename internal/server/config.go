package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/azure-identities/identities-api/internal/hostenv"
)

const (
	DefaultAddr      = "localhost:5000"
	DefaultHTTPSAddr = "localhost:5001"
)

var (
	ErrEmptyAddr        = errors.New("http addr is empty")
	ErrIncompleteTLS    = errors.New("cert_file and key_file must be set together")
	ErrEmptyHTTPSAddr   = errors.New("https addr is empty while tls is configured")
	ErrInvalidBindAddr  = errors.New("invalid bind address")
	ErrSameListenerAddr = errors.New("http and https addr must differ")
)

type Config struct {
	Environment hostenv.Environment
	HTTP        HTTPConfig
}

type HTTPConfig struct {
	Addr          string // plaintext listener
	HTTPSAddr     string // tls listener, used only when CertFile and KeyFile are set
	CertFile      string
	KeyFile       string
	RedirectHost  string // host[:port] used in https redirects, derived when empty
	HTTPSRedirect bool
}

// TLSEnabled reports whether the https listener should be started.
func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return ErrEmptyAddr
	}
	if _, _, err := net.SplitHostPort(c.HTTP.Addr); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidBindAddr, c.HTTP.Addr, err)
	}

	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return ErrIncompleteTLS
	}

	if c.HTTP.TLSEnabled() {
		if c.HTTP.HTTPSAddr == "" {
			return ErrEmptyHTTPSAddr
		}
		if _, _, err := net.SplitHostPort(c.HTTP.HTTPSAddr); err != nil {
			return fmt.Errorf("%w %q: %w", ErrInvalidBindAddr, c.HTTP.HTTPSAddr, err)
		}
		if c.HTTP.HTTPSAddr == c.HTTP.Addr {
			return ErrSameListenerAddr
		}
	}
	return nil
}

// redirectHost returns the host https redirects point at. An explicit
// RedirectHost wins; otherwise the tls listener address is used when it names
// a concrete host. An empty result keeps the request host.
func (c *HTTPConfig) redirectHost() string {
	if c.RedirectHost != "" {
		return c.RedirectHost
	}
	if !c.TLSEnabled() {
		return ""
	}

	host, port, err := net.SplitHostPort(c.HTTPSAddr)
	if err != nil || host == "" {
		return ""
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		return ""
	}
	if port == "443" {
		return host
	}
	return c.HTTPSAddr
}
