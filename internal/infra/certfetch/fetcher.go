// Package certfetch retrieves the certificate chain a TLS server presents.
//
// Verification is intentionally disabled: the point of the lookup is to
// inspect whatever the server sends, expired or mismatched included.
package certfetch

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net"
	"strings"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const defaultTimeout = 10 * time.Second

type Fetcher struct {
	timeout time.Duration
}

type Option func(*Fetcher)

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.CertFetcher = (*Fetcher)(nil)

// FetchPeerChain performs a TLS handshake against addr and returns the peer
// chain. addr without a port defaults to :443.
func (f *Fetcher) FetchPeerChain(ctx context.Context, addr string) ([]*x509.Certificate, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, &domain.OpError{
			Op:   "certfetch.fetch",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrInvalidInput,
		}
	}
	if !strings.Contains(addr, ":") {
		addr += ":443"
	}

	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "certfetch.fetch",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true, //nolint:gosec // inspection, not trust
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "certfetch.fetch",
			Kind: domain.KindExecution,
			Path: addr,
			Err:  err,
		}
	}
	defer func() { _ = conn.Close() }()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, &domain.OpError{
			Op:   "certfetch.fetch",
			Kind: domain.KindNotFound,
			Path: addr,
			Err:  domain.ErrNotFound,
		}
	}
	return state.PeerCertificates, nil
}
