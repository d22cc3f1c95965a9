package ports

import (
	"context"
	"crypto/x509"
)

// CertFetcher retrieves the certificate chain a TLS server presents.
type CertFetcher interface {
	FetchPeerChain(ctx context.Context, addr string) ([]*x509.Certificate, error)
}
