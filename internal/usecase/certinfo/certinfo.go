// Package certinfo decodes X.509 certificates and summarizes their fields.
package certinfo

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Decode accepts one or more PEM CERTIFICATE blocks, or a bare base64 DER
// certificate, and reports a summary per certificate.
func Decode(input string) domain.ToolResult {
	certs, err := parseCerts(strings.TrimSpace(input))
	if err != nil {
		return domain.Failf("%v", err)
	}
	return Summarize(certs, time.Now())
}

// Summarize renders a text report for a chain. now drives the validity flags.
func Summarize(certs []*x509.Certificate, now time.Time) domain.ToolResult {
	if len(certs) == 0 {
		return domain.Failf("no certificates to summarize")
	}

	var sb strings.Builder
	for i, c := range certs {
		if i > 0 {
			sb.WriteString("\n")
		}
		if len(certs) > 1 {
			fmt.Fprintf(&sb, "Certificate %d of %d\n", i+1, len(certs))
		}
		writeCert(&sb, c, now)
	}

	res := domain.Ok(sb.String())
	res = res.WithMeta("certificates", strconv.Itoa(len(certs)))
	return res
}

func parseCerts(input string) ([]*x509.Certificate, error) {
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	if strings.Contains(input, "-----BEGIN") {
		return parsePEM([]byte(input))
	}

	// Bare base64 DER, possibly wrapped across lines.
	compact := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, input)

	der, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("input is neither PEM nor base64 DER: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("parse DER certificate: %v", err)
	}
	return []*x509.Certificate{cert}, nil
}

func parsePEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate %d: %v", len(certs)+1, err)
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("no CERTIFICATE blocks found")
	}
	return certs, nil
}

func writeCert(sb *strings.Builder, c *x509.Certificate, now time.Time) {
	fmt.Fprintf(sb, "Subject:      %s\n", c.Subject.String())
	fmt.Fprintf(sb, "Issuer:       %s\n", c.Issuer.String())
	fmt.Fprintf(sb, "Serial:       %s\n", c.SerialNumber.Text(16))
	fmt.Fprintf(sb, "Not before:   %s\n", c.NotBefore.UTC().Format(time.RFC3339))
	fmt.Fprintf(sb, "Not after:    %s\n", c.NotAfter.UTC().Format(time.RFC3339))
	fmt.Fprintf(sb, "Status:       %s\n", validity(c, now))
	fmt.Fprintf(sb, "Key:          %s\n", c.PublicKeyAlgorithm)
	fmt.Fprintf(sb, "Signature:    %s\n", c.SignatureAlgorithm)
	fmt.Fprintf(sb, "Is CA:        %t\n", c.IsCA)

	if len(c.DNSNames) > 0 {
		fmt.Fprintf(sb, "DNS names:    %s\n", strings.Join(c.DNSNames, ", "))
	}
	if len(c.IPAddresses) > 0 {
		ips := make([]string, len(c.IPAddresses))
		for i, ip := range c.IPAddresses {
			ips[i] = ip.String()
		}
		fmt.Fprintf(sb, "IP addrs:     %s\n", strings.Join(ips, ", "))
	}

	sum1 := sha1.Sum(c.Raw)
	sum256 := sha256.Sum256(c.Raw)
	fmt.Fprintf(sb, "SHA-1:        %s\n", fingerprint(sum1[:]))
	fmt.Fprintf(sb, "SHA-256:      %s\n", fingerprint(sum256[:]))
}

func validity(c *x509.Certificate, now time.Time) string {
	switch {
	case now.Before(c.NotBefore):
		return "not yet valid"
	case now.After(c.NotAfter):
		return "expired"
	default:
		days := int(c.NotAfter.Sub(now).Hours() / 24)
		return fmt.Sprintf("valid (%d days remaining)", days)
	}
}

func fingerprint(sum []byte) string {
	hexed := hex.EncodeToString(sum)
	parts := make([]string, 0, len(hexed)/2)
	for i := 0; i+1 < len(hexed); i += 2 {
		parts = append(parts, strings.ToUpper(hexed[i:i+2]))
	}
	return strings.Join(parts, ":")
}
