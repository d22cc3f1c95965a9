package certinfo

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCertDER(t *testing.T, cn string, notBefore, notAfter time.Time, dns []string) []byte {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(0xabcd),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		DNSNames:     dns,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, pub, priv)
	require.NoError(t, err)
	return der
}

func toPEM(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func TestDecode_PEM(t *testing.T) {
	now := time.Now()
	der := testCertDER(t, "example.test", now.Add(-time.Hour), now.Add(24*time.Hour), []string{"example.test", "www.example.test"})

	res := Decode(toPEM(der))
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "Subject:      CN=example.test\n")
	assert.Contains(t, res.Output, "Serial:       abcd\n")
	assert.Contains(t, res.Output, "DNS names:    example.test, www.example.test\n")
	assert.Contains(t, res.Output, "Status:       valid (")
	assert.Contains(t, res.Output, "SHA-256:      ")
	assert.Equal(t, "1", res.Metadata["certificates"])
}

func TestDecode_BareBase64DER(t *testing.T) {
	now := time.Now()
	der := testCertDER(t, "bare.test", now.Add(-time.Hour), now.Add(time.Hour), nil)

	res := Decode(base64.StdEncoding.EncodeToString(der))
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "Subject:      CN=bare.test\n")
}

func TestDecode_MultiplePEMBlocks(t *testing.T) {
	now := time.Now()
	a := testCertDER(t, "a.test", now.Add(-time.Hour), now.Add(time.Hour), nil)
	b := testCertDER(t, "b.test", now.Add(-time.Hour), now.Add(time.Hour), nil)

	res := Decode(toPEM(a) + toPEM(b))
	require.True(t, res.Success, res.Err)

	assert.Contains(t, res.Output, "Certificate 1 of 2\n")
	assert.Contains(t, res.Output, "Certificate 2 of 2\n")
	assert.Equal(t, "2", res.Metadata["certificates"])
}

func TestDecode_ExpiredCert(t *testing.T) {
	now := time.Now()
	der := testCertDER(t, "old.test", now.Add(-48*time.Hour), now.Add(-24*time.Hour), nil)

	res := Decode(toPEM(der))
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "Status:       expired\n")
}

func TestDecode_NotYetValidCert(t *testing.T) {
	now := time.Now()
	der := testCertDER(t, "future.test", now.Add(24*time.Hour), now.Add(48*time.Hour), nil)

	res := Decode(toPEM(der))
	require.True(t, res.Success, res.Err)
	assert.Contains(t, res.Output, "Status:       not yet valid\n")
}

func TestDecode_Garbage(t *testing.T) {
	res := Decode("definitely not a certificate")
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "neither PEM nor base64 DER")
}

func TestDecode_PEMWithoutCertBlocks(t *testing.T) {
	block := string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}}))
	res := Decode(block)
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "no CERTIFICATE blocks")
}

func TestDecode_Empty(t *testing.T) {
	res := Decode("   ")
	require.False(t, res.Success)
	assert.Contains(t, res.Err, "empty input")
}
