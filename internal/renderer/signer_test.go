package renderer

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSigningPair writes a throwaway self-signed certificate and PKCS#8 key.
func writeSigningPair(t *testing.T) (certPath, keyPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "Certificate Generation Team"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certPath = filepath.Join(dir, "signing.crt")
	keyPath = filepath.Join(dir, "signing.key")
	require.NoError(t, os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8}), 0o600))
	return certPath, keyPath
}

func TestNewCertificateSigner_Disabled(t *testing.T) {
	signer, err := NewCertificateSigner(false, "", "")
	require.NoError(t, err)
	assert.False(t, signer.IsEnabled())

	input := []byte("%PDF-1.3 unsigned")
	out, err := signer.SignPDF(input, "cert-1-abcdefghi")
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestNewCertificateSigner_MissingPaths(t *testing.T) {
	_, err := NewCertificateSigner(true, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestNewCertificateSigner_BadFiles(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.pem")
	require.NoError(t, os.WriteFile(garbage, []byte("not pem"), 0o600))

	_, err := NewCertificateSigner(true, filepath.Join(dir, "absent.crt"), garbage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read certificate file")

	_, err = NewCertificateSigner(true, garbage, garbage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode certificate PEM")
}

func TestCertificateSigner_SignRenderedDocument(t *testing.T) {
	certPath, keyPath := writeSigningPair(t)

	signer, err := NewCertificateSigner(true, certPath, keyPath)
	require.NoError(t, err)
	require.True(t, signer.IsEnabled())

	renderer := NewDocumentRenderer(signer)
	path := filepath.Join(t.TempDir(), "cert-1-abcdefghi.pdf")
	require.NoError(t, renderer.Render(BuildLayout(sampleData()), path, "cert-1-abcdefghi"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
}

func TestCertificateSigner_EmptyInput(t *testing.T) {
	certPath, keyPath := writeSigningPair(t)

	signer, err := NewCertificateSigner(true, certPath, keyPath)
	require.NoError(t, err)

	_, err = signer.SignPDF(nil, "cert-1-abcdefghi")
	require.Error(t, err)
}
