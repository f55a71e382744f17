package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
)

const (
	signerName     = "Certificate Generation Team"
	signerLocation = "Certificate of Completion Service"
)

// CertificateSigner applies a certification signature to rendered documents.
// The zero value is a disabled signer.
type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewCertificateSigner(enabled bool, certPath, keyPath string) (*CertificateSigner, error) {
	if !enabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{}, nil
	}

	if certPath == "" || keyPath == "" {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certificate, err := loadCertificate(certPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey(keyPath)
	if err != nil {
		return nil, err
	}

	slog.Info("Certificate signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func loadCertificate(path string) (*x509.Certificate, error) {
	certPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", path, err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", path)
	}

	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return certificate, nil
}

// loadPrivateKey accepts PKCS#1 and PKCS#8 encoded RSA keys.
func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	keyPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", path, err)
	}

	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", path)
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA format")
	}
	return rsaKey, nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s != nil && s.enabled
}

// SignPDF returns the signed document. Signing problems are logged and the
// unsigned document is returned instead.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, certificateID string) (signed []byte, err error) {
	if !s.IsEnabled() {
		return pdfBytes, nil
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     signerName,
				Location: signerLocation,
				Reason:   fmt.Sprintf("Certificate of completion %s", certificateID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic occurred during PDF signing", "panic", r, "cert_id", certificateID)
			signed, err = pdfBytes, nil
		}
	}()

	input := bytes.NewReader(pdfBytes)
	reader, readErr := digitorus_pdf.NewReader(input, int64(len(pdfBytes)))
	if readErr != nil {
		slog.Warn("Failed to read PDF for signing, returning unsigned PDF", "error", readErr, "cert_id", certificateID)
		return pdfBytes, nil
	}

	var output bytes.Buffer
	if signErr := sign.Sign(input, &output, reader, int64(len(pdfBytes)), signData); signErr != nil || output.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF", "error", signErr, "cert_id", certificateID)
		return pdfBytes, nil
	}

	slog.Info("PDF signed successfully",
		"cert_id", certificateID,
		"original_size", len(pdfBytes),
		"signed_size", output.Len())

	return output.Bytes(), nil
}
