package util

import "github.com/sunthewhat/easy-cert-form/type/shared"

// MockCertificateMailer is a mock implementation for testing
type MockCertificateMailer struct {
	SendCertificateFunc func(to string, name string, artifact *shared.CertificateArtifact) (string, error)
	VerifyFunc          func() error
}

// NewMockCertificateMailer creates a new mock mailer
func NewMockCertificateMailer() *MockCertificateMailer {
	return &MockCertificateMailer{}
}

// SendCertificate mocks the SendCertificate method
func (m *MockCertificateMailer) SendCertificate(to string, name string, artifact *shared.CertificateArtifact) (string, error) {
	if m.SendCertificateFunc != nil {
		return m.SendCertificateFunc(to, name, artifact)
	}
	return "<mock@localhost>", nil
}

// Verify mocks the Verify method
func (m *MockCertificateMailer) Verify() error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc()
	}
	return nil
}
