package certificate

import (
	"context"

	"github.com/sunthewhat/easy-cert-form/type/payload"
	"github.com/sunthewhat/easy-cert-form/type/shared"
)

// MockCertificateService is a mock implementation for testing
type MockCertificateService struct {
	GenerateFunc func(ctx context.Context, req payload.CertificateRequest) (*shared.CertificateArtifact, error)
	Calls        []payload.CertificateRequest
}

// NewMockCertificateService creates a new mock certificate service
func NewMockCertificateService() *MockCertificateService {
	return &MockCertificateService{}
}

// Generate mocks the Generate method
func (m *MockCertificateService) Generate(ctx context.Context, req payload.CertificateRequest) (*shared.CertificateArtifact, error) {
	m.Calls = append(m.Calls, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return nil, nil
}
