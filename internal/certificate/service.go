// Package certificate turns a validated form submission into the rendered
// image and document pair.
package certificate

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sunthewhat/easy-cert-form/internal/renderer"
	"github.com/sunthewhat/easy-cert-form/type/payload"
	"github.com/sunthewhat/easy-cert-form/type/shared"
)

const tokenLength = 9

type ImageRenderer interface {
	Render(layout renderer.Layout, basePath string) (*renderer.RenderedImage, error)
}

type DocumentRenderer interface {
	Render(layout renderer.Layout, path string, certificateID string) error
}

// Archiver copies a finished artifact somewhere outside the output directory.
type Archiver interface {
	Archive(ctx context.Context, artifact *shared.CertificateArtifact) error
}

// ICertificateService produces the artifact pair for one request.
type ICertificateService interface {
	Generate(ctx context.Context, req payload.CertificateRequest) (*shared.CertificateArtifact, error)
}

type Service struct {
	outputDir string
	canvas    ImageRenderer
	document  DocumentRenderer
	archiver  Archiver
	now       func() time.Time
}

// NewService wires the renderers to an output directory. archiver may be nil.
func NewService(outputDir string, canvas ImageRenderer, document DocumentRenderer, archiver Archiver) *Service {
	return &Service{
		outputDir: outputDir,
		canvas:    canvas,
		document:  document,
		archiver:  archiver,
		now:       time.Now,
	}
}

func (s *Service) Generate(ctx context.Context, req payload.CertificateRequest) (*shared.CertificateArtifact, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	issuedAt := s.now()
	certificateID := NewCertificateID(issuedAt)
	basePath := filepath.Join(s.outputDir, certificateID)

	layout := renderer.BuildLayout(renderer.CertificateData{
		Name:            req.Name,
		GSTNumber:       req.GSTNumber,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		IssuedAt:        issuedAt,
	})

	image, err := s.canvas.Render(layout, basePath)
	if err != nil {
		slog.Error("Certificate image rendering failed", "error", err, "cert_id", certificateID)
		return nil, err
	}

	documentPath := basePath + ".pdf"
	if err := s.document.Render(layout, documentPath, certificateID); err != nil {
		slog.Error("Certificate document rendering failed", "error", err, "cert_id", certificateID)
		return nil, err
	}

	artifact := &shared.CertificateArtifact{
		CertificateId: certificateID,
		ImagePath:     image.Path,
		ImageFormat:   image.Format.Name,
		DocumentPath:  documentPath,
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, artifact); err != nil {
			slog.Warn("Failed to archive certificate", "error", err, "cert_id", certificateID)
		}
	}

	slog.Info("Certificate generated",
		"cert_id", certificateID,
		"image", artifact.ImagePath,
		"document", artifact.DocumentPath)

	return artifact, nil
}

// NewCertificateID returns cert-<unix millis>-<9 lowercase base36 chars>.
func NewCertificateID(now time.Time) string {
	return fmt.Sprintf("cert-%d-%s", now.UnixMilli(), randomToken())
}

func randomToken() string {
	id := uuid.New()
	token := new(big.Int).SetBytes(id[:]).Text(36)
	if len(token) < tokenLength {
		token = strings.Repeat("0", tokenLength-len(token)) + token
	}
	return token[len(token)-tokenLength:]
}
