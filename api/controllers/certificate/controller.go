package certificate_controller

import (
	"github.com/sunthewhat/easy-cert-form/common/util"
	"github.com/sunthewhat/easy-cert-form/internal/certificate"
)

// CertificateController handles certificate-related HTTP requests
type CertificateController struct {
	generator certificate.ICertificateService
	mailer    util.ICertificateMailer
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(generator certificate.ICertificateService, mailer util.ICertificateMailer) *CertificateController {
	return &CertificateController{
		generator: generator,
		mailer:    mailer,
	}
}
