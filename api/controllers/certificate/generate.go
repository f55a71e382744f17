package certificate_controller

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-form/common/util"
	"github.com/sunthewhat/easy-cert-form/type/payload"
	"github.com/sunthewhat/easy-cert-form/type/response"
)

var errNoArtifact = errors.New("Failed to generate certificate")

func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	var body payload.CertificateRequest

	// The body is JSON whatever Content-Type the client declares.
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil {
		slog.Warn("Generate certificate with unparsable body", "error", err)
		return response.SendInternalError(c, err)
	}

	if err := util.ValidateStruct(body); err != nil {
		if missing := util.MissingFields(err); len(missing) > 0 {
			return response.SendFailed(c, "Missing required fields: "+strings.Join(missing, ", "))
		}
		return response.SendFailed(c, "Invalid email address")
	}

	artifact, err := ctrl.generator.Generate(c.UserContext(), body)
	if err == nil && artifact == nil {
		err = errNoArtifact
	}
	if err != nil {
		slog.Error("Certificate Controller Generate Error", "error", err, "email", body.Email)
		return response.SendInternalError(c, err)
	}

	if _, err := ctrl.mailer.SendCertificate(body.Email, body.Name, artifact); err != nil {
		slog.Error("Certificate Controller Send Mail Error", "error", err, "cert_id", artifact.CertificateId)
		return response.SendInternalError(c, err)
	}

	return response.SendIssued(c, "Certificate generated and sent successfully", artifact.CertificateId)
}
