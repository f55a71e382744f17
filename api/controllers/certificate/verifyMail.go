package certificate_controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cert-form/type/response"
)

func (ctrl *CertificateController) VerifyMail(c *fiber.Ctx) error {
	if err := ctrl.mailer.Verify(); err != nil {
		return response.SendInternalError(c, err)
	}
	return response.SendSuccess(c, "Email connection verified")
}
