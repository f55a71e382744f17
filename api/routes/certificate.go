package routes

import (
	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/sunthewhat/easy-cert-form/api/controllers/certificate"
)

func SetupCertificateRoutes(router fiber.Router, ctrl *certificate_controller.CertificateController) {
	router.Post("generate-certificate", ctrl.Generate)
	router.Get("mail/verify", ctrl.VerifyMail)
}
