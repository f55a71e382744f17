package api

import (
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	certificate_controller "github.com/sunthewhat/easy-cert-form/api/controllers/certificate"
	"github.com/sunthewhat/easy-cert-form/api/handler"
	"github.com/sunthewhat/easy-cert-form/api/middleware"
	"github.com/sunthewhat/easy-cert-form/api/routes"
	"github.com/sunthewhat/easy-cert-form/common"
	"github.com/sunthewhat/easy-cert-form/common/util"
	"github.com/sunthewhat/easy-cert-form/internal/certificate"
	"github.com/sunthewhat/easy-cert-form/internal/renderer"
)

func InitFiber() {
	cfg := common.Config

	signer, err := renderer.NewCertificateSigner(cfg.SigningEnabled, cfg.SigningCertPath, cfg.SigningKeyPath)
	if err != nil {
		slog.Error("Failed to initialize certificate signer", "error", err)
		os.Exit(1)
	}

	canvas, err := renderer.NewCanvasRenderer()
	if err != nil {
		slog.Error("Failed to initialize canvas renderer", "error", err)
		os.Exit(1)
	}
	defer canvas.Close()

	var archiver certificate.Archiver
	if cfg.ArchiveEnabled() {
		minioArchiver, err := util.InitMinIO(cfg)
		if err != nil {
			slog.Error("Failed to initialize MinIO archive", "error", err)
			os.Exit(1)
		}
		archiver = minioArchiver
	}

	service := certificate.NewService(cfg.OutputDir, canvas, renderer.NewDocumentRenderer(signer), archiver)
	mailer := util.NewCertificateMailer(util.NewDialer(cfg), cfg.MailFrom)

	if cfg.RetentionHours > 0 {
		stop := util.StartArtifactCleanupJob(cfg.OutputDir, time.Duration(cfg.RetentionHours)*time.Hour)
		defer stop()
	}

	app := fiber.New(fiber.Config{
		AppName:       "easy-cert-form",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	})

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors(cfg.Cors))

	routes.Init(app, certificate_controller.NewCertificateController(service, mailer))

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", cfg.Port, "output_dir", cfg.OutputDir)
	if err := app.Listen(cfg.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// VerifyMail checks the configured SMTP transport and exits non-zero on failure.
func VerifyMail() {
	mailer := util.NewCertificateMailer(util.NewDialer(common.Config), common.Config.MailFrom)
	if err := mailer.Verify(); err != nil {
		slog.Error("Mail verification failed", "error", err)
		os.Exit(1)
	}
}
