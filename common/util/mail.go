package util

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sunthewhat/easy-cert-form/type/shared"
	"gopkg.in/gomail.v2"
)

// MailDialer opens an authenticated transport session. *gomail.Dialer
// satisfies it.
type MailDialer interface {
	Dial() (gomail.SendCloser, error)
}

type ICertificateMailer interface {
	SendCertificate(to string, name string, artifact *shared.CertificateArtifact) (string, error)
	Verify() error
}

type CertificateMailer struct {
	dialer MailDialer
	from   string
	domain string
}

// NewDialer builds the SMTP transport once at startup.
func NewDialer(cfg *shared.Config) *gomail.Dialer {
	dialer := gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass)
	dialer.SSL = cfg.MailSecure
	return dialer
}

func NewCertificateMailer(dialer MailDialer, from string) *CertificateMailer {
	domain := "localhost"
	if addr, err := mail.ParseAddress(from); err == nil {
		if at := strings.LastIndex(addr.Address, "@"); at >= 0 && at < len(addr.Address)-1 {
			domain = addr.Address[at+1:]
		}
	}

	return &CertificateMailer{
		dialer: dialer,
		from:   from,
		domain: domain,
	}
}

var certificateMailTemplate = template.Must(template.New("certificate").Parse(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #1e3a8a;">Congratulations, {{.Name}}!</h2>
		<p>Your Certificate of Completion has been generated successfully.</p>
		<p>Please find your certificate attached in two formats:</p>
		<ul>
			<li><strong>{{.ImageLabel}}</strong> - for sharing and display</li>
			<li><strong>PDF</strong> - for printing and records</li>
		</ul>
		<p style="color: #6b7280; font-size: 14px;">Certificate ID: {{.CertificateId}}</p>
		<p>Best regards,<br>Certificate Generation Team</p>
	</div>
`))

type certificateMailData struct {
	Name          string
	ImageLabel    string
	CertificateId string
}

var imageContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

func imageLabel(format string) string {
	if format == "jpeg" || format == "" {
		return "JPG"
	}
	return strings.ToUpper(format)
}

// SendCertificate mails both artifact files to the recipient and returns the
// Message-ID of the sent message.
func (m *CertificateMailer) SendCertificate(to string, name string, artifact *shared.CertificateArtifact) (string, error) {
	label := imageLabel(artifact.ImageFormat)
	if _, err := os.Stat(artifact.ImagePath); err != nil {
		return "", fmt.Errorf("%s file not found: %s", label, artifact.ImagePath)
	}
	if _, err := os.Stat(artifact.DocumentPath); err != nil {
		return "", fmt.Errorf("PDF file not found: %s", artifact.DocumentPath)
	}

	var body bytes.Buffer
	if err := certificateMailTemplate.Execute(&body, certificateMailData{
		Name:          name,
		ImageLabel:    label,
		CertificateId: artifact.CertificateId,
	}); err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), m.domain)

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", fmt.Sprintf("Your Certificate of Completion - %s", name))
	mailer.SetHeader("Message-ID", messageID)
	mailer.SetBody("text/html", body.String())

	contentType, ok := imageContentTypes[artifact.ImageFormat]
	if !ok {
		contentType = "application/octet-stream"
	}
	mailer.Attach(artifact.ImagePath,
		gomail.Rename(artifact.CertificateId+filepath.Ext(artifact.ImagePath)),
		gomail.SetHeader(map[string][]string{"Content-Type": {contentType}}))
	mailer.Attach(artifact.DocumentPath,
		gomail.Rename(artifact.CertificateId+".pdf"),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}))

	sender, err := m.dialer.Dial()
	if err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", to, "cert_id", artifact.CertificateId)
		return "", fmt.Errorf("Failed to send email: %s", err.Error())
	}
	defer sender.Close()

	if err := gomail.Send(sender, mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", to, "cert_id", artifact.CertificateId)
		return "", fmt.Errorf("Failed to send email: %s", err.Error())
	}

	slog.Info("Email sent successfully", "recipient", to, "cert_id", artifact.CertificateId, "message_id", messageID)
	return messageID, nil
}

// Verify opens and closes a transport session without sending anything.
func (m *CertificateMailer) Verify() error {
	sender, err := m.dialer.Dial()
	if err != nil {
		slog.Error("Email connection verification failed", "error", err)
		return fmt.Errorf("Email connection failed: %s", err.Error())
	}
	if err := sender.Close(); err != nil {
		slog.Warn("Failed to close verified mail session", "error", err)
	}

	slog.Info("Email connection verified")
	return nil
}
