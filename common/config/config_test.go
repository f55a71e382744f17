package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"PORT", "CERT_OUTPUT_DIR", "CORS_ORIGINS", "CERT_RETENTION_HOURS",
	"SMTP_HOST", "SMTP_PORT", "SMTP_SECURE", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM_EMAIL",
	"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_SECURE",
	"SIGNING_ENABLED", "SIGNING_CERT_PATH", "SIGNING_KEY_PATH",
}

// clearEnv unsets every variable Load looks at, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// TestLoad_YamlWithDefaults tests that unset values fall back to defaults
func TestLoad_YamlWithDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
mail_host: smtp.example.com
mail_from: certs@example.com
mail_user: mailer
mail_pass: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Port)
	assert.Equal(t, "public/certificates", cfg.OutputDir)
	assert.Equal(t, 587, cfg.MailPort)
	assert.False(t, cfg.MailSecure)
	assert.Equal(t, "smtp.example.com", cfg.MailHost)
	assert.Equal(t, 0, cfg.RetentionHours)
	assert.False(t, cfg.ArchiveEnabled())
}

// TestLoad_EnvOverridesYaml tests environment precedence
func TestLoad_EnvOverridesYaml(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
mail_host: smtp.example.com
mail_from: certs@example.com
mail_port: 25
`)
	t.Setenv("SMTP_HOST", "smtp.override.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CERT_RETENTION_HOURS", "48")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "smtp.override.com", cfg.MailHost)
	assert.Equal(t, 465, cfg.MailPort)
	assert.True(t, cfg.MailSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Cors)
	assert.Equal(t, 48, cfg.RetentionHours)
}

// TestLoad_MissingFileUsesEnvironment tests env-only configuration
func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM_EMAIL", "certs@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com", cfg.MailHost)
}

// TestLoad_ValidationFailures tests that incomplete configuration is rejected
func TestLoad_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing mail host",
			yaml:    "mail_from: certs@example.com\n",
			wantErr: "mail_host is required",
		},
		{
			name:    "bad port number",
			yaml:    "mail_host: smtp.example.com\nmail_from: certs@example.com\n",
			env:     map[string]string{"SMTP_PORT": "smtp"},
			wantErr: "invalid SMTP_PORT",
		},
		{
			name:    "archive without credentials",
			yaml:    "mail_host: smtp.example.com\nmail_from: certs@example.com\nminio_endpoint: minio.local\n",
			wantErr: "minio_access_key is required",
		},
		{
			name:    "signing without key paths",
			yaml:    "mail_host: smtp.example.com\nmail_from: certs@example.com\nsigning_enabled: true\n",
			wantErr: "signing_cert_path is required",
		},
		{
			name:    "malformed yaml",
			yaml:    "mail_host: [",
			wantErr: "failed to unmarshal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(writeConfig(t, tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
