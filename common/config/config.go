package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sunthewhat/easy-cert-form/common"
	"github.com/sunthewhat/easy-cert-form/common/util"
	"github.com/sunthewhat/easy-cert-form/type/shared"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = ":3000"
	defaultOutputDir = "public/certificates"
	defaultMailPort  = 587
)

func LoadConfig(path string) {
	config, err := Load(path)
	if err != nil {
		slog.Error("Failed to load configuration", "path", path, "error", err)
		os.Exit(1)
	}

	common.Config = config
}

// Load reads the optional yaml file, then lets the environment (and a .env
// file, if present) override it.
func Load(path string) (*shared.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := new(shared.Config)

	yml, readErr := os.ReadFile(path)
	switch {
	case readErr == nil:
		if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", path, unmarshalErr)
		}
	case errors.Is(readErr, fs.ErrNotExist):
		slog.Info("Config file not found, using environment only", "path", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, readErr)
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	applyDefaults(config)

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		messages := util.GetValidationErrors(validateErr)
		if len(messages) == 0 {
			return nil, fmt.Errorf("invalid config: %w", validateErr)
		}
		return nil, fmt.Errorf("invalid config: %s", strings.Join(messages, ", "))
	}

	return config, nil
}

func applyDefaults(config *shared.Config) {
	if config.Port == "" {
		config.Port = defaultPort
	}
	if config.OutputDir == "" {
		config.OutputDir = defaultOutputDir
	}
	if config.MailPort == 0 {
		config.MailPort = defaultMailPort
	}
}

func applyEnv(config *shared.Config) error {
	strs := map[string]*string{
		"PORT":              &config.Port,
		"CERT_OUTPUT_DIR":   &config.OutputDir,
		"SMTP_HOST":         &config.MailHost,
		"SMTP_USER":         &config.MailUser,
		"SMTP_PASSWORD":     &config.MailPass,
		"SMTP_FROM_EMAIL":   &config.MailFrom,
		"MINIO_ENDPOINT":    &config.MinIoEndpoint,
		"MINIO_ACCESS_KEY":  &config.MinIoAccessKey,
		"MINIO_SECRET_KEY":  &config.MinIoSecretKey,
		"MINIO_BUCKET":      &config.MinIoBucket,
		"SIGNING_CERT_PATH": &config.SigningCertPath,
		"SIGNING_KEY_PATH":  &config.SigningKeyPath,
	}
	for key, dst := range strs {
		if value, ok := os.LookupEnv(key); ok {
			*dst = value
		}
	}

	ints := map[string]*int{
		"SMTP_PORT":            &config.MailPort,
		"CERT_RETENTION_HOURS": &config.RetentionHours,
	}
	for key, dst := range ints {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		*dst = parsed
	}

	bools := map[string]*bool{
		"SMTP_SECURE":     &config.MailSecure,
		"MINIO_SECURE":    &config.MinIoSecure,
		"SIGNING_ENABLED": &config.SigningEnabled,
	}
	for key, dst := range bools {
		if value, ok := os.LookupEnv(key); ok {
			*dst = value == "true"
		}
	}

	if value, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		config.Cors = nil
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.Cors = append(config.Cors, origin)
			}
		}
	}

	return nil
}
