package shared

type Config struct {
	Port      string   `yaml:"port" validate:"required"`
	Cors      []string `yaml:"cors"`
	OutputDir string   `yaml:"output_dir" validate:"required"`

	// Generated files are kept forever when RetentionHours is zero.
	RetentionHours int `yaml:"retention_hours" validate:"gte=0"`

	MailHost   string `yaml:"mail_host" validate:"required"`
	MailPort   int    `yaml:"mail_port" validate:"required,gt=0,lte=65535"`
	MailSecure bool   `yaml:"mail_secure"`
	MailUser   string `yaml:"mail_user"`
	MailPass   string `yaml:"mail_pass"`
	MailFrom   string `yaml:"mail_from" validate:"required"`

	MinIoEndpoint  string `yaml:"minio_endpoint"`
	MinIoAccessKey string `yaml:"minio_access_key" validate:"required_with=MinIoEndpoint"`
	MinIoSecretKey string `yaml:"minio_secret_key" validate:"required_with=MinIoEndpoint"`
	MinIoBucket    string `yaml:"minio_bucket" validate:"required_with=MinIoEndpoint"`
	MinIoSecure    bool   `yaml:"minio_secure"`

	SigningEnabled  bool   `yaml:"signing_enabled"`
	SigningCertPath string `yaml:"signing_cert_path" validate:"required_if=SigningEnabled true"`
	SigningKeyPath  string `yaml:"signing_key_path" validate:"required_if=SigningEnabled true"`
}

func (c *Config) ArchiveEnabled() bool {
	return c.MinIoEndpoint != ""
}
