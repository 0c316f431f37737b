package config

import (
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"9090"`
	Secret     string `env:"SECRET,required"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	BcryptHasherCost           int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"1h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	AwsRegion                     string  `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL"`

	MinioEndpoint    string `env:"MINIO_ENDPOINT"`
	MinioAccessKey   string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey   string `env:"MINIO_SECRET_KEY"`
	MinioUseSSL      bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioPhotoBucket string `env:"MINIO_PHOTO_BUCKET" envDefault:"store-photos"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
