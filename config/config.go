package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config is the process configuration, parsed from the environment after an
// optional .env file.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"microblog"`

	SeedData bool `env:"SEED_DATA" envDefault:"false"`

	StaticDir string `env:"STATIC_DIR" envDefault:"static"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"static/images"`

	// MediaStorage selects where uploaded files land: "local" or "s3".
	MediaStorage string `env:"MEDIA_STORAGE" envDefault:"local"`

	S3Endpoint        string `env:"S3_ENDPOINT" envDefault:""`
	S3Region          string `env:"S3_REGION" envDefault:"auto"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID" envDefault:""`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY" envDefault:""`
	S3Bucket          string `env:"S3_BUCKET" envDefault:""`
	S3PublicURL       string `env:"S3_PUBLIC_URL" envDefault:""`
}

func Load() (*Config, error) {
	// Missing .env is fine in production; the environment is authoritative.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
