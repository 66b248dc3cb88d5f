package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP    HTTP
		Log     Log
		PG      PG
		S3      S3
		Redis   Redis
		Session Session
		Kafka   Kafka
		Gallery Gallery
		Upload  Upload
		Swagger Swagger
	}

	// ExportConfig is the subset read by the export job.
	ExportConfig struct {
		Log     Log
		PG      PG
		S3      S3
		Gallery Gallery
		Export  Export
	}

	// DatabaseConfig is read by the admin CLI for migrations and user
	// management.
	DatabaseConfig struct {
		Log Log
		PG  PG
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT,required"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	PG struct {
		PoolMax     int    `env:"PG_POOL_MAX" envDefault:"4"`
		URL         string `env:"PG_URL,required"`
		AutoMigrate bool   `env:"PG_AUTO_MIGRATE" envDefault:"false"`
	}

	S3 struct {
		Endpoint       string        `env:"S3_ENDPOINT,required"`
		AccessKey      string        `env:"S3_ACCESS_KEY,required"`
		SecretKey      string        `env:"S3_SECRET_KEY,required"`
		Bucket         string        `env:"S3_BUCKET" envDefault:"images"`
		Region         string        `env:"S3_REGION" envDefault:"us-east-1"`
		PublicURL      string        `env:"S3_PUBLIC_URL"`
		CreateBucket   bool          `env:"S3_CREATE_BUCKET" envDefault:"false"`
		CfgLoadTimeout time.Duration `env:"S3_LOAD_CFG_TIMEOUT" envDefault:"10s"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR,required"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Session struct {
		TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	}

	Kafka struct {
		Enabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
		Brokers []string `env:"KAFKA_BROKERS"`
		Topic   string   `env:"KAFKA_TOPIC" envDefault:"gallery-events"`

		WriteTimeout time.Duration `env:"KAFKA_WRITE_TIMEOUT" envDefault:"5s"`
	}

	Gallery struct {
		Timezone string `env:"GALLERY_TIMEZONE" envDefault:"Local"`
	}

	Upload struct {
		MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"10485760"`
		MaxFiles    int   `env:"UPLOAD_MAX_FILES" envDefault:"20"`
	}

	Export struct {
		Dir string `env:"EXPORT_DIR" envDefault:"exports"`
	}

	Swagger struct {
		Enabled bool `env:"SWAGGER_ENABLED" envDefault:"false"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return nil, fmt.Errorf("config error: KAFKA_BROKERS is required when KAFKA_ENABLED is set")
	}

	if _, err := cfg.Gallery.Location(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// NewExport parses only backend credentials and paths. Export output is meant
// for a terminal, so console logging is the default.
func NewExport() (*ExportConfig, error) {
	cfg := &ExportConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok {
		cfg.Log.Format = "console"
	}

	if _, err := cfg.Gallery.Location(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

func NewDatabase() (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if _, ok := os.LookupEnv("LOG_FORMAT"); !ok {
		cfg.Log.Format = "console"
	}

	return cfg, nil
}

// Location resolves GALLERY_TIMEZONE. Month bucketing happens in this zone.
func (g Gallery) Location() (*time.Location, error) {
	if g.Timezone == "" || g.Timezone == "Local" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return nil, fmt.Errorf("GALLERY_TIMEZONE: %w", err)
	}

	return loc, nil
}

// BodyLimit is the request body cap derived from the upload limits.
func (u Upload) BodyLimit() int {
	return int(u.MaxFileSize)*u.MaxFiles + 1024*1024
}
