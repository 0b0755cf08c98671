// Package config loads the backend configuration from a TOML file and the
// environment.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddress    string `mapstructure:"listen_address"`
	DatabaseFile     string `mapstructure:"database_file"`
	DocumentTemplate string `mapstructure:"document_template"` // Path to the service order DOCX template

	JWT     JWTConfig     `mapstructure:"jwt"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Archive ArchiveConfig `mapstructure:"archive"`
}

type JWTConfig struct {
	// When the secret is empty, authentication is disabled. This is the
	// mode the test suites and local development run in.
	Secret    string        `mapstructure:"secret"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ArchiveConfig configures the MinIO bucket generated documents are
// archived to. An empty endpoint disables archiving.
type ArchiveConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Load reads the configuration. Environment variables override the config
// file, the config file overrides the defaults.
func Load() (*Config, error) {
	// A .env file is optional
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("cavalaria")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("listen_address", ":8080")
	viper.SetDefault("database_file", "data/gorm.db")
	viper.SetDefault("document_template", "templates/service_order.docx")
	viper.SetDefault("jwt.expires_in", 8*time.Hour)
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("archive.bucket", "service-orders")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}

		log.Debug().Msg("no config file found, using defaults and environment")
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
