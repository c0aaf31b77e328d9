package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"

	devJWTSecret = "default-dev-secret-change-me"
)

type (
	Config struct {
		Host              string        `mapstructure:"HOST"`
		Port              string        `mapstructure:"PORT"`
		Env               string        `mapstructure:"ENV"`
		JWTSecret         string        `mapstructure:"JWT_SECRET"`
		TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
		StoreDriver       string        `mapstructure:"STORE_DRIVER"`
		PostgresURL       string        `mapstructure:"POSTGRES_URL"`
		UploadDir         string        `mapstructure:"UPLOAD_DIR"`
		UploadMaxBytes    int64         `mapstructure:"UPLOAD_MAX_BYTES"`
		SeedAdminName     string        `mapstructure:"SEED_ADMIN_NAME"`
		SeedAdminEmail    string        `mapstructure:"SEED_ADMIN_EMAIL"`
		SeedAdminPassword string        `mapstructure:"SEED_ADMIN_PASSWORD"`
	}
)

var envs = []string{
	"HOST", "PORT", "ENV", "JWT_SECRET", "TOKEN_TTL", "STORE_DRIVER", "POSTGRES_URL",
	"UPLOAD_DIR", "UPLOAD_MAX_BYTES", "SEED_ADMIN_NAME", "SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD",
}

// NewConfig reads the process environment, after loading a .env file when one exists.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()
	return Load(viper.New())
}

func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("JWT_SECRET", devJWTSecret)
	v.SetDefault("TOKEN_TTL", "168h")
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 50<<20)
	v.SetDefault("SEED_ADMIN_NAME", "Administrator")
	v.SetDefault("SEED_ADMIN_EMAIL", "")
	v.SetDefault("SEED_ADMIN_PASSWORD", "")

	for _, key := range envs {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) ListenAddr() string {
	return c.Host + ":" + c.Port
}

func validate(cfg *Config) error {
	switch cfg.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("ENV is invalid: %s", cfg.Env)
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if cfg.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required for the postgres store")
		}
	default:
		return fmt.Errorf("STORE_DRIVER is invalid: %s", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is empty")
	}
	if cfg.IsProduction() && cfg.JWTSecret == devJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive: %s", cfg.TokenTTL)
	}
	if cfg.UploadDir == "" {
		return errors.New("UPLOAD_DIR is empty")
	}
	if cfg.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive: %d", cfg.UploadMaxBytes)
	}
	if (cfg.SeedAdminEmail == "") != (cfg.SeedAdminPassword == "") {
		return errors.New("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set together")
	}
	return nil
}
