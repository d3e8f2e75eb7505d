package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/utils"
)

type Config struct {
	Env     string
	Port    int
	LogMode string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresName     string

	// ClientURL is the raw CLIENT_URL value ("*" or a comma list);
	// ClientURLList is the parsed list (empty when wildcard).
	ClientURL     string
	ClientURLList []string

	JWTSecret         string
	TokenTTL          time.Duration
	AdminPassword     string
	AdminPasswordHash string

	GCSBucket     string
	CDNDomain     string
	RedisAddr     string

	RateLimitWindow time.Duration
	RateLimitMax    int
	LoginLimitMax   int
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load(log *logger.Logger) (*Config, error) {
	cfg := &Config{
		Env:     utils.GetEnv("APP_ENV", "development", log),
		Port:    utils.GetEnvAsInt("PORT", 4000, log),
		LogMode: utils.GetEnv("LOG_MODE", "development", log),

		PostgresHost:     utils.GetEnv("POSTGRES_HOST", "localhost", log),
		PostgresPort:     utils.GetEnv("POSTGRES_PORT", "5432", log),
		PostgresUser:     utils.GetEnv("POSTGRES_USER", "postgres", log),
		PostgresPassword: utils.GetEnv("POSTGRES_PASSWORD", "", log),
		PostgresName:     utils.GetEnv("POSTGRES_NAME", "portfolio", log),

		ClientURL: utils.GetEnv("CLIENT_URL", "*", log),

		JWTSecret:         utils.GetEnv("JWT_SECRET", "", log),
		TokenTTL:          time.Duration(utils.GetEnvAsInt("TOKEN_TTL_HOURS", 168, log)) * time.Hour,
		AdminPassword:     utils.GetEnv("ADMIN_PASSWORD", "", log),
		AdminPasswordHash: utils.GetEnv("ADMIN_PASSWORD_HASH", "", log),

		GCSBucket: utils.GetEnv("GCS_BUCKET_NAME", "", log),
		CDNDomain: utils.GetEnv("CDN_DOMAIN", "", log),
		RedisAddr: utils.GetEnv("REDIS_ADDR", "", log),

		RateLimitWindow: time.Duration(utils.GetEnvAsInt("RATE_LIMIT_WINDOW_MINUTES", 15, log)) * time.Minute,
		RateLimitMax:    utils.GetEnvAsInt("RATE_LIMIT_MAX", 300, log),
		LoginLimitMax:   utils.GetEnvAsInt("LOGIN_RATE_LIMIT_MAX", 10, log),
	}

	if cfg.ClientURL != "*" {
		for _, origin := range strings.Split(cfg.ClientURL, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.ClientURLList = append(cfg.ClientURLList, origin)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET is required and must be at least 32 characters")
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("either ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if c.IsProduction() && c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required in production")
	}
	return nil
}
