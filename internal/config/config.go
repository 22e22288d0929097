package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// SMTPConfig holds the outbound mail transport settings. An empty Host
// means no transport is configured and verification links are logged
// instead of mailed.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   string // "starttls", "ssl" or "none"
	Username string
	Password string
	From     string
}

// Configured reports whether a mail transport is available.
func (c SMTPConfig) Configured() bool {
	return c.Host != ""
}

// AppConfig holds application-level settings loaded from environment variables
type AppConfig struct {
	Env                string // "development" or "production"
	ServerPort         string
	FrontendOrigin     string // CORS allowed origin
	BackendBaseURL     string // used to build verification links
	JWTSecret          string
	JWTExpirationHours int64
	RateLimitPerMinute int
	SMTP               SMTPConfig
}

// LoadAppConfig loads application configuration from environment variables
func LoadAppConfig() (*AppConfig, error) {
	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	cfg := &AppConfig{
		Env:                getEnvDefault("APP_ENV", "development"),
		ServerPort:         getEnvDefault("SERVER_PORT", "8080"),
		FrontendOrigin:     getEnvDefault("FRONTEND_ORIGIN", "http://localhost:3000"),
		JWTSecret:          jwtSecret,
		JWTExpirationHours: 168, // 7-day sessions
		RateLimitPerMinute: 100,
	}
	cfg.BackendBaseURL = getEnvDefault("BACKEND_BASE_URL", "http://localhost:"+cfg.ServerPort)

	if expStr := os.Getenv("JWT_EXPIRATION_HOURS"); expStr != "" {
		exp, err := strconv.ParseInt(expStr, 10, 64)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to %d: %v", cfg.JWTExpirationHours, err)
		} else {
			cfg.JWTExpirationHours = exp
		}
	}
	if rlStr := os.Getenv("RATE_LIMIT_PER_MINUTE"); rlStr != "" {
		rl, err := strconv.Atoi(rlStr)
		if err != nil {
			log.Printf("Invalid RATE_LIMIT_PER_MINUTE, defaulting to %d: %v", cfg.RateLimitPerMinute, err)
		} else {
			cfg.RateLimitPerMinute = rl
		}
	}

	cfg.SMTP = SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     587,
		Secure:   getEnvDefault("SMTP_SECURE", "starttls"),
		Username: os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			log.Printf("Invalid SMTP_PORT, defaulting to %d: %v", cfg.SMTP.Port, err)
		} else {
			cfg.SMTP.Port = port
		}
	}

	return cfg, nil
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
