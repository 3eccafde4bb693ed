package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	PowerBI  PowerBIConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// DSN is either a sqlite file path (default) or a full MySQL DSN
	// such as user:pass@tcp(host:3306)/dbname?parseTime=True.
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// PowerBIConfig holds the Azure AD service-principal credentials used for
// the embed-token exchange. When any of the first three are empty the
// application runs against the mock gateway.
type PowerBIConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	WorkspaceID  string
}

func (c *PowerBIConfig) HasCredentials() bool {
	return c.TenantID != "" && c.ClientID != "" && c.ClientSecret != ""
}

type CORSConfig struct {
	Origins []string
}

func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8080"),
			Env:          envOr("ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             envOr("DATABASE_URL", "instance/app.db"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			Secret: envOr("JWT_SECRET_KEY", "jwt-secret-string"),
			Expiry: time.Duration(envIntOr("JWT_ACCESS_TOKEN_EXPIRES", 3600)) * time.Second,
			Issuer: "tablero",
		},
		PowerBI: PowerBIConfig{
			TenantID:     os.Getenv("POWERBI_TENANT_ID"),
			ClientID:     os.Getenv("POWERBI_CLIENT_ID"),
			ClientSecret: os.Getenv("POWERBI_CLIENT_SECRET"),
			WorkspaceID:  os.Getenv("POWERBI_WORKSPACE_ID"),
		},
		CORS: CORSConfig{
			Origins: strings.Split(envOr("CORS_ORIGINS", "http://localhost:3000"), ","),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
