package configs

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting. It is loaded once at
// startup and injected into the components that need it, instead of each
// call site re-reading the environment.
type Config struct {
	MongoURI   string
	DBName     string
	Host       string
	Port       string
	AppEnv     string
	CORSOrigin string
	AdminCode  string
	StaticDir  string
}

// LoadConfig reads the .env file if present and assembles the service
// configuration. MONGOURI and ADMIN_CODE have no usable defaults, so a
// missing value is an error the caller must treat as fatal.
func LoadConfig() (Config, error) {
	// A missing .env file is fine in deployed environments, where the
	// variables come from the process environment directly.
	_ = godotenv.Load()

	cfg := Config{
		MongoURI:   os.Getenv("MONGOURI"),
		DBName:     envOr("DB_NAME", "plaza_seguridad"),
		Host:       envOr("HOST", "0.0.0.0"),
		Port:       envOr("PORT", "4000"),
		AppEnv:     envOr("APP_ENV", "development"),
		CORSOrigin: envOr("FRONTEND_URL", "http://localhost:5173"),
		AdminCode:  os.Getenv("ADMIN_CODE"),
		StaticDir:  envOr("STATIC_DIR", "public"),
	}

	if cfg.MongoURI == "" {
		return cfg, fmt.Errorf("MONGOURI is not set")
	}
	if cfg.AdminCode == "" {
		return cfg, fmt.Errorf("ADMIN_CODE is not set")
	}
	return cfg, nil
}

// Addr returns the host:port pair the HTTP server listens on.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Production reports whether the service runs in production mode. The
// error mapper consults this single policy to decide response verbosity.
func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// CORSOrigins splits the comma-separated FRONTEND_URL value.
func (c Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
