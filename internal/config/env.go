package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	DatabaseDSN   string
	CatalogPath   string
	TokenTTL      time.Duration
	CORSOrigins   []string
	AdminPassHash string // bcrypt; empty disables the admin password check
	Home          string // local data directory for the terminal client
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      envOr("HTTP_ADDR", ":8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		TokenTTL:      durationOr("TOKEN_TTL", 24*time.Hour),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		AdminPassHash: os.Getenv("ADMIN_PASS_HASH"),
		Home:          envOr("MEDPREP_HOME", defaultHome()),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func csvOr(k, def string) []string {
	parts := strings.Split(envOr(k, def), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func defaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medprep"
	}
	return filepath.Join(home, ".medprep")
}
