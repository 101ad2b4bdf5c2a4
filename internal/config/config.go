package config

import (
	"os"
	"strings"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	StripeSecretKey string
	AllowedOrigins  []string
	Production      bool
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("API_PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "loanlift"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		Production:      os.Getenv("APP_ENV") == "production",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
