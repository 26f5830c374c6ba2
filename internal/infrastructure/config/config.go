package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DBPath string
	UserID string // key namespace owner; single-user deployment

	// AI content generation
	AIBaseURL string   // Gemini-compatible endpoint
	AIAPIKey  string   // may be empty for local gateways
	AIModels  []string // priority order, best first
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:          getenvDefault("DB_PATH", "estudotatico.db"),
		UserID:          getenvDefault("USER_ID", "default"),
		AIBaseURL:       getenvDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com"),
		AIAPIKey:        os.Getenv("AI_API_KEY"),
		AIModels:        getenvList("AI_MODELS", "gemini-2.5-flash,gemini-2.0-flash,gemini-2.0-flash-lite"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvList(k, fallback string) []string {
	v := getenvDefault(k, fallback)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
