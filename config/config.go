package config

import (
	"os"
	"strconv"
	"time"
)

// Config dibaca dari environment (.env dimuat di main). Semuanya punya
// default development yang masuk akal.
type Config struct {
	// Base URL API pusat restoran, tanpa trailing slash.
	ServerURL string
	// Port listen BFF.
	Port string
	// Timeout per call ke API pusat.
	HTTPTimeout time.Duration
	// Umur sesi browser.
	SessionTTL time.Duration
	// Origin yang diizinkan CORS (dev server bundle).
	AllowedOrigin string
}

func Load() Config {
	return Config{
		ServerURL:     getenv("SERVER_URL", "http://localhost:5000"),
		Port:          getenv("PORT", "8080"),
		HTTPTimeout:   time.Duration(getenvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		SessionTTL:    time.Duration(getenvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		AllowedOrigin: getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
