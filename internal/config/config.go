package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string // kosong = mode offline, hanya cache lokal
	CacheDir     string
	JWTSecret    string
	SyncInterval time.Duration
	GeminiAPIKey string // kosong = saran pengadaan AI dimatikan
	GeminiModel  string
	CORSOrigins  string
}

func Load() *Config {
	// .env opsional, untuk development lokal
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", ""),
		CacheDir:     getEnv("CACHE_DIR", "./gudang-cache"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		SyncInterval: time.Duration(getEnvInt("SYNC_INTERVAL_SECONDS", 120)) * time.Second,
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET belum diset! Wajib untuk produksi.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET minimal 32 karakter.")
	}
	if cfg.DatabaseDSN == "" {
		log.Println("[WARN] DATABASE_DSN kosong, server jalan mode offline (tanpa sync cloud).")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("[WARN] GEMINI_API_KEY kosong, saran pengadaan AI dimatikan.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("[WARN] %s bukan angka valid, pakai default %d", key, def)
	}
	return def
}
