package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "p2pshare.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultTokenTTLMin   = "1440"
	defaultUploadDir     = "./uploads"
	defaultMaxUploadSize = 10 << 20
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	UploadDir     string
	MaxUploadSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		DatabaseURL:   getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
		UploadDir:     getEnv("UPLOAD_DIR", defaultUploadDir),
		MaxUploadSize: defaultMaxUploadSize,
	}

	ttlMin, err := strconv.Atoi(getEnv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", defaultTokenTTLMin))
	if err != nil || ttlMin <= 0 {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRE_MINUTES: %q", os.Getenv("JWT_ACCESS_TOKEN_EXPIRE_MINUTES"))
	}
	cfg.TokenTTL = time.Duration(ttlMin) * time.Minute

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
