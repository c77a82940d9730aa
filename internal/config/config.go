package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                 string        // dev, prod
	HTTPPort            string        // default 8080
	RosterPath          string        // required, providers file
	BookingWindowMonths int           // how far ahead appointments may be booked
	ShutdownTimeout     time.Duration // graceful shutdown timeout
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnv("APP_ENV", "dev"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		RosterPath:          os.Getenv("ROSTER_PATH"),
		BookingWindowMonths: getInt("BOOKING_WINDOW_MONTHS", 6),
		ShutdownTimeout:     getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.RosterPath == "" {
		return Config{}, errors.New("ROSTER_PATH is required")
	}
	if cfg.BookingWindowMonths < 1 {
		return Config{}, fmt.Errorf("BOOKING_WINDOW_MONTHS must be positive, got %d", cfg.BookingWindowMonths)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return time.Duration(n) * time.Second
		}
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		fmt.Fprintf(os.Stderr, "invalid duration for %s=%q, using default %s\n", key, v, def)
	}
	return def
}
