package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	LogLevel    slog.Level
	FriendSeats int
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are loaded first when the file exists; they
// never override variables already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (Config, error) {
	c := Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		FriendSeats: 3,
	}

	if v := os.Getenv("FRIEND_SEATS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 10 {
			return Config{}, fmt.Errorf("invalid FRIEND_SEATS %q: must be an integer between 0 and 10", v)
		}
		c.FriendSeats = n
	}

	level, err := ParseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
