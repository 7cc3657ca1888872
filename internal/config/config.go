package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	JWTSecret      string
	AutoReplyDelay time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
		AutoReplyDelay: getMillis("AUTO_REPLY_DELAY_MS", 1500*time.Millisecond),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getMillis(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	ms, err := strconv.Atoi(val)
	if err != nil || ms < 0 {
		return fallback
	}

	return time.Duration(ms) * time.Millisecond
}
