// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListenAddr string

	// ChatReplyDelay is the artificial "owner is typing" pause before a
	// negotiation reply lands in the transcript.
	ChatReplyDelay time.Duration
	// ChatIdleTTL is how long a chat session may sit idle before the
	// janitor expires it.
	ChatIdleTTL time.Duration

	// ContactEmail is the address contact links are composed against.
	ContactEmail string
}

// Load reads the .env file (if any) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		ChatReplyDelay: time.Duration(getEnvInt("CHAT_REPLY_DELAY_MS", 1000)) * time.Millisecond,
		ChatIdleTTL:    time.Duration(getEnvInt("CHAT_IDLE_TTL_MINUTES", 30)) * time.Minute,
		ContactEmail:   getEnv("CONTACT_EMAIL", "domains@yourname.com"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
