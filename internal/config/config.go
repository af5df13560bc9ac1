package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	JWTSecret         string
	ServerPort        string
	PollIntervalMS    string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	GameBaseURL       string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "questlive"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		PollIntervalMS:    getEnv("POLL_INTERVAL_MS", "1000"),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@forwardnetworks.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Forward Networks Quest"),
		GameBaseURL:       getEnv("GAME_BASE_URL", "https://quest.fwd.app/live-game"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
