package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	Port              string
	Env               string
	DatabaseURL       string
	RedisURL          string
	SecretKey         string
	UnsplashAccessKey string
	UploadDir         string
	AdminUsername     string
	AdminPassword     string
	AdminEmail        string
	SiteName          string
	SiteURL           string
	SchedulerInterval time.Duration
}

// Load reads configuration from the environment, consulting a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		RedisURL:          getEnv("REDIS_URL", ""),
		SecretKey:         getEnv("SECRET_KEY", "sakmpar-secret-key-2025"),
		UnsplashAccessKey: getEnv("UNSPLASH_ACCESS_KEY", ""),
		UploadDir:         getEnv("UPLOAD_DIR", "static/uploads"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@sakmpar.co.in"),
		SiteName:          getEnv("SITE_NAME", "SAKMPAR News"),
		SiteURL:           getEnv("SITE_URL", "https://www.sakmpar.co.in"),
		SchedulerInterval: getSecondsEnv("SCHEDULER_INTERVAL_SECONDS", 1800),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
