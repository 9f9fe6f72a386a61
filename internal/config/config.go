package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Store struct {
	DataDir string
}

type Twitter struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

type Config struct {
	ServerPort           int
	Store                Store
	Twitter              Twitter
	JWTSecretKey         string
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	HTTPClientTimeout    time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadStore() Store {
	return Store{
		DataDir: getEnv("DATA_DIR", "database"),
	}
}

func LoadTwitter() Twitter {
	return Twitter{
		APIKey:       getEnv("TWITTER_API_KEY", ""),
		APISecret:    getEnv("TWITTER_API_SECRET", ""),
		AccessToken:  getEnv("TWITTER_ACCESS_TOKEN", ""),
		AccessSecret: getEnv("TWITTER_ACCESS_SECRET", ""),
	}
}

// Configured проверяет, что заданы все четыре учетные строки
func (t Twitter) Configured() bool {
	return t.APIKey != "" && t.APISecret != "" && t.AccessToken != "" && t.AccessSecret != ""
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:           getEnvAsInt("SERVER_PORT", 3001),
		Store:                LoadStore(),
		Twitter:              LoadTwitter(),
		JWTSecretKey:         getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration:  parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		RefreshTokenDuration: parseDuration(getEnv("REFRESH_TOKEN_DURATION", "168h"), 168*time.Hour),
		// 0 означает без таймаута на внешние вызовы
		HTTPClientTimeout: parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "0"), 0),
	}
}
