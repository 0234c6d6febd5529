package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	SessionSecret string
	UsersFile     string
	ModelsDir     string
	LogDir        string
	RedisAddr     string
	RedisPassword string
	SessionTTL    time.Duration
}

func New() *Config {
	return &Config{
		Port:          getEnv("PORT", "5000"),
		SessionSecret: getEnv("SESSION_SECRET", "mysuru_smart_farm"),
		UsersFile:     getEnv("USERS_FILE", "users.json"),
		ModelsDir:     getEnv("MODELS_DIR", "models"),
		LogDir:        getEnv("LOG_DIR", "log"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PWD"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
