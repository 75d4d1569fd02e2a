package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	StorePort         string
	TaskAPIBaseURL    string
	TaskAPITimeout    time.Duration
	TranslationFolder string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		StorePort:         getEnv("STORE_PORT", "5000"),
		TaskAPIBaseURL:    strings.TrimRight(getEnv("TASK_API_BASE_URL", "http://localhost:5000"), "/"),
		TaskAPITimeout:    getDuration("TASK_API_TIMEOUT", 10*time.Second),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "tasklite"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "tasklite"),
		DbName:            getEnv("MYSQL_DATABASE", "tasklite"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
