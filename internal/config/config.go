package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	Port          string
	DBPath        string
	PartitionSize int // rows per ingestion partition
	IngestWorkers int // concurrent partition transforms
	RateLimit     int // requests per IP per minute
}

// Load 加载配置
func Load() *Config {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", ":8080"),
		DBPath:        getEnv("DB_PATH", "./data/fares/fares.db"),
		PartitionSize: getEnvInt("PARTITION_SIZE", 10000),
		IngestWorkers: getEnvInt("INGEST_WORKERS", 4),
		RateLimit:     getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
