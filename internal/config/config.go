package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	StoragePath string
	JWTSecret   string
	ServerPort  string

	// optional Redis backend for verification codes
	RedisAddr string

	// artificial delay of the simulated SMS transport
	SMSDelay time.Duration

	// avatar upload (disabled when the bucket is empty)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string
	S3PublicURL string
}

func Load() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	return &Config{
		StoragePath: getEnv("STORAGE_PATH", "taskflow.db"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		SMSDelay:    time.Duration(getEnvInt("SMS_DELAY_MS", 1000)) * time.Millisecond,
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
