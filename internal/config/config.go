package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string

	StoreBackend string // redis | file | memory
	StoreKey     string
	StoreFile    string
	StoreTTLDays int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LogLevel string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		StoreBackend:  getEnv("STORE_BACKEND", "memory"),
		StoreKey:      getEnv("STORE_KEY", "davantedent_citas"),
		StoreFile:     getEnv("STORE_FILE", "citas.json"),
		StoreTTLDays:  getEnvInt("STORE_TTL_DAYS", 365),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
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

func (c *Config) StoreTTL() time.Duration {
	return time.Duration(c.StoreTTLDays) * 24 * time.Hour
}
