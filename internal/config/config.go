package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	RepoRoot       string
	GitBin         string
	DiffContext    int
	MaxFileBytes   int64
	RateLimitRPS   int
	RateLimitBurst int
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "7410"),
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "debug"),
		RepoRoot:       getEnv("REPO_ROOT", "."),
		GitBin:         getEnv("GIT_BIN", "git"),
		DiffContext:    getEnvInt("DIFF_CONTEXT", 3),
		MaxFileBytes:   getEnvInt64("MAX_FILE_BYTES", 1<<20),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}

func getEnvInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}
