package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIPort     string
	ServiceName string
	LogLevel    string

	VisionBaseURL string
	VisionAPIKey  string
	VisionModel   string

	StoragePath    string
	PublicBaseURL  string
	MaxUploadBytes int64

	APIRateLimitRPS  int
	APIRateLimitBurst int
	AIRateLimitRPS   int
	AIRateLimitBurst int
	MaxInFlight      int
	BackpressureWait time.Duration

	RetryMaxAttempts    int
	RetryInitialBackoff time.Duration
	RetryMaxBackoff     time.Duration
	BreakerEnabled      bool
	BreakerMinRequests  int
	BreakerFailureRatio float64
	BreakerOpenTimeout  time.Duration
}

func Load() Config {
	return Config{
		APIPort:     mustEnv("API_PORT", "8080"),
		ServiceName: mustEnv("SERVICE_NAME", "packing-api"),
		LogLevel:    mustEnv("LOG_LEVEL", "info"),

		VisionBaseURL: mustEnv("VISION_BASE_URL", "https://api.openai.com"),
		VisionAPIKey:  mustEnv("VISION_API_KEY", ""),
		VisionModel:   mustEnv("VISION_MODEL", "gpt-4o"),

		StoragePath:    mustEnv("STORAGE_PATH", "./data/uploads"),
		PublicBaseURL:  mustEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		MaxUploadBytes: int64(mustEnvInt("MAX_UPLOAD_BYTES", 10<<20)),

		APIRateLimitRPS:   mustEnvInt("API_RATE_LIMIT_RPS", 50),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 100),
		AIRateLimitRPS:    mustEnvInt("AI_RATE_LIMIT_RPS", 2),
		AIRateLimitBurst:  mustEnvInt("AI_RATE_LIMIT_BURST", 5),
		MaxInFlight:       mustEnvInt("MAX_IN_FLIGHT", 64),
		BackpressureWait:  mustEnvDuration("BACKPRESSURE_WAIT", 200*time.Millisecond),

		RetryMaxAttempts:    mustEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryInitialBackoff: mustEnvDuration("RETRY_INITIAL_BACKOFF", 500*time.Millisecond),
		RetryMaxBackoff:     mustEnvDuration("RETRY_MAX_BACKOFF", 5*time.Second),
		BreakerEnabled:      mustEnvBool("BREAKER_ENABLED", true),
		BreakerMinRequests:  mustEnvInt("BREAKER_MIN_REQUESTS", 5),
		BreakerFailureRatio: mustEnvFloat("BREAKER_FAILURE_RATIO", 0.5),
		BreakerOpenTimeout:  mustEnvDuration("BREAKER_OPEN_TIMEOUT", 30*time.Second),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
