package config

import (
	"testing"
	"time"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("AI_RATE_LIMIT_RPS", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("BACKPRESSURE_WAIT", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default api port 8080, got %q", cfg.APIPort)
	}
	if cfg.AIRateLimitRPS != 2 {
		t.Fatalf("expected default AI rate limit 2 rps, got %d", cfg.AIRateLimitRPS)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected default upload cap 10MiB, got %d", cfg.MaxUploadBytes)
	}
	if cfg.BackpressureWait != 200*time.Millisecond {
		t.Fatalf("expected default backpressure wait 200ms, got %v", cfg.BackpressureWait)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("VISION_MODEL", "gpt-4o-mini")
	t.Setenv("API_RATE_LIMIT_RPS", "10")
	t.Setenv("BREAKER_FAILURE_RATIO", "0.75")
	t.Setenv("RETRY_INITIAL_BACKOFF", "250ms")

	cfg := Load()
	if cfg.APIPort != "9000" {
		t.Fatalf("expected api port override, got %q", cfg.APIPort)
	}
	if cfg.VisionModel != "gpt-4o-mini" {
		t.Fatalf("expected vision model override, got %q", cfg.VisionModel)
	}
	if cfg.APIRateLimitRPS != 10 {
		t.Fatalf("expected rate limit 10, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.BreakerFailureRatio != 0.75 {
		t.Fatalf("expected breaker failure ratio 0.75, got %v", cfg.BreakerFailureRatio)
	}
	if cfg.RetryInitialBackoff != 250*time.Millisecond {
		t.Fatalf("expected retry backoff 250ms, got %v", cfg.RetryInitialBackoff)
	}
}

func TestLoadFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("BREAKER_ENABLED", "not-a-bool")
	t.Setenv("RETRY_MAX_BACKOFF", "whenever")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected fallback rate limit 50, got %d", cfg.APIRateLimitRPS)
	}
	if !cfg.BreakerEnabled {
		t.Fatalf("expected breaker enabled fallback true")
	}
	if cfg.RetryMaxBackoff != 5*time.Second {
		t.Fatalf("expected fallback retry max backoff 5s, got %v", cfg.RetryMaxBackoff)
	}
}
