package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort         = "8080"
	defaultJWTTTL       = "24h"
	defaultCommissionBP = 1000 // 10%
	defaultCancelCutoff = "24h"
)

// Runtime is the process configuration, sourced from the environment.
type Runtime struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// CommissionBP is the platform commission in basis points.
	CommissionBP int64
	// CancelCutoff is how long before a booking starts the requester may
	// still cancel it. Staff and admin are not bound by it.
	CancelCutoff time.Duration
}

func Load() (*Runtime, error) {
	cfg := &Runtime{
		Port:         getenv("PORT", defaultPort),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CommissionBP: defaultCommissionBP,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cutoff, err := time.ParseDuration(getenv("CANCEL_CUTOFF", defaultCancelCutoff))
	if err != nil {
		return nil, fmt.Errorf("CANCEL_CUTOFF: %w", err)
	}
	cfg.CancelCutoff = cutoff

	if raw := os.Getenv("COMMISSION_RATE_BP"); raw != "" {
		bp, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || bp < 0 || bp > 10000 {
			return nil, fmt.Errorf("COMMISSION_RATE_BP must be an integer in [0, 10000]")
		}
		cfg.CommissionBP = bp
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
