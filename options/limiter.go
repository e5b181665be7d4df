package options

import "time"

type (
	// LimiterOptions for RedisLimiter
	LimiterOptions struct {
		Prefix string
		TTL    time.Duration
		Limit  int
	}

	// LimiterOption function type for setting options
	LimiterOption func(*LimiterOptions)
)
