package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultMinNights    = 1
	DefaultMaxNights    = 30
	DefaultCheckInTime  = "15:00"
	DefaultCheckOutTime = "11:00"

	DefaultDepositFraction = 0.30

	DefaultFullRefundDays       = 7
	DefaultPartialRefundDays    = 3
	DefaultPartialRefundPercent = 0.5

	DefaultNotifyWorkers   = 3
	DefaultNotifyQueueSize = 64
	DefaultNotifyLatency   = 500 * time.Millisecond

	DefaultKafkaEnabled = false
)
