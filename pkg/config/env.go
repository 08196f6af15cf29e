package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvMinNights    = "BOOKING_MIN_NIGHTS"
	EnvMaxNights    = "BOOKING_MAX_NIGHTS"
	EnvCheckInTime  = "BOOKING_CHECK_IN_TIME"
	EnvCheckOutTime = "BOOKING_CHECK_OUT_TIME"

	EnvDepositFraction = "BOOKING_DEPOSIT_FRACTION"

	EnvFullRefundDays       = "CANCELLATION_FULL_REFUND_DAYS"
	EnvPartialRefundDays    = "CANCELLATION_PARTIAL_REFUND_DAYS"
	EnvPartialRefundPercent = "CANCELLATION_PARTIAL_REFUND_PERCENT"

	EnvNotifyWorkers   = "NOTIFY_WORKERS"
	EnvNotifyQueueSize = "NOTIFY_QUEUE_SIZE"
	EnvNotifyLatency   = "NOTIFY_LATENCY"

	EnvKafkaEnabled = "KAFKA_ENABLED"
)
