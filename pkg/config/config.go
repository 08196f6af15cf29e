package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"montecampo/pkg/logger"
)

type Config struct {
	Port string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Rules BusinessRules

	NotifyWorkers   int
	NotifyQueueSize int
	NotifyLatency   time.Duration

	KafkaEnabled bool

	Log *logger.Logger
}

// BusinessRules holds the property-wide booking constants. They are read-only
// input to both the availability engine and the lifecycle manager.
type BusinessRules struct {
	MinNights int
	MaxNights int

	CheckInTime  string
	CheckOutTime string

	DepositFraction float64

	FullRefundDays       int
	PartialRefundDays    int
	PartialRefundPercent float64
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Rules: BusinessRules{
			MinNights:            getEnvNum(EnvMinNights, DefaultMinNights),
			MaxNights:            getEnvNum(EnvMaxNights, DefaultMaxNights),
			CheckInTime:          getEnvStr(EnvCheckInTime, DefaultCheckInTime),
			CheckOutTime:         getEnvStr(EnvCheckOutTime, DefaultCheckOutTime),
			DepositFraction:      getEnvFloat(EnvDepositFraction, DefaultDepositFraction),
			FullRefundDays:       getEnvNum(EnvFullRefundDays, DefaultFullRefundDays),
			PartialRefundDays:    getEnvNum(EnvPartialRefundDays, DefaultPartialRefundDays),
			PartialRefundPercent: getEnvFloat(EnvPartialRefundPercent, DefaultPartialRefundPercent),
		},

		NotifyWorkers:   getEnvNum(EnvNotifyWorkers, DefaultNotifyWorkers),
		NotifyQueueSize: getEnvNum(EnvNotifyQueueSize, DefaultNotifyQueueSize),
		NotifyLatency:   getEnvDuration(EnvNotifyLatency, DefaultNotifyLatency),

		KafkaEnabled: getEnvBool(EnvKafkaEnabled, DefaultKafkaEnabled),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	timeRegex := regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	if !timeRegex.MatchString(cfg.Rules.CheckInTime) {
		errs = append(errs, fmt.Sprintf("CheckInTime must be in HH:MM format, got: %s", cfg.Rules.CheckInTime))
	}
	if !timeRegex.MatchString(cfg.Rules.CheckOutTime) {
		errs = append(errs, fmt.Sprintf("CheckOutTime must be in HH:MM format, got: %s", cfg.Rules.CheckOutTime))
	}

	if cfg.Rules.MinNights < 1 {
		errs = append(errs, fmt.Sprintf("MinNights must be at least 1, got: %d", cfg.Rules.MinNights))
	}
	if cfg.Rules.MaxNights < cfg.Rules.MinNights {
		errs = append(errs, fmt.Sprintf("MaxNights (%d) must be >= MinNights (%d)", cfg.Rules.MaxNights, cfg.Rules.MinNights))
	}
	if cfg.Rules.DepositFraction <= 0 || cfg.Rules.DepositFraction > 1 {
		errs = append(errs, fmt.Sprintf("DepositFraction must be in (0, 1], got: %g", cfg.Rules.DepositFraction))
	}
	if cfg.Rules.PartialRefundDays < 0 {
		errs = append(errs, fmt.Sprintf("PartialRefundDays cannot be negative, got: %d", cfg.Rules.PartialRefundDays))
	}
	if cfg.Rules.FullRefundDays < cfg.Rules.PartialRefundDays {
		errs = append(errs, fmt.Sprintf("FullRefundDays (%d) must be >= PartialRefundDays (%d)", cfg.Rules.FullRefundDays, cfg.Rules.PartialRefundDays))
	}
	if cfg.Rules.PartialRefundPercent < 0 || cfg.Rules.PartialRefundPercent > 1 {
		errs = append(errs, fmt.Sprintf("PartialRefundPercent must be in [0, 1], got: %g", cfg.Rules.PartialRefundPercent))
	}

	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.IdempotencyTTL <= 0 {
		errs = append(errs, fmt.Sprintf("IdempotencyTTL must be positive, got: %s", cfg.IdempotencyTTL))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.NotifyWorkers <= 0 {
		errs = append(errs, fmt.Sprintf("NotifyWorkers must be positive, got: %d", cfg.NotifyWorkers))
	}
	if cfg.NotifyQueueSize <= 0 {
		errs = append(errs, fmt.Sprintf("NotifyQueueSize must be positive, got: %d", cfg.NotifyQueueSize))
	}
	if cfg.NotifyLatency < 0 {
		errs = append(errs, fmt.Sprintf("NotifyLatency cannot be negative, got: %s", cfg.NotifyLatency))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"idempotency_ttl", cfg.IdempotencyTTL,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"min_nights", cfg.Rules.MinNights,
		"max_nights", cfg.Rules.MaxNights,
		"check_in_time", cfg.Rules.CheckInTime,
		"check_out_time", cfg.Rules.CheckOutTime,
		"deposit_fraction", cfg.Rules.DepositFraction,
		"full_refund_days", cfg.Rules.FullRefundDays,
		"partial_refund_days", cfg.Rules.PartialRefundDays,
		"partial_refund_percent", cfg.Rules.PartialRefundPercent,
		"notify_workers", cfg.NotifyWorkers,
		"notify_queue_size", cfg.NotifyQueueSize,
		"notify_latency", cfg.NotifyLatency,
		"kafka_enabled", cfg.KafkaEnabled,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
