package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	LogFormatJSON = "json"
	LogFormatText = "text"

	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
)

// Auth holds the HTTP basic auth settings for the lifecycle routes.
type Auth struct {
	Enabled  bool
	User     string
	Password string
}

// Config is read once at startup and not changed afterwards.
type Config struct {
	KubeConfig       string
	KubeMaster       string
	LogLevel         string
	LogFormat        string
	HTTPPort         string
	MetricsPort      string
	PingerInterval   time.Duration
	RequestTimeout   time.Duration
	BatchConcurrency int
	TracingExporter  string
	Schedules        string
	ScheduleTZ       string
	TerminationFile  string
	Auth             Auth
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:      getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:      getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:        strings.ToLower(getEnvOrDefault(envKeyLogLevel, "info")),
		LogFormat:       strings.ToLower(getEnvOrDefault(envKeyLogFormat, LogFormatJSON)),
		HTTPPort:        getEnvOrDefault(envKeyHTTPPort, "8080"),
		MetricsPort:     getEnvOrDefault(envKeyMetricsPort, "9090"),
		TracingExporter: strings.ToLower(getEnvOrDefault(envKeyTracingExporter, TracingExporterNone)),
		Schedules:       os.Getenv(envKeySchedules),
		ScheduleTZ:      getEnvOrDefault(envKeyScheduleTZ, "UTC"),
		TerminationFile: os.Getenv(envKeyTerminationFile),
	}

	var err error

	cfg.PingerInterval, err = getDuration(envKeyPingerInterval, "10s", envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = getDuration(envKeyRequestTimeout, "60s", envMinRequestTimeout)
	if err != nil {
		return nil, err
	}

	cfg.BatchConcurrency, err = getInt(
		envKeyBatchConcurrency, "4", envMinBatchConcurrency, envMaxBatchConcurrency,
	)
	if err != nil {
		return nil, err
	}

	cfg.Auth, err = loadAuth()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s must be one of debug, info, warn, error, got %q",
			ErrInvalidConfig, envKeyLogLevel, c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: %s must be json or text, got %q", ErrInvalidConfig, envKeyLogFormat, c.LogFormat)
	}

	switch c.TracingExporter {
	case TracingExporterNone, TracingExporterStdout:
	default:
		return fmt.Errorf("%w: %s must be none or stdout, got %q",
			ErrInvalidConfig, envKeyTracingExporter, c.TracingExporter)
	}

	if _, err := time.LoadLocation(c.ScheduleTZ); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, envKeyScheduleTZ, err)
	}

	return nil
}

func loadAuth() (Auth, error) {
	auth := Auth{
		Enabled:  strings.EqualFold(strings.TrimSpace(os.Getenv(envKeyEnableBasicAuth)), "true"),
		User:     os.Getenv(envKeyBasicAuthUser),
		Password: os.Getenv(envKeyBasicAuthPassword),
	}

	if auth.Enabled && (auth.User == "" || auth.Password == "") {
		return Auth{}, fmt.Errorf("%w: %s is enabled but %s or %s is empty",
			ErrInvalidConfig, envKeyEnableBasicAuth, envKeyBasicAuthUser, envKeyBasicAuthPassword)
	}

	return auth, nil
}

func getDuration(key, defaultValue string, minValue time.Duration) (time.Duration, error) {
	raw := getEnvOrDefault(key, defaultValue)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%w: %s must be at least %s, got %s", ErrInvalidConfig, key, minValue, d)
	}

	return d, nil
}

func getInt(key, defaultValue string, minValue, maxValue int) (int, error) {
	raw := getEnvOrDefault(key, defaultValue)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, key, err)
	}

	if n < minValue || n > maxValue {
		return 0, fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidConfig, key, minValue, maxValue, n)
	}

	return n, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
