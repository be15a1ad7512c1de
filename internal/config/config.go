package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey          = "API_PORT"
	nodeURLEnvKey          = "NODE_URL"
	nodeAPIKeyEnvKey       = "NODE_API_KEY"
	nodeTimeoutEnvKey      = "NODE_TIMEOUT"
	retryMaxAttemptsEnvKey = "RETRY_MAX_ATTEMPTS"
	retryDelayEnvKey       = "RETRY_DELAY"
	logLevelEnvKey         = "LOG_LEVEL"
)

const (
	defaultNodeTimeout      = 30 * time.Second
	defaultRetryMaxAttempts = 3
	defaultRetryDelay       = 500 * time.Millisecond
	defaultLogLevel         = "info"
)

type App struct {
	Port             string
	NodeURL          string
	NodeAPIKey       string
	NodeTimeout      time.Duration
	RetryMaxAttempts int
	RetryDelay       time.Duration
	LogLevel         string
}

// Overrides carry command line values. A non-empty field wins over the
// environment and satisfies a required variable.
type Overrides struct {
	Port     string
	NodeURL  string
	LogLevel string
}

// NewApp reads the application configuration from the environment. A .env
// file in the working directory is loaded first when one exists; variables
// already set in the process environment take precedence over it.
func NewApp(overrides Overrides) (App, error) {
	_ = godotenv.Load()

	port, err := requiredFromEnv(apiPortEnvKey, overrides.Port)
	if err != nil {
		return App{}, err
	}

	nodeURL, err := requiredFromEnv(nodeURLEnvKey, overrides.NodeURL)
	if err != nil {
		return App{}, err
	}

	nodeTimeout, err := durationFromEnv(nodeTimeoutEnvKey, defaultNodeTimeout)
	if err != nil {
		return App{}, err
	}

	maxAttempts, err := intFromEnv(retryMaxAttemptsEnvKey, defaultRetryMaxAttempts)
	if err != nil {
		return App{}, err
	}
	if maxAttempts < 1 {
		return App{}, fmt.Errorf("%s must be at least 1, got %d", retryMaxAttemptsEnvKey, maxAttempts)
	}

	retryDelay, err := durationFromEnv(retryDelayEnvKey, defaultRetryDelay)
	if err != nil {
		return App{}, err
	}

	return App{
		Port:             port,
		NodeURL:          nodeURL,
		NodeAPIKey:       stringFromEnv(nodeAPIKeyEnvKey, ""),
		NodeTimeout:      nodeTimeout,
		RetryMaxAttempts: maxAttempts,
		RetryDelay:       retryDelay,
		LogLevel:         firstNonEmpty(overrides.LogLevel, stringFromEnv(logLevelEnvKey, defaultLogLevel)),
	}, nil
}

func requiredFromEnv(key, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return value, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func stringFromEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func intFromEnv(key string, fallback int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return value, nil
}
