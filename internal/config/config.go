package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/galraemalrae/weathertravel/internal/geo"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Region used when the browser denies geolocation.
	DefaultRegion geo.Region

	// OpenWeather provider.
	OpenWeatherAPIKey  string
	OpenWeatherTimeout time.Duration

	// Korean tourism open-data (KorService2) provider.
	TourAPIKey     string
	TourAPITimeout time.Duration
	EventRows      int

	// Provider response cache.
	CacheSize int
	CacheTTL  time.Duration
}

// Load reads configuration from the environment, applying defaults where
// unset. A .env file in the working directory is honored when present
// (local development); a missing file is not an error. Provider API keys
// may be empty; requests will then fail at the provider boundary, which
// keeps the server bootable for ops endpoints without credentials.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	weatherTimeout, err := parseDuration("OPENWEATHER_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	tourTimeout, err := parseDuration("TOURAPI_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parseDuration("CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	cacheSize, err := parsePositiveInt("CACHE_SIZE", 500)
	if err != nil {
		return nil, err
	}
	eventRows, err := parsePositiveInt("EVENT_ROWS", 50)
	if err != nil {
		return nil, err
	}

	defaultRegion := envOrDefault("DEFAULT_REGION", "seoul")
	region, err := geo.ParseRegion(defaultRegion)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_REGION %q: %w", defaultRegion, err)
	}

	return &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		DefaultRegion:   region,

		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		OpenWeatherTimeout: weatherTimeout,

		TourAPIKey:     os.Getenv("TOURAPI_KEY"),
		TourAPITimeout: tourTimeout,
		EventRows:      eventRows,

		CacheSize: cacheSize,
		CacheTTL:  cacheTTL,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
