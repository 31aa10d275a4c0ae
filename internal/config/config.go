package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/atlasfield/fieldops-agent-go/internal/domain/attendance"
)

type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Store    StoreConfig
	Location LocationConfig
	Policy   attendance.Policy
}

// AppConfig holds the localhost API configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	UIOrigin string
}

// BackendConfig points the agent at the field-operations backend
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// StoreConfig selects the device state backend
type StoreConfig struct {
	Type          string // "file" or "redis"
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// LocationConfig is the fixed position reported by kiosk installs. Mobile
// installs replace the static provider at wiring time.
type LocationConfig struct {
	Latitude  float64
	Longitude float64
	Accuracy  float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "7180"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		UIOrigin: getEnv("UI_ORIGIN", "http://localhost:3000"),
	}

	backendTimeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	config.Backend = BackendConfig{
		BaseURL: getEnv("BACKEND_BASE_URL", ""),
		Timeout: backendTimeout,
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Store = StoreConfig{
		Type:          getEnv("STORE_TYPE", "file"),
		Path:          getEnv("STORE_PATH", "./data"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		RedisPrefix:   getEnv("REDIS_PREFIX", "fieldops-agent"),
	}

	lat, err := strconv.ParseFloat(getEnv("DEVICE_LATITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_LATITUDE: %w", err)
	}
	lon, err := strconv.ParseFloat(getEnv("DEVICE_LONGITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_LONGITUDE: %w", err)
	}
	accuracy, err := strconv.ParseFloat(getEnv("DEVICE_ACCURACY", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEVICE_ACCURACY: %w", err)
	}

	config.Location = LocationConfig{
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  accuracy,
	}

	config.Policy, err = loadPolicy()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadPolicy starts from the production shift windows and applies any
// HH:MM overrides from the environment.
func loadPolicy() (attendance.Policy, error) {
	policy := attendance.DefaultPolicy()

	overrides := []struct {
		env    string
		target *int
	}{
		{"SHIFT_WINDOW_OPEN", &policy.WindowOpen},
		{"SHIFT_GATE_OPEN", &policy.GateOpen},
		{"SHIFT_LATE_THRESHOLD", &policy.LateThreshold},
		{"SHIFT_CLOCK_IN_CUTOFF", &policy.ClockInCutoff},
		{"SHIFT_WORK_END", &policy.WorkEnd},
		{"SHIFT_ABSOLUTE_END", &policy.AbsoluteEnd},
	}

	for _, o := range overrides {
		value := os.Getenv(o.env)
		if value == "" {
			continue
		}
		minute, err := parseClock(value)
		if err != nil {
			return attendance.Policy{}, fmt.Errorf("invalid %s: %w", o.env, err)
		}
		*o.target = minute
	}
	return policy, nil
}

func parseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if c.Store.Type != "file" && c.Store.Type != "redis" {
		return fmt.Errorf("STORE_TYPE must be file or redis, got %q", c.Store.Type)
	}
	if c.Store.Type == "redis" && c.Store.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required for the redis store")
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("DEVICE_LATITUDE out of range")
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("DEVICE_LONGITUDE out of range")
	}

	p := c.Policy
	if !(p.WindowOpen <= p.GateOpen && p.GateOpen <= p.LateThreshold &&
		p.LateThreshold <= p.ClockInCutoff && p.ClockInCutoff <= p.WorkEnd &&
		p.WorkEnd <= p.AbsoluteEnd) {
		return fmt.Errorf("shift windows must be in chronological order")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
