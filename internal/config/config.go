package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Platform  PlatformConfig
	Warehouse WarehouseConfig
	Artifacts ArtifactsConfig
	Sweep     SweepConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type PlatformConfig struct {
	URL     string
	Project string
	Timeout time.Duration
}

type WarehouseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c WarehouseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type ArtifactsConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
}

type SweepConfig struct {
	PollInterval    time.Duration
	PollMaxInterval time.Duration
	PollTimeout     time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("PLATFORM_URL", "http://localhost:8090/v1")
	v.SetDefault("PLATFORM_PROJECT", "")
	v.SetDefault("PLATFORM_TIMEOUT", "30s")
	v.SetDefault("WAREHOUSE_ENABLED", false)
	v.SetDefault("WAREHOUSE_HOST", "localhost")
	v.SetDefault("WAREHOUSE_PORT", 5432)
	v.SetDefault("WAREHOUSE_USER", "warehouse")
	v.SetDefault("WAREHOUSE_PASSWORD", "")
	v.SetDefault("WAREHOUSE_NAME", "analytics")
	v.SetDefault("WAREHOUSE_SSLMODE", "disable")
	v.SetDefault("WAREHOUSE_MAX_OPEN_CONNS", 10)
	v.SetDefault("WAREHOUSE_MAX_IDLE_CONNS", 2)
	v.SetDefault("WAREHOUSE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("ARTIFACTS_ENABLED", false)
	v.SetDefault("ARTIFACTS_ENDPOINT", "")
	v.SetDefault("ARTIFACTS_REGION", "us-east-1")
	v.SetDefault("ARTIFACTS_ACCESS_KEY", "")
	v.SetDefault("ARTIFACTS_SECRET_KEY", "")
	v.SetDefault("ARTIFACTS_BUCKET", "ml-artifacts")
	v.SetDefault("SWEEP_POLL_INTERVAL", "5s")
	v.SetDefault("SWEEP_POLL_MAX_INTERVAL", "80s")
	v.SetDefault("SWEEP_POLL_TIMEOUT", "15m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Platform: PlatformConfig{
			URL:     v.GetString("PLATFORM_URL"),
			Project: v.GetString("PLATFORM_PROJECT"),
			Timeout: duration(v, "PLATFORM_TIMEOUT", 30*time.Second),
		},
		Warehouse: WarehouseConfig{
			Enabled:         v.GetBool("WAREHOUSE_ENABLED"),
			Host:            v.GetString("WAREHOUSE_HOST"),
			Port:            v.GetInt("WAREHOUSE_PORT"),
			User:            v.GetString("WAREHOUSE_USER"),
			Password:        v.GetString("WAREHOUSE_PASSWORD"),
			Name:            v.GetString("WAREHOUSE_NAME"),
			SSLMode:         v.GetString("WAREHOUSE_SSLMODE"),
			MaxOpenConns:    v.GetInt("WAREHOUSE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("WAREHOUSE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: duration(v, "WAREHOUSE_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Artifacts: ArtifactsConfig{
			Enabled:   v.GetBool("ARTIFACTS_ENABLED"),
			Endpoint:  v.GetString("ARTIFACTS_ENDPOINT"),
			Region:    v.GetString("ARTIFACTS_REGION"),
			AccessKey: v.GetString("ARTIFACTS_ACCESS_KEY"),
			SecretKey: v.GetString("ARTIFACTS_SECRET_KEY"),
			Bucket:    v.GetString("ARTIFACTS_BUCKET"),
		},
		Sweep: SweepConfig{
			PollInterval:    duration(v, "SWEEP_POLL_INTERVAL", 5*time.Second),
			PollMaxInterval: duration(v, "SWEEP_POLL_MAX_INTERVAL", 80*time.Second),
			PollTimeout:     duration(v, "SWEEP_POLL_TIMEOUT", 15*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return fallback
	}
	return d
}
