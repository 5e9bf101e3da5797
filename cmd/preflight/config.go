package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/wphost/preflight/internal/core/params"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Parameters ParametersConfig `mapstructure:"parameters"`
}

// ServerConfig holds HTTP server configuration for serve mode.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParametersConfig holds the proposed deployment parameters. Each field is
// sourced from the config file, a PREFLIGHT_-prefixed variable, or the
// deployment automation's own environment variable (AZURE_ENV_NAME and
// friends), in that order of precedence.
type ParametersConfig struct {
	EnvironmentName       string `mapstructure:"environment_name"`
	SiteName              string `mapstructure:"site_name"`
	DatabaseAdminUser     string `mapstructure:"database_admin_user"`
	DatabaseAdminPassword string `mapstructure:"database_admin_password"`
	AllowedIPAddress      string `mapstructure:"allowed_ip_address"`
	ResourceGroupName     string `mapstructure:"resource_group_name"`
}

// Map returns the parameters as the flat key-value form the core consumes.
func (c ParametersConfig) Map() map[string]string {
	return map[string]string{
		params.KeyEnvironmentName:       c.EnvironmentName,
		params.KeySiteName:              c.SiteName,
		params.KeyDatabaseAdminUser:     c.DatabaseAdminUser,
		params.KeyDatabaseAdminPassword: c.DatabaseAdminPassword,
		params.KeyAllowedIPAddress:      c.AllowedIPAddress,
		params.KeyResourceGroupName:     c.ResourceGroupName,
	}
}

// =============================================================================
// Config Loading
// =============================================================================

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Load from file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			// File not found is OK, we'll use defaults
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("PREFLIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Each parameter also accepts the deployment automation's own variable.
	if err := bindParameterEnv(v); err != nil {
		return nil, fmt.Errorf("failed to bind parameter environment variables: %w", err)
	}

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bindParameterEnv(v *viper.Viper) error {
	aliases := map[string]string{
		"parameters.environment_name":        params.EnvEnvironmentName,
		"parameters.site_name":               params.EnvSiteName,
		"parameters.database_admin_user":     params.EnvDatabaseAdminUser,
		"parameters.database_admin_password": params.EnvDatabaseAdminPassword,
		"parameters.allowed_ip_address":      params.EnvAllowedIPAddress,
		"parameters.resource_group_name":     params.EnvResourceGroupName,
	}
	for key, alias := range aliases {
		// The PREFLIGHT_-prefixed form is listed first so it wins.
		prefixed := "PREFLIGHT_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
// Log output goes to stderr so that report rendering owns stdout.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
