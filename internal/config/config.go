// Package config loads the application configuration from defaults, an
// optional config.yaml and MATHPAL_ environment variables, with hot
// reload on file change.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Conf holds the application configuration, accessible globally after Init.
var Conf *Config

// Config is the top-level configuration structure.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Engine   EngineConfig   `mapstructure:"engine"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// DatabaseConfig holds the sqlite database location. An empty path means
// the per-user default location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds settings for the rotating file logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// EngineConfig tunes the feedback engine.
type EngineConfig struct {
	// BranchTimeoutMs bounds each concurrent read of the comprehensive
	// feedback fan-out.
	BranchTimeoutMs int `mapstructure:"branch_timeout_ms"`
	// TrendWindowDays is the trailing performance window.
	TrendWindowDays int `mapstructure:"trend_window_days"`
}

// LLMConfig selects the encouragement message provider. API keys come
// from the environment only, never from the config file.
type LLMConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

// BranchTimeout returns the configured fan-out timeout as a Duration.
func (e EngineConfig) BranchTimeout() time.Duration {
	return time.Duration(e.BranchTimeoutMs) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")

	v.SetDefault("database.path", "")

	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.compress", true)

	v.SetDefault("engine.branch_timeout_ms", 2000)
	v.SetDefault("engine.trend_window_days", 7)

	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.model", "")
}

// Init initializes the configuration with Viper. The config file is
// optional; defaults and MATHPAL_ environment variables always apply.
func Init(configDir string, log *zap.Logger) error {
	v := viper.New()

	setDefaults(v)

	v.AddConfigPath(filepath.Join(configDir))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MATHPAL") // e.g. MATHPAL_SERVER_PORT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
