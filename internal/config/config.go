// Package config loads host configuration with defaults for every field.
package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the host configuration.
type Config struct {
	// Directory searched for plugin libraries.
	PluginDir string `mapstructure:"plugin_dir" validate:"required"`
	// Log level for the process-wide logger.
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	// Wasm runtime settings.
	Wasm WasmConfig `mapstructure:"wasm"`
}

// WasmConfig holds Wasm runtime configuration.
type WasmConfig struct {
	// Memory limit per plugin module (in pages, 64KB each).
	MemoryPages uint32 `mapstructure:"memory_pages" validate:"gte=1"`
	// Enable debug logging for Wasm execution.
	Debug bool `mapstructure:"debug"`
}

// Load reads configuration from configPath (optional) on top of defaults,
// then validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("plugin_dir", "./plugins")
	v.SetDefault("log_level", "info")
	v.SetDefault("wasm.memory_pages", 1024) // 64MB
	v.SetDefault("wasm.debug", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
