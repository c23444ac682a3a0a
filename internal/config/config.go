// Package config loads client configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved client configuration.
type Config struct {
	API struct {
		BaseURL string
		Timeout time.Duration
	}
	TokenFile string
}

// Load reads config.yaml from the user config dir (or the working
// directory), layered under BLOGCTL_* environment variables and defaults.
// A missing config file is fine; everything has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	confDir := ""
	if dir, err := os.UserConfigDir(); err == nil {
		confDir = filepath.Join(dir, "blogctl")
		v.AddConfigPath(confDir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("BLOGCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.baseurl", "http://127.0.0.1:8000")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("tokenfile", filepath.Join(confDir, "token.json"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
