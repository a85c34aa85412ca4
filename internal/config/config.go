package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// EnvPrefix is prepended to every environment variable the plugin reads
const EnvPrefix = "HELLOWORLD_"

// Config holds the plugin runtime settings
type Config struct {
	PluginDir string `env:"PLUGIN_DIR"`
	Language  string `env:"LANGUAGE" envDefault:"en"`
	IconPath  string `env:"ICON_PATH" envDefault:"Images/app.ico"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"LOG_FILE"`
	Debug     bool   `env:"DEBUG"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFromMap reads the configuration from the given variables only
func LoadFromMap(environment map[string]string) (*Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if cfg.PluginDir == "" {
		cfg.PluginDir = executableDir()
	}
	return cfg, nil
}

// Default returns the configuration used when loading fails
func Default() *Config {
	return &Config{
		PluginDir: executableDir(),
		Language:  "en",
		IconPath:  "Images/app.ico",
		LogLevel:  "info",
	}
}

// ResolveIcon returns the icon path the host should load.
// Relative paths are resolved by the launcher against the plugin directory,
// so they are passed through untouched.
func (c *Config) ResolveIcon() string {
	if c.IconPath == "" {
		return Default().IconPath
	}
	return filepath.ToSlash(c.IconPath)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
