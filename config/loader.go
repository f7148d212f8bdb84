package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "OPE"

// Load reads configuration from the given file, layering OPE_-prefixed
// environment variables on top. An empty path falls back to the
// OPE_CONFIG environment variable, then to ./config.yml; a missing file
// is not an error — defaults plus environment variables apply.
func Load(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path == "" {
		path = "config.yml"
	}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	bindEnvKeys(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// bindEnvKeys registers the known keys so AutomaticEnv sees them even when
// the config file omits them entirely.
func bindEnvKeys(v *viper.Viper) {
	for _, key := range []string{
		"name",
		"environment",
		"debug",
		"matcher.cache_size",
		"matcher.delimiter_start",
		"matcher.delimiter_end",
		"logging.level",
		"logging.format",
		"logging.output",
	} {
		_ = v.BindEnv(key)
	}
}

// loadEnvFile loads a .env file from the working directory when present.
func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}
