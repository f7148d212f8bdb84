// Package config provides configuration loading and validation for ope.
//
// It uses Viper to load configuration from a YAML file with environment
// variable overrides (OPE_ prefix, underscore-separated paths, e.g.
// OPE_MATCHER_CACHE_SIZE), and godotenv to load a .env file when present.
//
// # Usage
//
//	cfg, err := config.Load("config.yml")
//	m, err := matcher.New(cfg.Matcher.CacheSize,
//	    matcher.WithDelimiters(cfg.Matcher.Delimiters()))
package config
