package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/crochee/ope/logger"
)

// Config is the root configuration for services embedding the matcher.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Matcher     MatcherConfig `yaml:"matcher" mapstructure:"matcher"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// MatcherConfig configures the pattern matcher and its compiled-pattern
// cache. Delimiters are single characters; they are fixed for the life of
// the matcher built from this config.
type MatcherConfig struct {
	CacheSize      int    `yaml:"cache_size" mapstructure:"cache_size"`
	DelimiterStart string `yaml:"delimiter_start" mapstructure:"delimiter_start"`
	DelimiterEnd   string `yaml:"delimiter_end" mapstructure:"delimiter_end"`
}

// Delimiters returns the configured delimiter pair as runes.
// Call only after Validate.
func (c *MatcherConfig) Delimiters() (rune, rune) {
	start, _ := utf8.DecodeRuneInString(c.DelimiterStart)
	end, _ := utf8.DecodeRuneInString(c.DelimiterEnd)
	return start, end
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Matcher.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// ApplyDefaults applies default values to the matcher configuration.
func (c *MatcherConfig) ApplyDefaults() {
	if c.CacheSize == 0 {
		c.CacheSize = 512
	}
	if c.DelimiterStart == "" {
		c.DelimiterStart = "<"
	}
	if c.DelimiterEnd == "" {
		c.DelimiterEnd = ">"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Matcher.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate validates the matcher configuration.
func (c *MatcherConfig) Validate() error {
	if c.CacheSize < 1 {
		return fmt.Errorf("matcher.cache_size must be at least 1 (got: %d)", c.CacheSize)
	}
	if utf8.RuneCountInString(c.DelimiterStart) != 1 {
		return fmt.Errorf("matcher.delimiter_start must be a single character (got: %q)", c.DelimiterStart)
	}
	if utf8.RuneCountInString(c.DelimiterEnd) != 1 {
		return fmt.Errorf("matcher.delimiter_end must be a single character (got: %q)", c.DelimiterEnd)
	}
	if c.DelimiterStart == c.DelimiterEnd {
		return fmt.Errorf("matcher delimiters must be distinct (got: %q)", c.DelimiterStart)
	}
	return nil
}
