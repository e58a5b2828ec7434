package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/crimson-sun/readlog/internal/decode"
	"github.com/crimson-sun/readlog/internal/output"
)

// ErrInvalid is returned by Load and Validate for unusable values.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. READLOG_PATH.
const EnvPrefix = "READLOG"

// Keys shared by env vars, config files and flags.
const (
	KeyPath              = "path"
	KeyOutput            = "output"
	KeyLogLevel          = "log_level"
	KeyEncoding          = "encoding"
	KeyFallbackEncoding  = "fallback_encoding"
	KeyTranslateNewlines = "translate_newlines"
)

// Config holds all readlog configuration.
type Config struct {
	Path   string
	Decode DecodeConfig
	Output OutputConfig
	Log    LogConfig
}

// DecodeConfig holds the encoding pair tried in order.
type DecodeConfig struct {
	Encoding          string
	FallbackEncoding  string
	TranslateNewlines bool
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string // "text" or "json"
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// New returns a viper instance with defaults set and READLOG_* env vars bound.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPath, "error.log")
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyEncoding, "utf-16")
	v.SetDefault(KeyFallbackEncoding, "utf-8")
	v.SetDefault(KeyTranslateNewlines, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// ReadFile loads an optional config file into v. With an explicit path the
// file must exist. Otherwise .readlog.{yaml,...} is searched in the working
// directory and $HOME, and its absence is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(".readlog")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Path: v.GetString(KeyPath),
		Decode: DecodeConfig{
			Encoding:          v.GetString(KeyEncoding),
			FallbackEncoding:  v.GetString(KeyFallbackEncoding),
			TranslateNewlines: v.GetBool(KeyTranslateNewlines),
		},
		Output: OutputConfig{
			Format: v.GetString(KeyOutput),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the path is set and that encodings and output
// format are known.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalid)
	}
	for _, name := range []string{c.Decode.Encoding, c.Decode.FallbackEncoding} {
		if _, err := decode.Get(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
