package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Input formats accepted by Config.Format.
const (
	FormatAuto     = "auto"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config holds the mdtext settings.
type Config struct {
	// Format is the input format: auto, markdown or html. Auto picks html
	// for .html and .htm files and markdown otherwise.
	Format string `mapstructure:"format"`
	// NormalizeNFC applies Unicode NFC normalization to extracted text.
	NormalizeNFC bool `mapstructure:"normalize_nfc"`
	// JSON writes one JSON record per document instead of plain text.
	JSON bool `mapstructure:"json"`
	// Debug enables debug logging, including every extraction diagnostic.
	Debug bool `mapstructure:"debug"`
	// Strict turns diagnostics into a failing exit status.
	Strict bool `mapstructure:"strict"`
	// Workers bounds how many documents are processed concurrently.
	Workers int `mapstructure:"workers"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"format":  "format",
	"nfc":     "normalize_nfc",
	"json":    "json",
	"debug":   "debug",
	"strict":  "strict",
	"workers": "workers",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatAuto)
	v.SetDefault("normalize_nfc", false)
	v.SetDefault("json", false)
	v.SetDefault("debug", false)
	v.SetDefault("strict", false)
	v.SetDefault("workers", runtime.NumCPU())
}

// LoadConfig reads the configuration from configPath, or from .mdtext.yaml
// in the home or working directory when configPath is empty. MDTEXT_*
// environment variables override the file and flags that were set on the
// command line override both. flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(".mdtext")
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("MDTEXT")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatAuto, FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("invalid format %q: want %s, %s or %s", c.Format, FormatAuto, FormatMarkdown, FormatHTML)
	}

	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d: must be at least 1", c.Workers)
	}

	return nil
}
