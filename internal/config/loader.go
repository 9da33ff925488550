package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all settings.
const envPrefix = "PERIODIC"

// newViper builds a pre-configured Viper instance with the standard settings:
// YAML file type, PERIODIC_ env prefix, automatic env binding, and a key
// replacer that maps "." → "_" so that nested keys like "display.width"
// resolve to "PERIODIC_DISPLAY_WIDTH".
//
// Every key is registered with a default so that AutomaticEnv can see it
// during Unmarshal even when no config file mentions the key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.width", DefaultWidth)
	v.SetDefault("display.height", DefaultHeight)
	v.SetDefault("display.title", DefaultTitle)
	v.SetDefault("display.cell_size", DefaultCellSize)
	v.SetDefault("display.padding", DefaultPadding)
	v.SetDefault("display.origin_x", DefaultOriginX)
	v.SetDefault("display.origin_y", 0)
	v.SetDefault("display.fps", DefaultFPS)
	v.SetDefault("display.symbol_font_size", DefaultSymbolFontSize)
	v.SetDefault("display.text_font_size", DefaultTextFontSize)
	v.SetDefault("display.popup_font_size", DefaultPopupFontSize)

	v.SetDefault("session.popup_duration", DefaultPopupDuration)
	v.SetDefault("session.max_merge", DefaultMaxMerge)

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.watch", false)
	v.SetDefault("catalog.duplicate_policy", DuplicatePolicyReject)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
	v.SetDefault("metrics.dump_path", "")
}

// Load reads the YAML file at configPath, merges any PERIODIC_* environment
// variable overrides, applies defaults for unset fields, and validates the
// result.  An empty configPath behaves like LoadFromEnv.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}

	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from PERIODIC_* environment variables and
// defaults, with no config file required.
//
// Environment variable naming convention:
//
//	PERIODIC_<SECTION>_<FIELD>   e.g.  PERIODIC_DISPLAY_WIDTH, PERIODIC_LOG_LEVEL
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// unmarshalAndFinalize unmarshals viper state into a Config struct, applies
// defaults, and validates the result.
func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
