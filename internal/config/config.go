// SPDX-License-Identifier: MIT

// Package config loads playfair command settings with viper.
//
// Sources, highest precedence first: bound flags, PLAYFAIR_* environment
// variables, a YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/playfair/internal/logging"
)

// Setting keys.
const (
	KeyKeyword   = "keyword"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

const (
	// EnvPrefix prefixes environment variables, e.g. PLAYFAIR_KEYWORD.
	EnvPrefix = "PLAYFAIR"

	// FileName is the config file searched for when none is given explicitly.
	FileName = ".playfair"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = logging.FormatConsole
)

// ErrMissingKeyword indicates no keyword was supplied by any source.
var ErrMissingKeyword = errors.New("config: keyword is required")

// Config is the resolved command configuration.
type Config struct {
	Keyword string         `mapstructure:"keyword"`
	Log     logging.Config `mapstructure:"log"`
}

// Configure registers defaults and environment binding on v and reads the
// config file. An explicit file must exist; otherwise FileName.yaml is looked
// up in searchPaths and its absence is not an error.
func Configure(v *viper.Viper, file string, searchPaths ...string) error {
	v.SetDefault(KeyKeyword, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		for _, p := range searchPaths {
			if p != "" {
				v.AddConfigPath(p)
			}
		}
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", describe(file), err)
	}

	return nil
}

// Load resolves the settings held by v.
// Returns ErrMissingKeyword when the keyword is empty or blank.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if strings.TrimSpace(cfg.Keyword) == "" {
		return Config{}, ErrMissingKeyword
	}

	return cfg, nil
}

func describe(file string) string {
	if file == "" {
		return FileName + ".yaml"
	}

	return file
}
