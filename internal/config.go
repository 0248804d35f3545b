package internal

import (
	"strings"

	"github.com/spf13/viper"
)

// Config represents the ledgercore configuration.
type Config struct {
	// Logging configuration
	Logging struct {
		Level  string `mapstructure:"level"`  // debug, info, warn, error
		Pretty bool   `mapstructure:"pretty"` // console writer instead of JSON
	} `mapstructure:"logging"`

	// Debug mode forces debug-level logging regardless of Logging.Level
	Debug bool `mapstructure:"debug"`
}

// LoadConfig loads the configuration from file and environment.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaultConfig(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/ledgercore/")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Override with environment variables prefixed with LEDGERCORE_
	v.SetEnvPrefix("LEDGERCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaultConfig(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)
	v.SetDefault("debug", false)
}
