package internal

import (
	"log"

	"github.com/rs/zerolog"
)

// Init loads configuration and sets up the global logger.
func Init() (*Config, zerolog.Logger) {
	// Config file path is resolved later by viper/cobra; defaults apply here.
	cfg, err := LoadConfig("")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	level := ParseLogLevel(cfg.Logging.Level)
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	InitGlobalLogger(level, cfg.Logging.Pretty)

	return cfg, GetLogger()
}
