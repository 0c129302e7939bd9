package app

import "github.com/uNik020/EWS-monitor-Backend/pkg/logger"

// ConfigureLogging initialises the global logger from configuration.
func ConfigureLogging(cfg *Config) error {
	level := "info"
	if cfg != nil && cfg.Server.LogLevel != "" {
		level = cfg.Server.LogLevel
	}
	return logger.Init(level)
}
