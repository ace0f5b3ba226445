package config

import "time"

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = ".oceaniq.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
			RequestTimeout:  30 * time.Second,
		},
		Chat: ChatConfig{
			MinDelay:      time.Second,
			Jitter:        2 * time.Second,
			SessionTTL:    30 * time.Minute,
			SweepSchedule: "@every 1m",
		},
		Site: SiteConfig{
			Brand:    "OceanIQ",
			Tagline:  "AI-Powered Ocean Data",
			Coverage: 78,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
