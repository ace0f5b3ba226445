package config

import "time"

// LogFormat selects the zap encoder used by the server.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Config is the top-level OceanIQ configuration, corresponding to .oceaniq.yml.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	Chat   ChatConfig   `yaml:"chat" koanf:"chat"`
	Site   SiteConfig   `yaml:"site" koanf:"site"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// ChatConfig controls the simulated assistant and session housekeeping.
type ChatConfig struct {
	MinDelay      time.Duration `yaml:"min_delay" koanf:"min_delay"`
	Jitter        time.Duration `yaml:"jitter" koanf:"jitter"`
	SessionTTL    time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	SweepSchedule string        `yaml:"sweep_schedule" koanf:"sweep_schedule"`
}

// SiteConfig holds branding shown in the application shell.
type SiteConfig struct {
	Brand    string `yaml:"brand" koanf:"brand"`
	Tagline  string `yaml:"tagline" koanf:"tagline"`
	Coverage int    `yaml:"coverage" koanf:"coverage"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
