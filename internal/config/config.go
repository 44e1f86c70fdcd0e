package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"debugfixture/internal/errors"
)

// DefaultPort is the port the fixture listens on when nothing overrides it
const DefaultPort = 9000

// EnvPrefix is prepended to every environment override (DEBUGFIXTURE_PORT,
// DEBUGFIXTURE_LOGGING_LEVEL, ...)
const EnvPrefix = "DEBUGFIXTURE"

// Config represents the complete fixture configuration
type Config struct {
	Host              string        `json:"host" mapstructure:"host"`
	Port              int           `json:"port" mapstructure:"port"`
	StaticDir         string        `json:"staticDir" mapstructure:"staticDir"`
	CatalogFile       string        `json:"catalogFile" mapstructure:"catalogFile"`
	ShutdownTimeoutMs int           `json:"shutdownTimeoutMs" mapstructure:"shutdownTimeoutMs"`
	Compress          bool          `json:"compress" mapstructure:"compress"`
	Banner            bool          `json:"banner" mapstructure:"banner"`
	Logging           LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format     string `json:"format" mapstructure:"format"`
	Level      string `json:"level" mapstructure:"level"`
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMb  int    `json:"maxSizeMb" mapstructure:"maxSizeMb"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Host:              "",
		Port:              DefaultPort,
		StaticDir:         "",
		CatalogFile:       "",
		ShutdownTimeoutMs: 5000,
		Compress:          false,
		Banner:            true,
		Logging: LoggingConfig{
			Format:     "human",
			Level:      "info",
			MaxSizeMb:  10,
			MaxBackups: 3,
		},
	}
}

// flagKeys maps CLI flag names to config keys
var flagKeys = map[string]string{
	"host":        "host",
	"port":        "port",
	"dir":         "staticDir",
	"catalog":     "catalogFile",
	"compress":    "compress",
	"log-level":   "logging.level",
	"log-format":  "logging.format",
	"log-file":    "logging.file",
	"shutdown-ms": "shutdownTimeoutMs",
}

// LoadConfig merges defaults, the optional config file at path, environment
// variables and the given flags, in increasing order of precedence.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// HTTP_PORT is what the classic fixture servers read
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "HTTP_PORT"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New(errors.ConfigInvalid, "cannot read config file "+path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New(errors.ConfigInvalid, "cannot decode configuration", err)
	}

	// --no-banner is inverted so it cannot be bound directly
	if flags != nil {
		if f := flags.Lookup("no-banner"); f != nil && f.Changed {
			cfg.Banner = f.Value.String() != "true"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("host", d.Host)
	v.SetDefault("port", d.Port)
	v.SetDefault("staticDir", d.StaticDir)
	v.SetDefault("catalogFile", d.CatalogFile)
	v.SetDefault("shutdownTimeoutMs", d.ShutdownTimeoutMs)
	v.SetDefault("compress", d.Compress)
	v.SetDefault("banner", d.Banner)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.maxSizeMb", d.Logging.MaxSizeMb)
	v.SetDefault("logging.maxBackups", d.Logging.MaxBackups)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return &ConfigError{Field: "port", Message: fmt.Sprintf("%d is out of range", c.Port)}
	}
	if c.ShutdownTimeoutMs < 0 {
		return &ConfigError{Field: "shutdownTimeoutMs", Message: "must not be negative"}
	}
	switch c.Logging.Format {
	case "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", c.Logging.Format)}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	if c.Logging.MaxSizeMb < 0 || c.Logging.MaxBackups < 0 {
		return &ConfigError{Field: "logging", Message: "rotation limits must not be negative"}
	}
	return nil
}

// Addr returns the host:port listen address
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ShutdownTimeout returns the graceful shutdown budget
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

// Unwrap exposes a CONFIG_INVALID coded error so callers can classify it
func (e *ConfigError) Unwrap() error {
	return errors.New(errors.ConfigInvalid, e.Message, nil)
}
