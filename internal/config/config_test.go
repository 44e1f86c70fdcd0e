package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"debugfixture/internal/errors"
)

// clearEnv blanks the variables LoadConfig reads so the host environment
// cannot leak into a test. Viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"HTTP_PORT",
		"DEBUGFIXTURE_PORT",
		"DEBUGFIXTURE_HOST",
		"DEBUGFIXTURE_STATICDIR",
		"DEBUGFIXTURE_LOGGING_LEVEL",
		"DEBUGFIXTURE_LOGGING_FORMAT",
	} {
		t.Setenv(name, "")
	}
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("host", "", "")
	fs.Int("port", DefaultPort, "")
	fs.String("dir", "", "")
	fs.String("catalog", "", "")
	fs.Bool("compress", false, "")
	fs.Bool("no-banner", false, "")
	fs.String("log-level", "info", "")
	fs.String("log-format", "human", "")
	fs.String("log-file", "", "")
	fs.Int("shutdown-ms", 5000, "")
	return fs
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Host != "" {
		t.Errorf("Host = %q, want all interfaces", cfg.Host)
	}
	if cfg.Compress {
		t.Error("Compression should be off by default")
	}
	if !cfg.Banner {
		t.Error("Banner should be on by default")
	}
	if cfg.ShutdownTimeout() != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout())
	}
	if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
		t.Errorf("Logging = %+v, want human/info", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should validate: %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Addr() != ":9000" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":9000")
	}
}

func TestLoadConfigEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want int
	}{
		{"HTTP_PORT", map[string]string{"HTTP_PORT": "9100"}, 9100},
		{"prefixed", map[string]string{"DEBUGFIXTURE_PORT": "9200"}, 9200},
		{"prefixed wins", map[string]string{"HTTP_PORT": "9100", "DEBUGFIXTURE_PORT": "9200"}, 9200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig("", nil)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Port != tt.want {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.want)
			}
		})
	}
}

func TestLoadConfigNestedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUGFIXTURE_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig("", nil)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	files := map[string]string{
		"fixture.yaml": "port: 9300\ncompress: true\nlogging:\n  format: json\n",
		"fixture.toml": "port = 9300\ncompress = true\n[logging]\nformat = \"json\"\n",
		"fixture.json": `{"port": 9300, "compress": true, "logging": {"format": "json"}}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}

			cfg, err := LoadConfig(path, nil)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Port != 9300 {
				t.Errorf("Port = %d, want 9300", cfg.Port)
			}
			if !cfg.Compress {
				t.Error("Compress should be true")
			}
			if cfg.Logging.Format != "json" {
				t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
			}
			// Untouched keys keep their defaults
			if cfg.Logging.Level != "info" {
				t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if errors.CodeOf(err) != errors.ConfigInvalid {
		t.Errorf("CodeOf() = %s, want %s", errors.CodeOf(err), errors.ConfigInvalid)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9100")

	fs := testFlags()
	if err := fs.Parse([]string{"--port", "9400", "--dir", "/srv/fixture", "--no-banner"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := LoadConfig("", fs)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9400 {
		t.Errorf("Port = %d, want flag value 9400", cfg.Port)
	}
	if cfg.StaticDir != "/srv/fixture" {
		t.Errorf("StaticDir = %q, want /srv/fixture", cfg.StaticDir)
	}
	if cfg.Banner {
		t.Error("--no-banner should disable the banner")
	}
}

func TestLoadConfigUnsetFlagsKeepEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9100")

	fs := testFlags()
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := LoadConfig("", fs)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9100 {
		t.Errorf("Port = %d, want env value 9100", cfg.Port)
	}
	if !cfg.Banner {
		t.Error("Banner should stay on")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"valid", func(c *Config) {}, ""},
		{"ephemeral port", func(c *Config) { c.Port = 0 }, ""},
		{"negative port", func(c *Config) { c.Port = -1 }, "port"},
		{"port too large", func(c *Config) { c.Port = 70000 }, "port"},
		{"negative shutdown", func(c *Config) { c.ShutdownTimeoutMs = -5 }, "shutdownTimeoutMs"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"uppercase level", func(c *Config) { c.Logging.Level = "WARN" }, ""},
		{"negative backups", func(c *Config) { c.Logging.MaxBackups = -1 }, "logging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !stderrors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if errors.CodeOf(err) != errors.ConfigInvalid {
				t.Errorf("CodeOf() = %s, want %s", errors.CodeOf(err), errors.ConfigInvalid)
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "port", Message: "70000 is out of range"}
	want := "config error in field 'port': 70000 is out of range"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 9001
	if cfg.Addr() != "127.0.0.1:9001" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9001", cfg.Addr())
	}
}
