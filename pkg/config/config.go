package config

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/cbodonnell/redracer/pkg/log"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Debug    bool         `yaml:"debug"`
	Window   WindowConfig `yaml:"window"`
	Export   ExportConfig `yaml:"export"`
}

type WindowConfig struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
	// TPS is the number of engine ticks per second
	TPS int `yaml:"tps"`
}

type ExportConfig struct {
	// Title is the <title> of the exported page
	Title string `yaml:"title"`
	// FileName is offered to the browser when downloading the export
	FileName string `yaml:"file_name"`
	// Port the export server listens on
	Port int `yaml:"port"`
	// DownloadURL is opened by the client's download buttons. Empty hides them.
	DownloadURL string `yaml:"download_url"`
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal default config: %v", err)
	}
	return cfg, nil
}

// Load returns the embedded configuration overlaid with the YAML file at
// path. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if !strings.HasSuffix(strings.ToLower(c.Export.FileName), ".html") {
		return fmt.Errorf("export file name must end in .html, got %q", c.Export.FileName)
	}
	if c.Export.Port <= 0 || c.Export.Port > 65535 {
		return fmt.Errorf("export port out of range: %d", c.Export.Port)
	}
	if c.Export.DownloadURL != "" {
		u, err := url.Parse(c.Export.DownloadURL)
		if err != nil {
			return fmt.Errorf("failed to parse export download url: %v", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("export download url must be http or https, got %q", c.Export.DownloadURL)
		}
	}
	return nil
}
