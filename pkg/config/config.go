// Package config holds the settings of a workflow run. Values come from the
// defaults below, then an optional YAML file, then command line flags.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Grafana  GrafanaConfig `yaml:"grafana"`
	Presets  PresetsConfig `yaml:"presets"`
	LogLevel string        `yaml:"logLevel"`
	DryRun   bool          `yaml:"dryRun"`
}

type GrafanaConfig struct {
	URL      string        `yaml:"url"`
	APIKey   string        `yaml:"apiKey"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

type PresetsConfig struct {
	Datasource string `yaml:"datasource"`
	Dashboard  string `yaml:"dashboard"`
}

func Default() Config {
	return Config{
		Grafana: GrafanaConfig{
			URL:      "http://localhost:3000",
			Username: "admin",
			Password: "admin",
			Timeout:  10 * time.Second,
		},
		Presets: PresetsConfig{
			Datasource: "testdata",
			Dashboard:  "simple",
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config file %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Grafana.URL == "" {
		result = multierror.Append(result, fmt.Errorf("grafana url is required"))
	} else if u, err := url.Parse(c.Grafana.URL); err != nil || u.Scheme == "" || u.Host == "" {
		result = multierror.Append(result, fmt.Errorf("'%s' is not a valid grafana url", c.Grafana.URL))
	}

	if c.Grafana.APIKey == "" && c.Grafana.Username == "" {
		result = multierror.Append(result, fmt.Errorf("either an API key or a username is required"))
	}

	if c.Grafana.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("timeout must not be negative, got %v", c.Grafana.Timeout))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

// GrafanaURL parses the configured url. Call Validate first.
func (c Config) GrafanaURL() (*url.URL, error) {
	return url.Parse(c.Grafana.URL)
}
