package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultServerAddr is the default HTTP listen address.
	DefaultServerAddr = ":8080"

	// DefaultPlaceholderImage is served for projects without their own image.
	DefaultPlaceholderImage = "/static/placeholder.svg"
)

// Config holds all application configuration
type Config struct {
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	SiteFile   string `env:"SITE_FILE"`
	BaseURL    string `env:"SITE_BASE_URL"`
	Site       Site
}

// Site holds page metadata, optionally read from a YAML file
type Site struct {
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	BaseURL          string `yaml:"base_url"`
	PlaceholderImage string `yaml:"placeholder_image"`
	ShowReferral     bool   `yaml:"show_referral"`
}

// DefaultSite returns the metadata used when no site file is given
func DefaultSite() Site {
	return Site{
		Title:            "Projects",
		Description:      "Things I've built and maintain.",
		PlaceholderImage: DefaultPlaceholderImage,
		ShowReferral:     true,
	}
}

// Load reads configuration from the environment and the optional site file
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	site, err := LoadSite(cfg.SiteFile)
	if err != nil {
		return nil, err
	}
	cfg.Site = site

	// Env wins over the site file
	if cfg.BaseURL != "" {
		cfg.Site.BaseURL = cfg.BaseURL
	}

	return cfg, nil
}

// LoadSite reads a YAML site file on top of DefaultSite. An empty path
// returns the defaults.
func LoadSite(path string) (Site, error) {
	site := DefaultSite()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("failed to read site file: %w", err)
	}

	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("failed to parse site file: %w", err)
	}

	if site.PlaceholderImage == "" {
		site.PlaceholderImage = DefaultPlaceholderImage
	}

	return site, nil
}
