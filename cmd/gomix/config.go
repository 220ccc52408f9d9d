/*
File    : gomix/cmd/gomix/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// bannerConfig overrides the REPL's default display strings. It is
// loaded from the file named by -banner, if given; any field left
// empty in the YAML keeps the built-in default.
type bannerConfig struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Line    string `yaml:"line"`
	License string `yaml:"license"`
	Prompt  string `yaml:"prompt"`
}

func defaultBannerConfig() bannerConfig {
	return bannerConfig{
		Banner:  "GoMix-Lang — a small expression-oriented scripting language",
		Version: version,
		Author:  "akashmaji946",
		Line:    strings.Repeat("-", 60),
		License: "MIT",
		Prompt:  ">>",
	}
}

// loadBannerConfig reads path as YAML and overlays non-empty fields
// onto the built-in defaults.
func loadBannerConfig(path string) (bannerConfig, error) {
	cfg := defaultBannerConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var overrides bannerConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return cfg, err
	}

	if overrides.Banner != "" {
		cfg.Banner = overrides.Banner
	}
	if overrides.Version != "" {
		cfg.Version = overrides.Version
	}
	if overrides.Author != "" {
		cfg.Author = overrides.Author
	}
	if overrides.Line != "" {
		cfg.Line = overrides.Line
	}
	if overrides.License != "" {
		cfg.License = overrides.License
	}
	if overrides.Prompt != "" {
		cfg.Prompt = overrides.Prompt
	}

	return cfg, nil
}
