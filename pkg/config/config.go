package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sriram-PR/md-outline/pkg/outline"
	"github.com/Sriram-PR/md-outline/pkg/utils"
)

// OutlineConfig holds the outline and guard settings for the md-outline
// commands.
type OutlineConfig struct {
	Levels     []int          `yaml:"levels,omitempty"`      // Heading levels to capture (default [2 3])
	AllowHTML  bool           `yaml:"allow_html,omitempty"`  // Keep inline HTML in titles
	EscapeText bool           `yaml:"escape_text,omitempty"` // HTML-escape text/inline-code title content
	Defines    map[string]any `yaml:"defines,omitempty"`     // Bundler define keys to guard (values unused)
}

// Options converts the config into outline resolution options.
func (c OutlineConfig) Options() outline.Options {
	return outline.Options{
		Levels:     c.Levels,
		AllowHTML:  c.AllowHTML,
		EscapeText: c.EscapeText,
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (*OutlineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read config '%s': %w", utils.ErrFilesystem, path, err)
	}

	var cfg OutlineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config '%s': %w", utils.ErrConfigValidation, path, err)
	}
	return &cfg, nil
}
