package mock

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule maps a prompt fragment to a canned backend behavior
type Rule struct {
	// Match is a case-insensitive substring tested against the prompt
	Match string `yaml:"match"`
	// Query is the extracted-query text to respond with
	Query string `yaml:"query,omitempty"`
	// Error, when set, makes the rule respond with a failure payload
	Error string `yaml:"error,omitempty"`
	// Status overrides the response status (defaults: 200, or 404 for errors)
	Status int `yaml:"status,omitempty"`
}

// Config describes the mock backend
type Config struct {
	Host   string `yaml:"host,omitempty"`
	Port   int    `yaml:"port,omitempty"`
	APIKey string `yaml:"apiKey,omitempty"`
	Rules  []Rule `yaml:"rules,omitempty"`
}

// LoadConfig reads a YAML rule file. A missing path yields an empty config:
// the server then echoes every prompt back as its own extracted query.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse mock config: %w", err)
	}

	return &config, nil
}
