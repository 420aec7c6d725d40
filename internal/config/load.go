package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the document name Load falls back to when no path
// is given on the command line.
const DefaultConfigFilename = "cosmoboot.yaml"

// Load reads, parses and validates a deployment document from a file.
// YAML and JSON documents are both accepted.
func Load(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses and validates a deployment document held in memory.
func LoadBytes(data []byte) (*Config, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Validate(doc)
}

// Parse unmarshals a document into a raw mapping without validating it.
// JSON input parses too, being a subset of YAML.
func Parse(data []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, malformedDocument(fmt.Sprintf("cannot parse document: %v", err))
	}
	if doc == nil {
		return nil, malformedDocument("document is empty")
	}
	return doc, nil
}

// Save writes a configuration back out as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
