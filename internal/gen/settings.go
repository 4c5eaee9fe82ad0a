package gen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings drives the generator. Loaded from codegen/generator.yaml.
type Settings struct {
	Output struct {
		// Dir is the output directory relative to the project root.
		Dir string `yaml:"dir"`
		// Package is the package name for generated files.
		Package string `yaml:"package"`
	} `yaml:"output"`

	// Skip lists endpoint names to exclude from generation.
	Skip []string `yaml:"skip"`
}

// LoadSettings reads and validates generator settings.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Output.Dir == "" {
		return Settings{}, fmt.Errorf("%s: output.dir is required", path)
	}
	if s.Output.Package == "" {
		return Settings{}, fmt.Errorf("%s: output.package is required", path)
	}
	return s, nil
}

func (s Settings) skipped(name string) bool {
	for _, n := range s.Skip {
		if n == name {
			return true
		}
	}
	return false
}
