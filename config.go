package arbor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFormat selects the encoding of a RunConfig file.
type ConfigFormat int

const (
	FormatTOML ConfigFormat = iota
	FormatYAML
)

func (f ConfigFormat) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("ConfigFormat(%d)", int(f))
}

// formatFromPath picks the format from the file extension.
func formatFromPath(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// LoadRunConfig reads a RunConfig from a .toml, .yaml or .yml file. Fields
// missing from the file take DefaultRunConfig values.
func LoadRunConfig(path string) (RunConfig, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseRunConfig(data, format)
	if err != nil {
		return RunConfig{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRunConfig decodes data in the given format. Unknown keys are errors.
func ParseRunConfig(data []byte, format ConfigFormat) (RunConfig, error) {
	cfg := DefaultRunConfig()
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return RunConfig{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; keep the defaults.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return RunConfig{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return RunConfig{}, fmt.Errorf("unknown config format %v", format)
	}
	return cfg, nil
}

// LoadTestScriptFile reads and parses a JSON test script from disk.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load test script: %w", err)
	}
	return LoadTestScript(data)
}
