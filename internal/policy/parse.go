package policy

import (
	"fmt"
	"os"

	"github.com/blocklaunch/blocklaunch/internal/models"
	"gopkg.in/yaml.v3"
)

// ParseFile loads a policy config from a YAML file.
func ParseFile(path string) (*models.PolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var config models.PolicyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	if len(config.Rules) == 0 {
		return nil, fmt.Errorf("policy %s declares no rules", path)
	}
	return &config, nil
}

// Resolve maps a --policy flag value to a config: a preset name first,
// then a path to a YAML file.
func Resolve(nameOrPath string) (*models.PolicyConfig, error) {
	if preset := GetPreset(nameOrPath); preset != nil {
		return preset, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return ParseFile(nameOrPath)
	}
	return nil, fmt.Errorf("unknown policy %q (presets: %v)", nameOrPath, ListPresetNames())
}
