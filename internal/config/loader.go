// Package config loads launcher configuration from file, environment,
// and flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "BLOCKLAUNCH_"

// configNames are searched in order in the working directory when no
// explicit config file is given.
var configNames = []string{"blocklaunch.yaml", "blocklaunch.yml"}

// findConfigFile finds the config file to use.
// Priority: explicit path > blocklaunch.yaml > blocklaunch.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// defaultRoot is the conventional game directory for the host user.
func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".minecraft"
	}
	return filepath.Join(home, ".minecraft")
}

// Load resolves configuration with the usual precedence:
// flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"root":        defaultRoot(),
		"player_name": DefaultPlayerName,
		"log_format":  DefaultLogFormat,
		"log_level":   DefaultLogLevel,
		"log_output":  DefaultLogOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment (BLOCKLAUNCH_MEMORY_MB -> memory_mb)
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only when explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI spells these without the log_ prefix's underscore
			// quirks; bridge --memory to memory_mb and --player to
			// player_name.
			switch key {
			case "memory":
				return "memory_mb", posflag.FlagVal(flags, f)
			case "player":
				return "player_name", posflag.FlagVal(flags, f)
			case "java":
				return "java_bin", posflag.FlagVal(flags, f)
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		if abs, err := filepath.Abs(cfg.Root); err == nil {
			cfg.Root = abs
		}
	}

	return &cfg, nil
}
