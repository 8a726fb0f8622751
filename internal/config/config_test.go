package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPlayerName, cfg.PlayerName)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogOutput, cfg.LogOutput)
	assert.Equal(t, 0, cfg.MemoryMB)
	assert.False(t, cfg.SystemMemory)
	assert.True(t, filepath.IsAbs(cfg.Root), "root should resolve to an absolute path")
	assert.Equal(t, ".minecraft", filepath.Base(cfg.Root))
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklaunch.yaml")
	content := `
player_name: Steve
memory_mb: 4096
java_bin: /opt/jdk/bin/java
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "Steve", cfg.PlayerName)
	assert.Equal(t, 4096, cfg.MemoryMB)
	assert.Equal(t, "/opt/jdk/bin/java", cfg.JavaBin)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklaunch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory_mb: 1024\nplayer_name: Steve\n"), 0644))

	t.Setenv("BLOCKLAUNCH_MEMORY_MB", "2048")
	t.Setenv("BLOCKLAUNCH_LOG_FORMAT", "json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.MemoryMB)
	assert.Equal(t, "json", cfg.LogFormat)
	// File values without env overrides survive.
	assert.Equal(t, "Steve", cfg.PlayerName)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Setenv("BLOCKLAUNCH_MEMORY_MB", "2048")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("memory", 0, "")
	flags.String("player", "", "")
	flags.String("java", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{
		"--memory=8192",
		"--player=Alex",
		"--log-level=warn",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	// Changed flags win, bridged onto their config keys.
	assert.Equal(t, 8192, cfg.MemoryMB)
	assert.Equal(t, "Alex", cfg.PlayerName)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unchanged flags do not clobber lower layers.
	assert.Equal(t, "", cfg.JavaBin)
}

func TestLoadRelativeRootResolved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocklaunch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: game\n"), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(cfg.Root))
	assert.Equal(t, "game", filepath.Base(cfg.Root))
}
