package config

// Config is the resolved launcher configuration.
type Config struct {
	// Root is the game directory holding versions/ and libraries/.
	Root string `koanf:"root"`
	// PlayerName is the offline-mode player name.
	PlayerName string `koanf:"player_name"`
	// JavaBin is the JVM executable; empty means "java" from PATH.
	JavaBin string `koanf:"java_bin"`
	// MemoryMB is the heap size; zero leaves sizing to the JVM.
	MemoryMB int `koanf:"memory_mb"`
	// SystemMemory defers heap sizing to the JVM even when MemoryMB is set.
	SystemMemory bool `koanf:"system_memory"`

	LogFormat string `koanf:"log_format"`
	LogLevel  string `koanf:"log_level"`
	LogOutput string `koanf:"log_output"`
}

// Defaults returned by Load before any file, env, or flag overrides.
const (
	DefaultPlayerName = "Player"
	DefaultLogFormat  = "pretty"
	DefaultLogLevel   = "info"
	DefaultLogOutput  = "stderr"
)
