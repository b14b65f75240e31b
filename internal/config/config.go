// Package config provides the configuration schema and loader for the
// VoiceBill transcript parsing server.
package config

// LogLevel controls log verbosity for the VoiceBill server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure, typically loaded from a YAML
// file with [Load].
type Config struct {
	Server ServerConfig `yaml:"server"`
	Parser ParserConfig `yaml:"parser"`
}

// ServerConfig holds network and logging settings.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g. ":8090").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// ParserConfig holds the parsing-engine settings.
type ParserConfig struct {
	// LexiconPath is an optional YAML lexicon overlay for locale swaps.
	// Empty means the built-in Tamil/English grocery lexicon.
	LexiconPath string `yaml:"lexicon_path"`

	// FuzzyThreshold is the similarity floor for formalizer corrections,
	// in (0, 1]. Zero means the engine default (0.75).
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
}

// Defaults returns the configuration used when no config file is present.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8090",
			LogLevel:   LogInfo,
		},
	}
}
