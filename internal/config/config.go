package config

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/velmie/x/envseek"
)

// DefaultFile is read from the working directory when it exists.
const DefaultFile = "envseek.yaml"

// EnvPrefix prefixes every environment variable read by the command.
const EnvPrefix = "ENVSEEK"

// Config holds the settings of the envseek command.
type Config struct {
	Mode   envseek.Mode `k:"mode"`
	Prompt string       `k:"prompt"`
	Dotenv bool         `k:"dotenv"` // full dotenv syntax for the key-value file
	Env    Env          `k:"env"`
	Log    Log          `k:"log"`
}

// Env describes the key-value file.
type Env struct {
	File string `k:"file"`
}

// Log configures the command logger.
type Log struct {
	Level string `k:"level"`
}

// Defaults returns default values as dotted keys.
func Defaults() map[string]any {
	return map[string]any{
		"mode":      envseek.ModeAll.String(),
		"prompt":    envseek.DefaultPrompt,
		"dotenv":    false,
		"env.file":  envseek.DefaultEnvFile,
		"log.level": "error",
	}
}

// Load reads the command configuration from defaults, envseek.yaml in the working
// directory, the file named by -config or ENVSEEK_CONFIG, ENVSEEK_* variables
// and explicitly set flags.
func Load(fs *flag.FlagSet, configFile string) (*Config, error) {
	opts := []Option{
		WithEnvPrefix(EnvPrefix),
		WithDefaults(Defaults()),
		WithOptionalFiles(DefaultFile),
		WithConfigFileEnv(EnvPrefix + "_CONFIG"),
		WithFlagSet(fs),
	}
	if configFile != "" {
		opts = append(opts, WithFiles(configFile))
	}

	return LoadInto[Config](New(opts...))
}

// SlogLevel converts the configured level name into a slog.Level.
// Unknown names fall back to error.
func (l Log) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelError
	}
	return level
}
