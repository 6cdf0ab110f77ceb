package config

import (
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
)

// Config is the runtime configuration. It is read from the environment only;
// the editor has no settings file.
type Config struct {
	LogLevel      zerolog.Level
	JSONLogs      bool
	NativeDialogs bool
	WindowWidth   float32
	WindowHeight  float32
}

// Default returns the configuration used when the environment sets nothing.
func Default() Config {
	return Config{
		LogLevel:     zerolog.InfoLevel,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Load builds a Config from getenv, normally os.Getenv.
func Load(getenv func(string) string) Config {
	cfg := Default()
	cfg.LogLevel = determineLogLevel(getenv)
	cfg.JSONLogs = isTrue(getenv("CAFFEINE_JSON_LOGS"))
	cfg.NativeDialogs = isTrue(getenv("CAFFEINE_NATIVE_DIALOGS"))
	return cfg
}

func determineLogLevel(getenv func(string) string) zerolog.Level {
	switch strings.ToLower(getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		if getenv("DEBUG") == "1" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
