package config

import "time"

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "TERMINALTODO"

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Seed: true,
		Stopwatch: StopwatchConfig{
			StartPause: time.Second,
		},
		UI: UIConfig{
			Accent: "6", // cyan
			Danger: "1", // red
			Clear:  true,
		},
	}
}

// defaults flattens DefaultConfig into viper keys
func defaults() map[string]interface{} {
	cfg := DefaultConfig()
	return map[string]interface{}{
		"seed":                  cfg.Seed,
		"stopwatch.start_pause": cfg.Stopwatch.StartPause,
		"ui.accent":             cfg.UI.Accent,
		"ui.danger":             cfg.UI.Danger,
		"ui.clear":              cfg.UI.Clear,
		"log.file":              cfg.Log.File,
	}
}

// flagKeys maps command-line flag names to viper keys
var flagKeys = map[string]string{
	"seed":        "seed",
	"start-pause": "stopwatch.start_pause",
	"accent":      "ui.accent",
	"danger":      "ui.danger",
	"clear":       "ui.clear",
	"log-file":    "log.file",
}

// Keys returns every configuration key
func Keys() []string {
	keys := make([]string, 0, len(flagKeys))
	for key := range defaults() {
		keys = append(keys, key)
	}
	return keys
}
