package config

import "time"

// Config represents the full TerminalTodo configuration
type Config struct {
	// Start with the bundled example tasks
	Seed bool `yaml:"seed" mapstructure:"seed"`

	// Stopwatch configuration
	Stopwatch StopwatchConfig `yaml:"stopwatch" mapstructure:"stopwatch"`

	// Terminal UI configuration
	UI UIConfig `yaml:"ui" mapstructure:"ui"`

	// Logging configuration
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StopwatchConfig configures stopwatch feedback
type StopwatchConfig struct {
	StartPause time.Duration `yaml:"start_pause" mapstructure:"start_pause"`
}

// UIConfig configures rendering and prompts
type UIConfig struct {
	Accent string `yaml:"accent" mapstructure:"accent"`
	Danger string `yaml:"danger" mapstructure:"danger"`
	Clear  bool   `yaml:"clear" mapstructure:"clear"`
}

// LogConfig configures the debug log
type LogConfig struct {
	// File receives log output; empty discards it
	File string `yaml:"file" mapstructure:"file"`
}
