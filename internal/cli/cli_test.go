package cli

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/khangtapcode/TerminalTodo/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flags keep their parsed values between runs of the global command
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	rootCmd.Version = "1.2.3"
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "terminaltodo 1.2.3\n" {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	out, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var cfg struct {
		Seed      bool `yaml:"seed"`
		Stopwatch struct {
			StartPause string `yaml:"start_pause"`
		} `yaml:"stopwatch"`
		UI struct {
			Clear bool `yaml:"clear"`
		} `yaml:"ui"`
	}
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Output is not YAML: %v\n%s", err, out)
	}
	if !cfg.Seed {
		t.Error("Expected seed: true")
	}
	if cfg.Stopwatch.StartPause != "1s" {
		t.Errorf("Expected start_pause 1s, got '%s'", cfg.Stopwatch.StartPause)
	}
	if !cfg.UI.Clear {
		t.Error("Expected clear: true")
	}
}

func TestConfigShowFlagsAndEnv(t *testing.T) {
	t.Setenv("TERMINALTODO_UI_ACCENT", "#123456")

	out, err := execute(t, "--seed=false", "--start-pause=0s", "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	for _, want := range []string{"seed: false", "start_pause: 0s", "#123456"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigShowRejectsNegativePause(t *testing.T) {
	if _, err := execute(t, "--start-pause=-2s", "config", "show"); err == nil {
		t.Error("Expected error for negative start pause")
	}
}

func TestConfigEnv(t *testing.T) {
	out, err := execute(t, "config", "env")
	if err != nil {
		t.Fatalf("config env failed: %v", err)
	}
	for _, key := range config.Keys() {
		if !strings.Contains(out, config.EnvVar(key)) {
			t.Errorf("Expected %s in output", config.EnvVar(key))
		}
	}
}

func TestInitialState(t *testing.T) {
	cfg := config.DefaultConfig()

	state, err := initialState(cfg)
	if err != nil {
		t.Fatalf("initialState failed: %v", err)
	}
	if state.Tasks.Len() != 2 {
		t.Errorf("Expected 2 seed tasks, got %d", state.Tasks.Len())
	}
	if state.Stopwatch.IsRunning() {
		t.Error("Expected idle stopwatch")
	}

	cfg.Seed = false
	state, err = initialState(cfg)
	if err != nil {
		t.Fatalf("initialState failed: %v", err)
	}
	if !state.Tasks.IsEmpty() {
		t.Errorf("Expected no tasks without seed, got %d", state.Tasks.Len())
	}
}

func TestSetupLogging(t *testing.T) {
	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	})

	closeLog, err := setupLogging(config.LogConfig{})
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	closeLog()
	if log.Writer() != io.Discard {
		t.Error("Expected log discarded without a file")
	}

	path := filepath.Join(t.TempDir(), "terminaltodo.log")
	closeLog, err = setupLogging(config.LogConfig{File: path})
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	log.Print("session started: tasks=2")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "terminaltodo ") {
		t.Errorf("Expected terminaltodo prefix, got %q", got)
	}
	if !strings.Contains(got, "session started: tasks=2") {
		t.Errorf("Expected logged line, got %q", got)
	}
}

func TestSetupLoggingBadPath(t *testing.T) {
	prevOut, prevPrefix := log.Writer(), log.Prefix()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
	})

	path := filepath.Join(t.TempDir(), "missing", "terminaltodo.log")
	if _, err := setupLogging(config.LogConfig{File: path}); err == nil {
		t.Error("Expected error for unwritable log path")
	}
}
