package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/khangtapcode/TerminalTodo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect TerminalTodo configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfigShow,
}

var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List environment variables that override settings",
	Run:   runConfigEnv,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEnvCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "# Effective configuration (defaults + environment + flags)")
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigEnv(cmd *cobra.Command, args []string) {
	keys := config.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", config.EnvVar(key), key)
	}
}
