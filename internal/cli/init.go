package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/aether/internal/paths"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Output    string `yaml:"output"`
	KeepGoing bool   `yaml:"keep_going"`
	Verbosity int    `yaml:"verbosity"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and a default config.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return &sysError{fmt.Errorf("create config directory: %w", err)}
	}

	path := paths.ConfigFile(a.configDir)
	created, err := writeConfigIfMissing(path)
	if err != nil {
		return &sysError{fmt.Errorf("write config: %w", err)}
	}

	if created {
		fmt.Fprintln(cmd.OutOrStdout(), "Created", path)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Config already exists at", path)
	}
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{Output: defaultOutput})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	header := []byte("# aether CLI configuration\n")
	return true, os.WriteFile(path, append(header, data...), 0o644)
}
