// Package cli implements the aether command-line interface: it runs
// convention-named calls against a property bag and prints the results.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/aether/internal/logging"
	"github.com/mesh-intelligence/aether/internal/paths"
	"github.com/mesh-intelligence/aether/internal/script"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	output    string
	keepGoing bool
	verbosity int
}

// app carries state shared by the subcommands of one root command.
type app struct {
	flags     rootFlags
	v         *viper.Viper
	configDir string
}

// sysError marks failures outside the caller's control (I/O, config).
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// NewRootCmd creates the top-level "aether" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "aether",
		Short: "Run property bag calls from the command line",
		Long: `aether keeps an in-memory property bag and answers convention-named calls:
getFoo, setFoo, hasFoo, unsetFoo/unsFoo, mergeFoo and isFoo. Keys are
derived from the name suffix (FooBar becomes foo_bar).`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/aether)")
	pf.StringVarP(&a.flags.output, "output", "o", defaultOutput, "output format: text, json or yaml")
	pf.BoolVar(&a.flags.keepGoing, "keep-going", false, "continue after a rejected call")
	pf.CountVarP(&a.flags.verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	_ = a.v.BindPFlag(cfgKeyOutput, pf.Lookup("output"))
	_ = a.v.BindPFlag(cfgKeyKeepGoing, pf.Lookup("keep-going"))
	_ = a.v.BindPFlag(cfgKeyVerbosity, pf.Lookup("verbose"))

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCallCmd(a))
	root.AddCommand(newRunCmd(a))

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps a command error to an exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var serr *sysError
	if errors.As(err, &serr) {
		return exitSysError
	}
	return exitUserError
}

// setup resolves the config directory, loads configuration and
// configures logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Skip config for version command
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &sysError{fmt.Errorf("resolve config dir: %w", err)}
	}
	a.configDir = configDir

	if err := loadConfig(a.v, configDir); err != nil {
		return &sysError{fmt.Errorf("load config: %w", err)}
	}

	logging.SetupLogger(a.v.GetInt(cfgKeyVerbosity), cmd.ErrOrStderr())
	return nil
}

// runInvocations executes invs against a fresh session and writes the
// results in the configured format. Results are written even when a call
// is rejected; the rejection is then returned.
func (a *app) runInvocations(cmd *cobra.Command, invs []script.Invocation) error {
	format, err := script.ParseFormat(a.v.GetString(cfgKeyOutput))
	if err != nil {
		return err
	}

	sess, err := script.NewSession()
	if err != nil {
		return &sysError{err}
	}

	results, runErr := sess.Run(invs, a.v.GetBool(cfgKeyKeepGoing))
	if err := script.Write(cmd.OutOrStdout(), results, format); err != nil {
		return &sysError{fmt.Errorf("write results: %w", err)}
	}
	return runErr
}
