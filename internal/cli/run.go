package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aether/internal/script"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file]",
		Short: "Run a script of calls against a fresh property bag",
		Long: `Run reads one call per line from file, or from stdin when file is
omitted or "-". Each line is "<name> [value]" where value is a YAML
literal. Blank lines and lines starting with # are ignored.

Example:
  printf 'setFoo 17\nmergeFoo 18\ngetFoo\n' | aether run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return &sysError{fmt.Errorf("open script: %w", err)}
				}
				defer f.Close()
				in = f
			}

			invs, err := script.Parse(in)
			if err != nil {
				// Line errors are bad input; anything else failed reading.
				var lerr *script.LineError
				if errors.As(err, &lerr) {
					return err
				}
				return &sysError{err}
			}
			return a.runInvocations(cmd, invs)
		},
	}
}
