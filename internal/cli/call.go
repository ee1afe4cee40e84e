package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aether/internal/script"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <name[=value]>...",
		Short: "Run calls given as arguments against a fresh property bag",
		Long: `Call runs each argument as a convention-named call, in order, against
one property bag. A value after "=" is a YAML literal.

Example:
  aether call setFoo=2 hasFoo getFoo
  aether call mergeTags=a mergeTags=b getTags
  aether -o json call setOne=1 setTwo=2 get`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invs := make([]script.Invocation, 0, len(args))
			for _, arg := range args {
				inv, err := script.ParseArg(arg)
				if err != nil {
					return err
				}
				invs = append(invs, inv)
			}
			return a.runInvocations(cmd, invs)
		},
	}
}
