package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aether/pkg/aether"
)

const modulePath = "github.com/mesh-intelligence/aether"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the aether version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "aether v%s\nmodule: %s\n", aether.Version, modulePath)
			return nil
		},
	}
}
