package commands

import (
	"github.com/DOIDFoundation/corerpc/registry"
	"github.com/spf13/cobra"
)

// MethodsCmd lists the supported methods.
var MethodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List supported methods and the releases that changed their reply",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(cmd.OutOrStdout(), registry.Methods())
	},
}
