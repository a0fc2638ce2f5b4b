package cli

import "github.com/spf13/cobra"

// NewRootCommand assembles the fixtures tool
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "fixtures",
		Short:        "Store tooling for the medicamentos API",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env-file", "", "env file applied before the process environment is read")

	root.AddCommand(
		NewPingCommand(),
		NewImportCommand(),
	)
	return root
}
