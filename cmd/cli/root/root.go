package root

import (
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "codepad",
	Short:         "codepad CLI",
	Long:          "Command line interface for the codepad HTML/CSS/JS playground API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetRoot returns the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
