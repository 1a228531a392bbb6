package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print the naming platform in effect (WINDOWS or UNIX)",
	Long: `Print the platform whose duplicate naming convention is in effect. This is
the host platform unless the "platform" config key overrides it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), currentPlatform.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
