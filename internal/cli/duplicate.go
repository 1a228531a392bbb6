package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinexus/shellutils/internal/naming"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate <file>",
	Short: "Copy a file to the next free duplicate name",
	Long: `Copy a file next to itself under the first name that does not exist yet.

On Windows the names are report-copy.pdf, report-copy2.pdf, ...
Elsewhere they are report2.pdf, report3.pdf, ...

The new path is printed on stdout. Existing files are never overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runDuplicate,
}

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

func runDuplicate(cmd *cobra.Command, args []string) error {
	n := naming.New(currentPlatform, naming.WithLogger(logger))
	target, err := n.Duplicate(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), target)
	return nil
}
