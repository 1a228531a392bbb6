package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinexus/shellutils/internal/collect"
	"github.com/obinexus/shellutils/internal/config"
	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/ux"
)

var (
	collectExts []string
	collectJSON bool
)

var collectCmd = &cobra.Command{
	Use:   "collect <source> <dest>",
	Short: "Copy files with given extensions from a tree into one directory",
	Long: `Copy every file below <source> whose extension matches --ext into <dest>,
which is created if needed. The tree is flattened; when two files share a
base name the later one gets the platform's duplicate name.`,
	Example: `  shellutils collect ~/papers ./out --ext pdf --ext .md`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCollect,
}

func init() {
	collectCmd.Flags().StringSliceVar(&collectExts, "ext", nil, "Extension to collect (repeatable, e.g. --ext pdf --ext .md)")
	collectCmd.Flags().BoolVar(&collectJSON, "json", false, "Output in JSON format")
	_ = collectCmd.MarkFlagRequired("ext")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) error {
	c := collect.New(currentPlatform,
		collect.WithWalker(fsops.NewWalker(config.ScanExclude())),
		collect.WithLogger(logger),
	)
	res, err := c.Collect(args[0], args[1], collectExts)
	if err != nil {
		return err
	}

	if collectJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		p := ux.NewPrinter(cmd.OutOrStdout())
		for _, cp := range res.Copies {
			p.Success("%s -> %s", cp.Source, cp.Target)
		}
		for _, e := range res.Errors {
			p.Fail("%s", e.Error())
		}
		p.Count("Found", int64(res.Found))
		p.Count("Copied", int64(res.Copied))
		p.Count("Failed", int64(res.Failed))
	}

	if !res.OK() {
		return fmt.Errorf("%d of %d files could not be copied", res.Failed, res.Found)
	}
	return nil
}
