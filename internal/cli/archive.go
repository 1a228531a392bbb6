package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/obinexus/shellutils/internal/archive"
	"github.com/obinexus/shellutils/internal/config"
	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/ux"
)

var (
	archiveOutDir string
	archiveJSON   bool
)

var archiveCmd = &cobra.Command{
	Use:   "archive <directory> <output_name> [true|false]",
	Short: "Pack a directory's documents into zip bundles",
	Long: `Pack every .md, .txt and .pdf file below a directory into zip bundles.

With separate=true (the default) editable documents (.md, .txt) go into
<output_name>_editable.zip and non-editable ones (.pdf) into
<output_name>_non_editable.zip. With separate=false everything goes into
<output_name>.zip. Empty bundles are not created. Entries are stored under
their base names.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runArchive,
}

func init() {
	archiveCmd.Flags().StringVar(&archiveOutDir, "out-dir", "", "Directory to write bundles to (default: archive.out_dir or the working directory)")
	archiveCmd.Flags().BoolVar(&archiveJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	dir, name := args[0], args[1]
	if name == "" {
		return errors.New("output name must not be empty")
	}

	separate := config.ArchiveSeparate()
	if len(args) == 3 {
		v, err := strconv.ParseBool(args[2])
		if err != nil {
			return fmt.Errorf("separate must be true or false, got %q", args[2])
		}
		separate = v
	}

	outDir := archiveOutDir
	if outDir == "" {
		outDir = config.ArchiveOutDir()
	}
	if outDir == "" {
		outDir = "."
	}

	composer := archive.NewComposer(
		fsops.NewWalker(config.ScanExclude()),
		archive.NewZipWriter(outDir, archive.WithZipLogger(logger)),
		archive.WithLogger(logger),
	)
	result, err := composer.Compose(dir, name, separate)

	var scanErr *archive.DirectoryScanError
	if errors.As(err, &scanErr) {
		return err
	}

	if archiveJSON {
		bundles := make([]*archive.Bundle, 0, len(result))
		for _, label := range result.Labels() {
			bundles = append(bundles, result[label])
		}
		out, jerr := json.MarshalIndent(bundles, "", "  ")
		if jerr != nil {
			return fmt.Errorf("marshaling bundles: %w", jerr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}

	p := ux.NewPrinter(cmd.OutOrStdout())
	if len(result) == 0 && err == nil {
		p.Warn("no .md, .txt or .pdf files found in %s; no bundles created", dir)
		return nil
	}
	for _, label := range result.Labels() {
		b := result[label]
		p.Success("%s: %s files, %s bytes -> %s", b.Label, p.Number(int64(b.Count)), p.Number(b.Size), b.Path)
		for _, f := range b.Files {
			p.Item(f)
		}
	}
	return err
}
