package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/obinexus/shellutils/internal/config"
	"github.com/obinexus/shellutils/internal/ux"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage user settings",
	Long:        `Read, write and validate the configuration stored at ~/.shellutils/config.yaml.`,
	Annotations: map[string]string{skipConfigCheck: "true"},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the config file. Known keys:

  platform          auto, windows or unix
  archive.separate  true or false
  archive.out_dir   directory for bundles
  scan.exclude      comma-separated names skipped while walking
  log.level         debug, info, warn or error
  log.dir           directory for JSON log files
  config_version    config format version`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configuration value in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file against the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ux.NewPrinter(cmd.OutOrStdout())
		res, err := config.ValidateFile(config.FilePath())
		if errors.Is(err, fs.ErrNotExist) {
			p.Success("no config file at %s; defaults in effect", config.FilePath())
			return nil
		}
		if err != nil {
			p.Fail("%s: %v", config.FilePath(), err)
			return fmt.Errorf("checking config file %s: %w", config.FilePath(), err)
		}
		if res.Valid {
			p.Success("%s is valid", config.FilePath())
			return nil
		}
		for _, is := range res.Issues {
			path := is.Path
			if path == "" {
				path = "/"
			}
			p.Fail("%s: %s", path, is.Message)
		}
		return &config.InvalidError{Path: config.FilePath(), Issues: res.Issues}
	},
}
