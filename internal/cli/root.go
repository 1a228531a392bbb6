package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obinexus/shellutils/internal/branding"
	"github.com/obinexus/shellutils/internal/config"
	"github.com/obinexus/shellutils/internal/logging"
	"github.com/obinexus/shellutils/internal/platform"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	logDir  string
)

// Resolved once per invocation by the root pre-run hook.
var (
	currentPlatform platform.Platform
	logger          = logging.Discard()
)

// Command annotations controlling how config problems are handled.
const (
	// skipConfigCheck marks commands that must run even when the config
	// file is broken, so it can be inspected or repaired.
	skipConfigCheck = "skip-config-check"
	// lenientConfig marks commands that fall back to the defaults, with a
	// warning, when the config file is broken.
	lenientConfig = "lenient-config"
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` duplicates files without overwriting them, using the naming
convention of the host platform, and packs document trees into editable and
non-editable zip bundles.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Also write JSON logs to this directory")
}

func setup(cmd *cobra.Command, args []string) error {
	cfgErr := loadConfig(cmd)
	if cfgErr != nil && !hasAnnotation(cmd, skipConfigCheck) && !hasAnnotation(cmd, lenientConfig) {
		return cfgErr
	}

	p, err := config.Platform()
	if err != nil {
		return fmt.Errorf("resolving platform: %w", err)
	}
	currentPlatform = p

	level, err := logging.ParseLevel(config.LogLevel())
	if err != nil {
		level = logging.LevelWarn
	}
	if verbose {
		level = logging.LevelDebug
	}
	dir := logDir
	if dir == "" {
		dir = config.LogDir()
	}
	base := logging.New(logging.Config{
		Level:   level,
		LogDir:  dir,
		Service: branding.CLIName(),
		Output:  cmd.ErrOrStderr(),
	})
	logger = base.With("command", cmd.Name())

	if cfgErr != nil {
		logger.Warn("ignoring config file, using defaults", "path", config.FilePath(), "error", cfgErr)
	}
	if path := base.FilePath(); path != "" {
		logger.Debug("writing log file", "path", path)
	}
	logger.Debug("starting command", "command", cmd.CommandPath(), "platform", currentPlatform.String())
	return nil
}

// loadConfig reads and validates the config file. On failure the defaults
// are left in effect and the error is returned for the caller to judge.
func loadConfig(cmd *cobra.Command) error {
	if err := config.Load(); err != nil {
		config.LoadDefaults()
		return err
	}
	if hasAnnotation(cmd, skipConfigCheck) {
		return nil
	}
	if err := config.Check(); err != nil {
		config.LoadDefaults()
		return err
	}
	return nil
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[key]; ok {
			return true
		}
	}
	return false
}

// Execute runs the root command with build info injected via ldflags. A
// failing command is reported once as "Error: <message>" on stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
	}
	return err
}
