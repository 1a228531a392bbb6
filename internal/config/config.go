package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/obinexus/shellutils/internal/branding"
	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/platform"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognised keys.
const (
	KeyVersion         = "config_version"
	KeyPlatform        = "platform"
	KeyArchiveSeparate = "archive.separate"
	KeyArchiveOutDir   = "archive.out_dir"
	KeyScanExclude     = "scan.exclude"
	KeyLogLevel        = "log.level"
	KeyLogDir          = "log.dir"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1.0.0"

// Keys lists every key accepted by Set, in display order.
var Keys = []string{
	KeyVersion,
	KeyPlatform,
	KeyArchiveSeparate,
	KeyArchiveOutDir,
	KeyScanExclude,
	KeyLogLevel,
	KeyLogDir,
}

// Dir returns the config directory. SHELLUTILS_HOME overrides the default
// of ~/.shellutils.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyVersion, CurrentVersion)
	viper.SetDefault(KeyPlatform, "auto")
	viper.SetDefault(KeyArchiveSeparate, true)
	viper.SetDefault(KeyArchiveOutDir, "")
	viper.SetDefault(KeyScanExclude, fsops.DefaultExclude)
	viper.SetDefault(KeyLogLevel, "warn")
	viper.SetDefault(KeyLogDir, "")
}

// Load initializes Viper to read from the config file and environment.
// Nested keys map to variables such as SHELLUTILS_ARCHIVE_OUT_DIR. A missing
// file is not an error; an unreadable or malformed one is.
func Load() error {
	bind()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// LoadDefaults discards any loaded file and leaves only the defaults and
// environment overrides in effect.
func LoadDefaults() {
	viper.Reset()
	bind()
}

func bind() {
	setDefaults()
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Check validates the config file on disk, if there is one. An invalid
// file yields an *InvalidError.
func Check() error {
	res, err := ValidateFile(FilePath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !res.Valid {
		return &InvalidError{Path: FilePath(), Issues: res.Issues}
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
// List values are joined with commas.
func Get(key string) string {
	if key == KeyScanExclude {
		return strings.Join(viper.GetStringSlice(key), ",")
	}
	return viper.GetString(key)
}

// Set converts value to the key's type, checks the result against the
// schema and saves the config file. Only keys already in the file and key
// itself are written; defaults and environment overrides stay out of it.
// A file that no longer parses is replaced.
func Set(key, value string) error {
	typed, err := convert(key, value)
	if err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		file = viper.New()
		file.SetConfigType(fileType)
	}

	file.Set(key, typed)
	if key != KeyVersion && !file.IsSet(KeyVersion) {
		file.Set(KeyVersion, CurrentVersion)
	}

	res, err := validateValue(file.AllSettings())
	if err != nil {
		return err
	}
	if !res.Valid {
		return &InvalidError{Path: key, Issues: res.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	viper.Set(key, typed)
	return nil
}

func convert(key, value string) (any, error) {
	switch key {
	case KeyArchiveSeparate:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return b, nil
	case KeyScanExclude:
		var names []string
		for _, n := range strings.Split(value, ",") {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
		if names == nil {
			names = []string{}
		}
		return names, nil
	case KeyVersion, KeyPlatform, KeyArchiveOutDir, KeyLogLevel, KeyLogDir:
		return value, nil
	}
	return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys, ", "))
}

// Platform returns the configured platform. "auto" and unset resolve to
// the platform the binary runs on.
func Platform() (platform.Platform, error) {
	return platform.Parse(viper.GetString(KeyPlatform))
}

// ArchiveSeparate reports whether archive splits bundles by default.
func ArchiveSeparate() bool { return viper.GetBool(KeyArchiveSeparate) }

// ArchiveOutDir returns the default bundle directory, empty for the
// working directory.
func ArchiveOutDir() string { return viper.GetString(KeyArchiveOutDir) }

// ScanExclude returns the directory entry names skipped during walks.
func ScanExclude() []string { return viper.GetStringSlice(KeyScanExclude) }

// LogLevel returns the configured log level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// LogDir returns the directory for log files, empty for none.
func LogDir() string { return viper.GetString(KeyLogDir) }
