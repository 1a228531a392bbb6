// Package config manages user-level settings stored at
// ~/.shellutils/config.yaml: the platform override, archive defaults, scan
// exclusions and logging. The file is checked against an embedded JSON
// schema and a config_version compatibility range before it is trusted.
package config
