// Package logging provides structured, leveled logging for shellutils
// commands. It wraps log/slog with a human-readable handler on stderr and an
// optional JSON file sink, so diagnostics never mix with the command output
// written to stdout.
package logging
