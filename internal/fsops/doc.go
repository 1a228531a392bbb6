// Package fsops implements the filesystem collaborators used by the naming
// and archive packages: a recursive regular-file walk, an exclusive-create
// copy that preserves permissions and modification time, existence checks,
// and SHA-256 checksums.
package fsops
