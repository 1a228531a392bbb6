// Package archive classifies documents by editability and packages them into
// zip bundles.
//
// Markdown and plain-text files are editable, PDFs are not, and every other
// file is left out. Compose either writes one bundle per non-empty class
// ("{name}_editable", "{name}_non_editable") or a single combined bundle
// ("{name}"). Bundles are written one after another; a failed bundle never
// removes one that already completed.
package archive
