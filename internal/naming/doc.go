// Package naming generates duplicate file names following the host
// platform's convention and resolves the first name that is free on disk.
//
//	Windows: report.pdf → report-copy.pdf, report-copy2.pdf, ...
//	Unix:    report.pdf → report2.pdf, report3.pdf, ...
//
// The Unix convention starts at 2: the original counts as the first file.
// Name generation is pure; only FindAvailableName and Namer.Duplicate touch
// the filesystem, through injectable collaborators. The check for a free
// name and the copy that claims it are separate steps, so a concurrent
// writer can still race between them; the default copier creates the
// target exclusively and fails instead of overwriting.
package naming
