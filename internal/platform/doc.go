// Package platform resolves the naming convention of the host operating
// system. Detection is a pure function of an OS identifier; callers resolve
// the Platform once at the entry point and pass it down explicitly.
// The package also carries small filesystem helpers whose behavior differs
// between Windows and Unix.
package platform
