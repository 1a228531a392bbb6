// Package ux styles the human-readable command summaries. Decoration is
// applied only when writing to a terminal; pipes and files get plain text.
package ux

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ColorAccent  = lipgloss.Color("#20B9B4")
	ColorSuccess = lipgloss.Color("#2CD7C7")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#6C7A89")
)

// Styles holds the shared lipgloss styles.
var Styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Label:   lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
}

const (
	IconSuccess = "✓"
	IconWarning = "⚠"
	IconError   = "✗"
	IconBullet  = "•"
)

// Printer writes summaries to w.
type Printer struct {
	w      io.Writer
	styled bool
	num    *message.Printer
}

// NewPrinter returns a Printer that styles output when w is a terminal and
// NO_COLOR is unset.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: IsTerminal(w) && os.Getenv("NO_COLOR") == "", num: message.NewPrinter(language.English)}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Number formats n with thousands separators.
func (p *Printer) Number(n int64) string {
	return p.num.Sprintf("%d", n)
}

// Title prints a heading line.
func (p *Printer) Title(text string) {
	fmt.Fprintln(p.w, p.render(Styles.Title, text))
}

// Success prints a line prefixed with a success mark.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(Styles.Success, IconSuccess), fmt.Sprintf(format, args...))
}

// Warn prints a line prefixed with a warning mark.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(Styles.Warning, IconWarning), fmt.Sprintf(format, args...))
}

// Fail prints a line prefixed with an error mark.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(Styles.Error, IconError), fmt.Sprintf(format, args...))
}

// Item prints an indented bullet.
func (p *Printer) Item(text string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.render(Styles.Muted, IconBullet), text)
}

// Count prints "label: n" with n grouped by thousands.
func (p *Printer) Count(label string, n int64) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(Styles.Label, label+":"), p.Number(n))
}

// Bytes prints "label: n bytes".
func (p *Printer) Bytes(label string, n int64) {
	fmt.Fprintf(p.w, "%s %s bytes\n", p.render(Styles.Label, label+":"), p.Number(n))
}

// Line prints text unchanged.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}
