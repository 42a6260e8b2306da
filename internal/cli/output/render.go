// Package output renders command results as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects how command results are rendered.
type Mode string

const (
	// ModeAuto resolves to text on a terminal and json when piped.
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command results to stdout and diagnostics to stderr.
// Styling is enabled only when stdout is a terminal.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	mode   Mode
	styles *Styles
	isTTY  bool
}

// NewRenderer builds a renderer for the given writers. An empty mode
// defaults to ModeAuto.
func NewRenderer(stdout, stderr io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(stdout, stderr, isTerminal(stdout), mode)
}

// NewRendererWithTTY builds a renderer with an explicit terminal state
// instead of detecting it from stdout. Tests use this to exercise both
// branches of ModeAuto.
func NewRendererWithTTY(stdout, stderr io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		mode:   mode,
		styles: newStyles(isTTY),
		isTTY:  isTTY,
	}
}

// EffectiveMode resolves ModeAuto against the terminal state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeJSON
}

// IsTTY reports whether stdout is attached to a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Writer exposes the stdout writer for callers that stream output
// themselves, such as table renderers and JSON encoders.
func (r *Renderer) Writer() io.Writer {
	return r.stdout
}

// ErrWriter exposes the stderr writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.stderr
}

// Styles returns the style set matching the terminal capabilities.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.stdout, args...)
}

func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.stdout, format, args...)
}

// Success prints a green check line to stdout.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.stdout, r.styles.Success.Render("✓")+" "+msg)
}

// Warning prints a yellow warning line to stderr.
func (r *Renderer) Warning(msg string) {
	fmt.Fprintln(r.stderr, r.styles.Warning.Render("!")+" "+msg)
}

// StatusLine prints a per-item result line: a padded status tag,
// the item name, and an optional detail.
func (r *Renderer) StatusLine(name, status, detail string) {
	var tag string
	switch status {
	case "success":
		tag = r.styles.StatusSuccess.Render("  OK")
	case "failed":
		tag = r.styles.StatusFailed.Render("FAIL")
	default:
		tag = r.styles.Muted.Render(status)
	}
	if detail != "" {
		fmt.Fprintf(r.stdout, "%s  %s: %s\n", tag, name, detail)
	} else {
		fmt.Fprintf(r.stdout, "%s  %s\n", tag, name)
	}
}

// JSON writes v as four-space indented JSON followed by a newline.
// HTML escaping is disabled so text values round-trip verbatim.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
