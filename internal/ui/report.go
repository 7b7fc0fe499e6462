package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Headers printed above the snippet after a submission.
const (
	SnippetHeader          = "Your prompt snippet (copied to clipboard):"
	SnippetHeaderNotCopied = "Your prompt snippet (not copied):"
)

// PrintSnippet writes the header and the snippet to w.
func PrintSnippet(w io.Writer, snippet string, copied bool) {
	fmt.Fprintln(w)
	if copied {
		successColor.Fprintln(w, SnippetHeader)
	} else {
		warnColor.Fprintln(w, SnippetHeaderNotCopied)
	}
	fmt.Fprintln(w, snippet)
}

// Warn writes a warning line to w.
func Warn(w io.Writer, format string, a ...any) {
	warnColor.Fprintf(w, "Warning: "+format+"\n", a...)
}

// Error writes an error line to w.
func Error(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: %v\n", err)
}
