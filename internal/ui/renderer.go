package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/louislva/prompt/internal/session"
)

// LineRenderer draws frames straight to a writer, erasing the previous frame
// before each redraw. It is used when input does not come from a terminal.
type LineRenderer struct {
	w     io.Writer
	width func() int
	rows  int
	err   error
}

// NewLineRenderer returns a renderer writing to w. width reports the current
// terminal width; nil or a non-positive result means unknown.
func NewLineRenderer(w io.Writer, width func() int) *LineRenderer {
	return &LineRenderer{w: w, width: width}
}

// Render implements session.Renderer.
func (r *LineRenderer) Render(st session.State) {
	width := 0
	if r.width != nil {
		width = r.width()
	}
	frame := Frame(st, width)

	var b strings.Builder
	b.WriteString(r.eraseSequence())
	b.WriteString(frame)

	if _, err := io.WriteString(r.w, b.String()); err != nil && r.err == nil {
		r.err = err
	}
	r.rows = rowCount(frame, width)
}

// Finish moves the cursor below the last frame so later output starts on a
// fresh line.
func (r *LineRenderer) Finish() error {
	if r.rows > 0 {
		if _, err := io.WriteString(r.w, "\n"); err != nil && r.err == nil {
			r.err = err
		}
	}
	r.rows = 0
	return r.err
}

// eraseSequence clears every row of the previous frame and leaves the cursor
// at the start of its first row.
func (r *LineRenderer) eraseSequence() string {
	if r.rows == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(ansi.EraseEntireLine)
	for i := 1; i < r.rows; i++ {
		b.WriteString(ansi.CursorUp(1))
		b.WriteString(ansi.EraseEntireLine)
	}
	return b.String()
}

// rowCount is the number of terminal rows frame occupies, counting soft
// wraps when width is known.
func rowCount(frame string, width int) int {
	rows := 0
	for _, line := range strings.Split(frame, "\n") {
		w := ansi.StringWidth(line)
		if width <= 0 || w <= width {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	return rows
}
