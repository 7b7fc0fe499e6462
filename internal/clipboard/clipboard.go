package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// ErrUnavailable is returned when no clipboard backend accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Method reports which backend received the text.
type Method int

const (
	MethodNone Method = iota
	MethodSystem
	MethodOSC52
)

func (m Method) String() string {
	switch m {
	case MethodSystem:
		return "system clipboard"
	case MethodOSC52:
		return "terminal (OSC 52)"
	default:
		return "none"
	}
}

// Writer copies text to the clipboard. It tries the platform clipboard first
// and falls back to an OSC 52 escape sequence written to Terminal.
type Writer struct {
	// System writes to the platform clipboard.
	System func(string) error
	// Terminal receives the OSC 52 sequence. Nil disables the fallback.
	Terminal io.Writer
	// IsTerminal reports whether Terminal is attached to a terminal.
	IsTerminal func() bool
}

// New returns a Writer using the platform clipboard and, as a fallback,
// the terminal behind out.
func New(out *os.File) *Writer {
	w := &Writer{}
	if !clipboard.Unsupported {
		w.System = clipboard.WriteAll
	}
	if out != nil {
		w.Terminal = out
		w.IsTerminal = func() bool {
			return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
		}
	}
	return w
}

// Write copies text and reports the backend used. The returned error wraps
// ErrUnavailable when every backend failed.
func (w *Writer) Write(text string) (Method, error) {
	var sysErr error
	if w.System != nil {
		if sysErr = w.System(text); sysErr == nil {
			return MethodSystem, nil
		}
	} else {
		sysErr = errors.New("no system clipboard")
	}

	if w.Terminal == nil || (w.IsTerminal != nil && !w.IsTerminal()) {
		return MethodNone, fmt.Errorf("%w: %v", ErrUnavailable, sysErr)
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(w.Terminal); err != nil {
		return MethodNone, fmt.Errorf("%w: %v; osc52: %v", ErrUnavailable, sysErr, err)
	}
	return MethodOSC52, nil
}
