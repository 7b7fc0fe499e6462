// Package keys turns a raw byte stream from a terminal or pipe into session
// key events.
package keys

import (
	"bufio"
	"io"
	"unicode"

	"github.com/louislva/prompt/internal/session"
)

const (
	ctrlC     = 0x03
	ctrlD     = 0x04
	ctrlH     = 0x08
	tab       = '\t'
	lineFeed  = '\n'
	carriage  = '\r'
	escape    = 0x1b
	backspace = 0x7f
)

// Decoder reads key events from an io.Reader.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next key event. Escape sequences such as arrow keys are
// consumed whole and reported as session.KeyNone. It returns io.EOF once the
// input is exhausted.
func (d *Decoder) Next() (session.Event, error) {
	r, _, err := d.r.ReadRune()
	if err != nil {
		return session.Event{}, err
	}

	switch r {
	case carriage, lineFeed:
		return session.Event{Key: session.KeySubmit}, nil
	case tab:
		return session.Event{Key: session.KeyCycle}, nil
	case backspace, ctrlH:
		return session.Event{Key: session.KeyBackspace}, nil
	case ctrlC, ctrlD:
		return session.Event{Key: session.KeyCancel}, nil
	case escape:
		return d.escape()
	}

	if !unicode.IsPrint(r) {
		return session.Event{Key: session.KeyNone}, nil
	}
	return session.Event{Key: session.KeyChar, Text: string(r)}, nil
}

// escape handles input after ESC. A lone ESC cancels; CSI and SS3 sequences
// are swallowed.
func (d *Decoder) escape() (session.Event, error) {
	if d.r.Buffered() == 0 {
		return session.Event{Key: session.KeyCancel}, nil
	}

	next, err := d.r.ReadByte()
	if err != nil {
		return session.Event{Key: session.KeyCancel}, nil
	}

	switch next {
	case '[':
		// CSI: parameters and intermediates end at a final byte in 0x40..0x7e.
		for {
			b, err := d.r.ReadByte()
			if err != nil {
				return session.Event{}, err
			}
			if b >= 0x40 && b <= 0x7e {
				return session.Event{Key: session.KeyNone}, nil
			}
		}
	case 'O':
		if _, err := d.r.ReadByte(); err != nil {
			return session.Event{}, err
		}
		return session.Event{Key: session.KeyNone}, nil
	case escape:
		if err := d.r.UnreadByte(); err != nil {
			return session.Event{}, err
		}
		return session.Event{Key: session.KeyCancel}, nil
	default:
		// Alt+key: drop the modifier.
		return session.Event{Key: session.KeyNone}, nil
	}
}
