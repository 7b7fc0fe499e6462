package session

import (
	"unicode"
	"unicode/utf8"
)

// InputBuffer holds the single line typed at the prompt.
type InputBuffer struct {
	Value string
}

// Append adds runes to the buffer. Line terminators and other control
// characters are dropped so the buffer always stays a single line.
func (b *InputBuffer) Append(runes []rune) {
	for _, r := range runes {
		if r == utf8.RuneError || !unicode.IsPrint(r) {
			continue
		}
		b.Value += string(r)
	}
}

// Backspace removes the last character.
func (b *InputBuffer) Backspace() bool {
	if len(b.Value) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(b.Value)
	b.Value = b.Value[:len(b.Value)-size]
	return true
}

// ReplaceFrom drops everything from byte offset i and appends s.
func (b *InputBuffer) ReplaceFrom(i int, s string) {
	if i < 0 || i > len(b.Value) {
		i = len(b.Value)
	}
	b.Value = b.Value[:i] + s
}

// Clear resets the buffer.
func (b *InputBuffer) Clear() {
	b.Value = ""
}
