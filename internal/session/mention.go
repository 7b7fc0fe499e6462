package session

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// mentionPattern matches every unescaped @token in a line. The token runs up
// to the next whitespace or the end of the line.
var mentionPattern = regexp.MustCompile(`(?:^|[^\\])@(\S+)`)

// ActiveMention finds the mention being typed at the end of line. It returns
// the byte offset of its '@' and the query text after it. A mention is active
// when the last unescaped '@' has no whitespace after it.
func ActiveMention(line string) (start int, query string, ok bool) {
	for i := len(line); i > 0; {
		r, size := utf8.DecodeLastRuneInString(line[:i])
		i -= size
		if unicode.IsSpace(r) {
			return -1, "", false
		}
		if r == '@' && !escaped(line, i) {
			return i, line[i+1:], true
		}
	}
	return -1, "", false
}

// Mentions returns the text of every unescaped @token in line, in order of
// appearance and without the leading '@'.
func Mentions(line string) []string {
	matches := mentionPattern.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) < 2 || m[1] == "" {
			continue
		}
		refs = append(refs, m[1])
	}
	return refs
}

func escaped(line string, at int) bool {
	return at > 0 && line[at-1] == '\\'
}
