package session

import (
	"fmt"
	"strings"
)

const (
	snippetRule  = "---"
	snippetFence = "```"
)

// FileReadError is returned on submit when the chosen file can no longer be
// read. The session is aborted and no snippet is produced.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// BuildSnippet composes the final prompt text. When file is empty the fenced
// block is left out entirely.
func BuildSnippet(input, file, contents string) string {
	lines := []string{snippetRule}
	if file != "" {
		lines = append(lines, snippetFence+file, contents, snippetFence)
	}
	lines = append(lines, input, snippetRule)
	return strings.Join(lines, "\n")
}
