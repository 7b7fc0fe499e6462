package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/louislva/prompt/internal/session"
)

// Banner is printed above the prompt line.
const Banner = "Welcome to Prompt!"

// MaxVisible is the number of suggestions shown at once.
const MaxVisible = 10

const (
	promptMarker   = "> "
	selectedMarker = "> "
	indent         = "  "
	cursor         = "█"
)

// Frame renders the prompt for st: the banner, the input line and the
// suggestion list with the selected entry highlighted. Suggestions wider than
// width are truncated; width <= 0 disables truncation.
func Frame(st session.State, width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(Banner))
	b.WriteString("\n")
	b.WriteString(PromptStyle.Render(promptMarker))
	b.WriteString(st.Input)
	b.WriteString(cursor)

	lo, hi := visibleRange(len(st.Suggestions), st.Selected, MaxVisible)
	for i := lo; i < hi; i++ {
		path := truncate(st.Suggestions[i], width-len(indent))
		b.WriteString("\n")
		if i == st.Selected {
			b.WriteString(SelectedStyle.Render(selectedMarker))
			b.WriteString(ActiveStyle.Render(path))
			continue
		}
		b.WriteString(indent)
		b.WriteString(path)
	}

	if hidden := len(st.Suggestions) - (hi - lo); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("%s… %d more", indent, hidden)))
	}

	return b.String()
}

// visibleRange returns the window [lo, hi) of n items that keeps selected in
// view, at most limit items wide.
func visibleRange(n, selected, limit int) (int, int) {
	if n <= limit {
		return 0, n
	}
	lo := selected - limit/2
	if lo < 0 {
		lo = 0
	}
	if lo > n-limit {
		lo = n - limit
	}
	return lo, lo + limit
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
