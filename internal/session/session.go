package session

import (
	"fmt"
	"log/slog"
	"slices"
)

// Key identifies the kind of a key event.
type Key int

const (
	KeyNone Key = iota
	KeyChar
	KeyBackspace
	KeyCycle
	KeySubmit
	KeyCancel
)

func (k Key) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyBackspace:
		return "backspace"
	case KeyCycle:
		return "cycle"
	case KeySubmit:
		return "submit"
	case KeyCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Event is a single decoded key press. Text holds the typed characters for
// KeyChar and is empty otherwise.
type Event struct {
	Key  Key
	Text string
}

// Files is the filesystem the session searches and reads from.
type Files interface {
	// Search returns the relative paths of files matching query.
	Search(query string) ([]string, error)
	// ReadFile returns the contents of the file at the relative path.
	ReadFile(rel string) (string, error)
}

// State is a read-only view of the session used for rendering.
type State struct {
	Input       string
	Suggestions []string
	Selected    int
}

// Outcome describes how a session ended.
type Outcome struct {
	Submitted bool
	File      string
	Snippet   string
}

// Result tells the caller what to do after an event.
type Result struct {
	Render  bool
	Done    bool
	Outcome Outcome
}

// Session holds all mutable prompt state: the input line, the current
// suggestions and the selection cursor.
type Session struct {
	files  Files
	logger *slog.Logger

	input       InputBuffer
	suggestions []string
	selected    int
	// anchor is the offset of the '@' that produced suggestions.
	anchor int
	// cycled holds the list a path was last inserted from. It outlives the
	// suggestions so a mention closed by whitespace still resolves.
	cycled []string
	done   bool
}

// New creates an empty session searching files. A nil logger discards.
func New(files Files, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{files: files, logger: logger, anchor: -1}
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		Input:       s.input.Value,
		Suggestions: slices.Clone(s.suggestions),
		Selected:    s.selected,
	}
}

// HandleEvent applies one key event. Events received after the session has
// finished are ignored.
func (s *Session) HandleEvent(ev Event) (Result, error) {
	if s.done {
		return Result{Done: true}, nil
	}

	switch ev.Key {
	case KeyChar:
		before := s.input.Value
		s.input.Append([]rune(ev.Text))
		if s.input.Value == before {
			return Result{}, nil
		}
		if err := s.refresh(); err != nil {
			return Result{}, err
		}
		return Result{Render: true}, nil

	case KeyBackspace:
		if !s.input.Backspace() {
			return Result{}, nil
		}
		if err := s.refresh(); err != nil {
			return Result{}, err
		}
		return Result{Render: true}, nil

	case KeyCycle:
		if !s.cycle() {
			return Result{}, nil
		}
		return Result{Render: true}, nil

	case KeySubmit:
		s.done = true
		out, err := s.submit()
		if err != nil {
			return Result{Done: true}, err
		}
		return Result{Done: true, Outcome: out}, nil

	case KeyCancel:
		s.done = true
		return Result{Done: true}, nil
	}

	return Result{}, nil
}

// refresh recomputes the suggestions from the active mention.
func (s *Session) refresh() error {
	s.suggestions = nil
	s.selected = 0
	s.anchor = -1

	start, query, ok := ActiveMention(s.input.Value)
	if !ok {
		return nil
	}
	s.anchor = start
	s.cycled = nil
	if query == "" {
		return nil
	}

	matches, err := s.files.Search(query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}
	s.suggestions = matches
	s.logger.Debug("suggestions refreshed", "query", query, "count", len(matches))
	return nil
}

// cycle moves the selection forward and writes it into the input line.
func (s *Session) cycle() bool {
	if len(s.suggestions) == 0 || s.anchor < 0 {
		return false
	}
	s.selected = (s.selected + 1) % len(s.suggestions)
	s.input.ReplaceFrom(s.anchor, "@"+s.suggestions[s.selected])
	s.cycled = s.suggestions
	return true
}

// ChosenFile returns the first mention in the input whose text is one of the
// current suggestions, or of the list last cycled through, or "" when there is
// none.
func (s *Session) ChosenFile() string {
	for _, ref := range Mentions(s.input.Value) {
		if slices.Contains(s.suggestions, ref) || slices.Contains(s.cycled, ref) {
			return ref
		}
	}
	return ""
}

func (s *Session) submit() (Outcome, error) {
	file := s.ChosenFile()

	var contents string
	if file != "" {
		var err error
		contents, err = s.files.ReadFile(file)
		if err != nil {
			return Outcome{}, &FileReadError{Path: file, Err: err}
		}
	}

	s.logger.Debug("session submitted", "file", file, "input_len", len(s.input.Value))
	return Outcome{
		Submitted: true,
		File:      file,
		Snippet:   BuildSnippet(s.input.Value, file, contents),
	}, nil
}
