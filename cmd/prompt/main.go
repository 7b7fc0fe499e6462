package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/louislva/prompt/internal/clipboard"
	"github.com/louislva/prompt/internal/config"
	"github.com/louislva/prompt/internal/files"
	"github.com/louislva/prompt/internal/keys"
	"github.com/louislva/prompt/internal/logging"
	"github.com/louislva/prompt/internal/session"
	"github.com/louislva/prompt/internal/ui"
)

// ErrInputCapture is returned when key input cannot be read.
var ErrInputCapture = errors.New("input capture failed")

// snippetWriter copies the finished snippet somewhere the user can paste it.
type snippetWriter interface {
	Write(text string) (clipboard.Method, error)
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		ui.Error(os.Stderr, err)
		return 1
	}

	logger, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		ui.Error(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	logger.Debug("starting", "root", cfg.Root, "ignore", cfg.Ignore)
	s := session.New(files.NewFinder(cfg.Root, cfg.Ignore), logger)

	var out session.Outcome
	if term.IsTerminal(int(os.Stdin.Fd())) {
		out, err = runTerminal(s)
	} else {
		out, err = runPiped(s, os.Stdin, os.Stderr)
	}
	if err != nil {
		logger.Error("session failed", "err", err)
		ui.Error(os.Stderr, err)
		return 1
	}

	return finish(out, clipboard.New(os.Stderr), os.Stdout, os.Stderr, logger)
}

// runTerminal drives the session through a bubbletea program.
func runTerminal(s *session.Session) (session.Outcome, error) {
	final, err := tea.NewProgram(initialModel(s)).Run()
	if err != nil {
		return session.Outcome{}, fmt.Errorf("%w: %v", ErrInputCapture, err)
	}
	m, ok := final.(model)
	if !ok {
		return session.Outcome{}, fmt.Errorf("unexpected model %T", final)
	}
	return m.outcome, m.err
}

// runPiped decodes raw key bytes from in and draws frames to out. It is used
// when stdin is not a terminal.
func runPiped(s *session.Session, in io.Reader, out io.Writer) (session.Outcome, error) {
	r := ui.NewLineRenderer(out, widthOf(out))
	outcome, err := session.Run(s, captureSource{keys.NewDecoder(in)}, r)
	if ferr := r.Finish(); err == nil && ferr != nil {
		err = fmt.Errorf("render: %w", ferr)
	}
	return outcome, err
}

// captureSource marks read failures as ErrInputCapture.
type captureSource struct {
	src session.EventSource
}

func (c captureSource) Next() (session.Event, error) {
	ev, err := c.src.Next()
	if err != nil && !errors.Is(err, io.EOF) {
		return ev, fmt.Errorf("%w: %v", ErrInputCapture, err)
	}
	return ev, err
}

// widthOf reports the terminal width behind w, or nil when w is not a
// terminal.
func widthOf(w io.Writer) func() int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil
	}
	fd := int(f.Fd())
	return func() int {
		width, _, err := term.GetSize(fd)
		if err != nil {
			return 0
		}
		return width
	}
}

// finish copies a submitted snippet and prints it. It returns the exit code.
func finish(out session.Outcome, cb snippetWriter, stdout, stderr io.Writer, logger *slog.Logger) int {
	if !out.Submitted {
		logger.Debug("cancelled")
		return 0
	}

	method, err := cb.Write(out.Snippet)
	ui.PrintSnippet(stdout, out.Snippet, err == nil)
	if err != nil {
		logger.Error("clipboard write failed", "err", err)
		ui.Error(stderr, err)
		return 1
	}

	logger.Debug("snippet copied", "file", out.File, "method", method.String())
	if method == clipboard.MethodOSC52 {
		ui.Warn(stderr, "system clipboard unavailable, copied via %s", method)
	}
	return 0
}
