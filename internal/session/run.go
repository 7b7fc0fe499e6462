package session

import (
	"errors"
	"io"
)

// Renderer draws the session state. Render must not mutate anything the
// session owns and may be called any number of times.
type Renderer interface {
	Render(State)
}

// EventSource delivers key events one at a time. It returns io.EOF when the
// input is exhausted.
type EventSource interface {
	Next() (Event, error)
}

// Run drives s from src until the user submits or cancels, rendering once up
// front and once after every event that changed the state. An exhausted
// source counts as a cancel.
func Run(s *Session, src EventSource, r Renderer) (Outcome, error) {
	r.Render(s.State())

	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			ev, err = Event{Key: KeyCancel}, nil
		}
		if err != nil {
			return Outcome{}, err
		}

		res, err := s.HandleEvent(ev)
		if err != nil {
			return Outcome{}, err
		}
		if res.Done {
			return res.Outcome, nil
		}
		if res.Render {
			r.Render(s.State())
		}
	}
}
