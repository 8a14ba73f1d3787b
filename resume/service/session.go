package service

import (
	"context"
	"fmt"
	"sync"

	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// Listener receives the freshly rendered document after every change.
type Listener func(doc []byte)

// Option configures a Session.
type Option func(*Session)

// WithRenderer swaps the renderer used for the session document. Defaults to
// the HTML renderer.
func WithRenderer(r render.Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// Session owns the current form snapshot and re-renders it on every change.
// Renders are memoised on a structural hash of the record.
type Session struct {
	mu        sync.Mutex
	data      model.ResumeData
	renderer  render.Renderer
	hash      string
	doc       []byte
	renders   int
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn Listener
}

// NewSession starts a session from a copy of initial.
func NewSession(initial model.ResumeData, opts ...Option) *Session {
	s := &Session{
		data:      initial.Clone(),
		renderer: render.NewHTMLRenderer(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Snapshot returns a deep copy of the current record.
func (s *Session) Snapshot() model.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Update applies fn to a copy of the current record, stores the result and
// notifies listeners in subscription order with the re-rendered document.
// fn runs with the session locked and must not call back into the Session.
// Listeners run after the lock is released.
func (s *Session) Update(ctx context.Context, fn func(*model.ResumeData)) ([]byte, error) {
	s.mu.Lock()
	next := s.data.Clone()
	fn(&next)
	s.data = next
	doc, err := s.documentLocked(ctx)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	for _, l := range listeners {
		l(doc)
	}
	return doc, nil
}

// Document returns the rendered document for the current record.
func (s *Session) Document(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentLocked(ctx)
}

// Subscribe registers l and returns a function that removes it.
func (s *Session) Subscribe(l Listener) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: l})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Renders reports how many times the renderer actually ran.
func (s *Session) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

func (s *Session) documentLocked(ctx context.Context) ([]byte, error) {
	hash, err := util.HashValue(s.data)
	if err != nil {
		return nil, fmt.Errorf("session: hash record: %w", err)
	}
	if s.doc != nil && hash == s.hash {
		return s.doc, nil
	}
	doc, err := s.renderer.Render(ctx, s.data)
	if err != nil {
		return nil, fmt.Errorf("session: render %s: %w", s.renderer.Name(), err)
	}
	s.hash = hash
	s.doc = doc
	s.renders++
	return doc, nil
}
