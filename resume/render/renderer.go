package render

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"resume-builder/resume/model"
)

// Renderer converts a ResumeData record into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, data model.ResumeData) ([]byte, error)
}

var (
	// ErrRendererNotFound is returned by Get for names nobody registered.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry maps output format names to renderers. Names are matched
// case-insensitively.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry returns a registry holding the given renderers. It panics on a
// nil renderer or a duplicate name, which are wiring mistakes.
func NewRegistry(renderers ...Renderer) *Registry {
	reg := &Registry{byName: make(map[string]Renderer, len(renderers))}
	if err := reg.Register(renderers...); err != nil {
		panic(err)
	}
	return reg
}

// Default returns a registry holding the html, json and yaml renderers.
func Default() *Registry {
	return NewRegistry(NewHTMLRenderer(), JSONRenderer{}, YAMLRenderer{})
}

// Register adds renderers under their Name(). Nothing is added when any of
// them is invalid.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]Renderer, len(renderers))
	for _, renderer := range renderers {
		if renderer == nil {
			return fmt.Errorf("render: renderer is required")
		}
		name := formatKey(renderer.Name())
		if name == "" {
			return fmt.Errorf("render: renderer name is required")
		}
		_, registered := r.byName[name]
		if _, queued := pending[name]; registered || queued {
			return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
		}
		pending[name] = renderer
	}
	for name, renderer := range pending {
		r.byName[name] = renderer
	}
	return nil
}

// Get resolves a format name. Unknown names wrap ErrRendererNotFound.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[formatKey(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Has reports whether name resolves to a renderer.
func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func formatKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
