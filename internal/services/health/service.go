package health

import "resume-builder/resume/render"

// Service encapsulates health-related checks.
type Service struct {
	renderers *render.Registry
}

// NewService constructs a health service that checks the given registry.
func NewService(renderers *render.Registry) *Service {
	return &Service{renderers: renderers}
}

// Status reports ok when the HTML renderer is available.
func (s *Service) Status() map[string]bool {
	return map[string]bool{"ok": s.renderers != nil && s.renderers.Has("html")}
}
