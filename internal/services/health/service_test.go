package health

import (
	"testing"

	"resume-builder/resume/render"
)

func TestStatusRequiresHTMLRenderer(t *testing.T) {
	if got := NewService(render.Default()).Status(); !got["ok"] {
		t.Fatalf("expected ok with default registry, got %v", got)
	}
	if got := NewService(render.NewRegistry()).Status(); got["ok"] {
		t.Fatalf("expected not ok with empty registry, got %v", got)
	}
	if got := NewService(nil).Status(); got["ok"] {
		t.Fatalf("expected not ok with nil registry, got %v", got)
	}
}
