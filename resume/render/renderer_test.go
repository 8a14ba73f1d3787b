package render

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"resume-builder/resume/model"
)

func TestDefaultRegistryLists(t *testing.T) {
	reg := Default()
	want := []string{"html", "json", "yaml"}
	if diff := cmp.Diff(want, reg.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("html") {
		t.Fatalf("expected html renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry(JSONRenderer{})
	if err := reg.Register(JSONRenderer{}); !errors.Is(err, ErrDuplicateRenderer) {
		t.Fatalf("expected ErrDuplicateRenderer, got %v", err)
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if err := reg.Register(YAMLRenderer{}, YAMLRenderer{}); !errors.Is(err, ErrDuplicateRenderer) {
		t.Fatalf("expected duplicate within one call to fail, got %v", err)
	}
	if reg.Has("yaml") {
		t.Fatalf("failed registration must not add renderers")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	_, err := Default().Get("pdf")
	if !errors.Is(err, ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `"pdf"`) {
		t.Fatalf("expected format name in error, got %v", err)
	}
}

func TestRegistryMatchesNamesCaseInsensitively(t *testing.T) {
	r, err := Default().Get(" HTML ")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.Name() != "html" {
		t.Fatalf("unexpected renderer %q", r.Name())
	}
}

func TestNewRegistryPanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	NewRegistry(JSONRenderer{}, JSONRenderer{})
}

func TestJSONRendererExportsRecord(t *testing.T) {
	out, err := JSONRenderer{}.Render(context.Background(), model.Sample())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got model.ResumeData
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(model.Sample(), got); diff != "" {
		t.Fatalf("export mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(out), `"experiences": [`) {
		t.Fatalf("expected lower-case field names, got %s", out)
	}
}

func TestYAMLRendererExportsRecord(t *testing.T) {
	out, err := YAMLRenderer{}.Render(context.Background(), model.Sample())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var got model.ResumeData
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(model.Sample(), got); diff != "" {
		t.Fatalf("export mismatch (-want +got):\n%s", diff)
	}
}
