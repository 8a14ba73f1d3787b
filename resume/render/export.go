package render

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"resume-builder/resume/model"
)

// JSONRenderer exports the record itself as indented JSON, the format the web
// form posts and resumectl reads back.
type JSONRenderer struct{}

func (JSONRenderer) Name() string        { return "json" }
func (JSONRenderer) ContentType() string { return "application/json; charset=utf-8" }

func (JSONRenderer) Render(ctx context.Context, data model.ResumeData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal: %w", err)
	}
	return append(out, '\n'), nil
}

// YAMLRenderer exports the record as YAML.
type YAMLRenderer struct{}

func (YAMLRenderer) Name() string        { return "yaml" }
func (YAMLRenderer) ContentType() string { return "application/yaml; charset=utf-8" }

func (YAMLRenderer) Render(ctx context.Context, data model.ResumeData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("yaml renderer: marshal: %w", err)
	}
	return out, nil
}
